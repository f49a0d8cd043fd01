// Package iosink defines the byte sink and byte source contracts Lilliput's
// encoder and decoder consume (spec §6.1), plus the small set of concrete
// adapters the codec ships: an in-memory slice-backed sink/source pair, and
// thin wrappers over io.Writer/io.Reader.
//
// Per spec §1, the reader/writer byte-source abstraction itself is an
// external collaborator — any type offering single-byte and slice
// operations suffices. This package keeps that contract minimal rather
// than growing it into a buffering framework.
package iosink

import (
	"bufio"
	"io"

	"github.com/lilliput-fmt/lilliput/internal/pool"
	"github.com/lilliput-fmt/lilliput/lerrs"
)

// ByteSink is the write-side contract the Encoder consumes: write_u8 and
// write_all from spec §6.1.
type ByteSink interface {
	WriteU8(b byte) error
	WriteAll(p []byte) error
}

// ByteSource is the read-side contract the Decoder consumes: read_u8 and
// read_exact from spec §6.1. ReadExact must fail with lerrs.ErrUnexpectedEnd
// if fewer than len(p) bytes are available.
type ByteSource interface {
	ReadU8() (byte, error)
	ReadExact(p []byte) error
}

// SliceSink is an in-memory ByteSink backed by a pooled growable buffer.
// It never fails; WriteU8/WriteAll always return nil.
type SliceSink struct {
	buf *pool.ByteBuffer
}

// NewSliceSink creates an empty in-memory sink.
func NewSliceSink() *SliceSink {
	return &SliceSink{buf: pool.GetScratchBuffer()}
}

func (s *SliceSink) WriteU8(b byte) error {
	s.buf.MustWriteByte(b)

	return nil
}

func (s *SliceSink) WriteAll(p []byte) error {
	s.buf.MustWrite(p)

	return nil
}

// Bytes returns the accumulated output. The returned slice is valid until
// the next write or Reset.
func (s *SliceSink) Bytes() []byte { return s.buf.Bytes() }

// Reset empties the sink so it can be reused for another encode.
func (s *SliceSink) Reset() { s.buf.Reset() }

// Release returns the sink's backing buffer to the pool. The sink must not
// be used after Release.
func (s *SliceSink) Release() {
	pool.PutScratchBuffer(s.buf)
	s.buf = nil
}

// SliceSource is an in-memory ByteSource reading sequentially from a fixed
// byte slice.
type SliceSource struct {
	data []byte
	pos  int
}

// NewSliceSource creates a source that reads data from the start.
func NewSliceSource(data []byte) *SliceSource {
	return &SliceSource{data: data}
}

func (s *SliceSource) ReadU8() (byte, error) {
	if s.pos >= len(s.data) {
		return 0, lerrs.Wrap(lerrs.ErrUnexpectedEnd, "read_u8", nil)
	}

	b := s.data[s.pos]
	s.pos++

	return b, nil
}

func (s *SliceSource) ReadExact(p []byte) error {
	if len(s.data)-s.pos < len(p) {
		return lerrs.Wrap(lerrs.ErrUnexpectedEnd, "read_exact", nil)
	}

	copy(p, s.data[s.pos:s.pos+len(p)])
	s.pos += len(p)

	return nil
}

// Remaining returns the number of unread bytes left in the source.
func (s *SliceSource) Remaining() int { return len(s.data) - s.pos }

// Pos returns the current read offset into the source's backing slice.
func (s *SliceSource) Pos() int { return s.pos }

// writerSink adapts an io.Writer into a ByteSink.
type writerSink struct {
	w io.Writer
}

// FromWriter wraps an io.Writer as a ByteSink. IO failures are surfaced
// wrapped in lerrs.ErrIO.
func FromWriter(w io.Writer) ByteSink { return &writerSink{w: w} }

func (s *writerSink) WriteU8(b byte) error {
	_, err := s.w.Write([]byte{b})
	if err != nil {
		return lerrs.Wrap(lerrs.ErrIO, "write_u8", err)
	}

	return nil
}

func (s *writerSink) WriteAll(p []byte) error {
	_, err := s.w.Write(p)
	if err != nil {
		return lerrs.Wrap(lerrs.ErrIO, "write_all", err)
	}

	return nil
}

// readerSource adapts a buffered io.Reader into a ByteSource.
type readerSource struct {
	r *bufio.Reader
}

// FromReader wraps an io.Reader as a ByteSource. IO failures are surfaced
// wrapped in lerrs.ErrIO; a short read is surfaced as
// lerrs.ErrUnexpectedEnd.
func FromReader(r io.Reader) ByteSource {
	return &readerSource{r: bufio.NewReader(r)}
}

func (s *readerSource) ReadU8() (byte, error) {
	b, err := s.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			return 0, lerrs.Wrap(lerrs.ErrUnexpectedEnd, "read_u8", nil)
		}

		return 0, lerrs.Wrap(lerrs.ErrIO, "read_u8", err)
	}

	return b, nil
}

func (s *readerSource) ReadExact(p []byte) error {
	_, err := io.ReadFull(s.r, p)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return lerrs.Wrap(lerrs.ErrUnexpectedEnd, "read_exact", nil)
		}

		return lerrs.Wrap(lerrs.ErrIO, "read_exact", err)
	}

	return nil
}
