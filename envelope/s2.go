package envelope

import "github.com/klauspost/compress/s2"

// S2Codec compresses frames with S2, a faster Snappy-compatible codec.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2Codec creates an S2 Codec.
func NewS2Codec() S2Codec { return S2Codec{} }

func (S2Codec) ID() ID { return IDS2 }

func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
