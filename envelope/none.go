package envelope

// NoneCodec passes payloads through unchanged. Useful as a baseline and
// for payloads already compressed upstream.
type NoneCodec struct{}

var _ Codec = NoneCodec{}

func (NoneCodec) ID() ID { return IDNone }

func (NoneCodec) Compress(data []byte) ([]byte, error) { return data, nil }

func (NoneCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
