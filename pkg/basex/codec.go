package basex

import "sync"

// Codec encodes against alphabets chosen per call. Encodings are built once
// per distinct alphabet and cached. The zero value is ready to use.
type Codec struct {
	cache sync.Map // alphabet -> *Encoding
}

// Encoding returns the cached Encoding for alphabet, building it on first use.
func (c *Codec) Encoding(alphabet string) (*Encoding, error) {
	if cached, ok := c.cache.Load(alphabet); ok {
		enc, _ := cached.(*Encoding)
		return enc, nil
	}
	enc, err := NewEncoding(alphabet)
	if err != nil {
		return nil, err
	}
	actual, _ := c.cache.LoadOrStore(alphabet, enc)
	enc, _ = actual.(*Encoding)
	return enc, nil
}

func (c *Codec) Encode(alphabet string, src []byte) (string, error) {
	enc, err := c.Encoding(alphabet)
	if err != nil {
		return "", err
	}
	return enc.Encode(src), nil
}

func (c *Codec) Decode(alphabet, s string) ([]byte, error) {
	enc, err := c.Encoding(alphabet)
	if err != nil {
		return nil, err
	}
	return enc.Decode(s)
}
