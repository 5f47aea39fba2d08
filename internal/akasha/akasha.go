package akasha

import (
	"encoding/base64"
	"fmt"

	perrors "github.com/PolarWolf314/pigment/internal/errors"
)

// Codec runs the full compress, encrypt, encode pipeline.
type Codec struct {
	cipher *Cipher
}

// NewCodec returns a Codec using c, or the embedded key when c is nil.
func NewCodec(c *Cipher) *Codec {
	if c == nil {
		c = DefaultCipher()
	}
	return &Codec{cipher: c}
}

// Encode turns settings text into a persisted blob.
func (c *Codec) Encode(text string) (string, error) {
	compressed, err := Compress([]byte(text))
	if err != nil {
		return "", err
	}
	frame, err := c.cipher.Seal(compressed)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(frame), nil
}

// Decode turns a persisted blob back into settings text. Any error means the
// whole blob must be discarded.
func (c *Codec) Decode(blob string) (string, error) {
	frame, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", fmt.Errorf("%w: %v", perrors.ErrBadEncoding, err)
	}
	compressed, err := c.cipher.Open(frame)
	if err != nil {
		return "", err
	}
	text, err := Decompress(compressed)
	if err != nil {
		return "", err
	}
	return string(text), nil
}
