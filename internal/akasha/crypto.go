package akasha

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	perrors "github.com/PolarWolf314/pigment/internal/errors"
	"golang.org/x/crypto/chacha20poly1305"
)

// Frame layout sizes.
const (
	NonceSize    = chacha20poly1305.NonceSize
	TagSize      = chacha20poly1305.Overhead
	MinFrameSize = NonceSize + TagSize
	KeySize      = chacha20poly1305.KeySize
)

// embeddedKey is the fixed symmetric key for persisted settings.
var embeddedKey = sha256.Sum256([]byte("pigment/akasha/settings-key/v1"))

// Cipher seals and opens frames with ChaCha20-Poly1305.
type Cipher struct {
	aead cipher.AEAD
	rand io.Reader
}

// NewCipher returns a Cipher for a 32-byte key.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d bytes", perrors.ErrInvalidKeyLength, KeySize, len(key))
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	return &Cipher{aead: aead, rand: rand.Reader}, nil
}

// DefaultCipher returns a Cipher using the embedded key.
func DefaultCipher() *Cipher {
	c, err := NewCipher(embeddedKey[:])
	if err != nil {
		panic(err)
	}
	return c
}

// Seal encrypts plaintext into nonce | tag | ciphertext.
func (c *Cipher) Seal(plaintext []byte) ([]byte, error) {
	var nonce [NonceSize]byte
	if _, err := io.ReadFull(c.rand, nonce[:]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// The AEAD appends the tag; move it in front of the ciphertext.
	sealed := c.aead.Seal(nil, nonce[:], plaintext, nil)
	ciphertext, tag := sealed[:len(sealed)-TagSize], sealed[len(sealed)-TagSize:]

	frame := make([]byte, 0, MinFrameSize+len(ciphertext))
	frame = append(frame, nonce[:]...)
	frame = append(frame, tag...)
	frame = append(frame, ciphertext...)
	return frame, nil
}

// Open authenticates and decrypts a frame produced by Seal.
func (c *Cipher) Open(frame []byte) ([]byte, error) {
	if len(frame) < MinFrameSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", perrors.ErrFrameTooShort, len(frame), MinFrameSize)
	}

	nonce := frame[:NonceSize]
	tag := frame[NonceSize:MinFrameSize]
	ciphertext := frame[MinFrameSize:]

	sealed := make([]byte, 0, len(ciphertext)+TagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, perrors.ErrAuthFailed
	}
	return plaintext, nil
}
