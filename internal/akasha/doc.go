// Package akasha seals settings text into the single opaque string that is
// persisted between sessions, and opens it again.
//
// # Pipeline
//
//	text -> raw deflate -> ChaCha20-Poly1305 -> base64
//
// The encrypted frame is self-describing:
//
//	nonce (12 bytes) | tag (16 bytes) | ciphertext
//
// A fresh random nonce is drawn for every Seal call, so sealing the same
// text twice yields different blobs. The key is fixed and embedded; the
// purpose is integrity and casual opacity, not secrecy from the local user.
//
// # Failure Modes
//
// Open rejects frames shorter than nonce plus tag before decrypting, and any
// authentication failure is reported as ErrAuthFailed. Flipping a single bit
// anywhere in the frame fails authentication. Decompression is bounded so a
// hostile payload cannot expand without limit.
package akasha
