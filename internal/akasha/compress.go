package akasha

import (
	"bytes"
	"compress/flate"
	"fmt"
	"io"

	perrors "github.com/PolarWolf314/pigment/internal/errors"
)

// MaxDecompressedSize bounds the output of Decompress.
const MaxDecompressedSize = 1 << 20

// Compress raw-deflates data with no zlib or gzip header.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("failed to create deflate writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("failed to compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to compress: %w", err)
	}
	return buf.Bytes(), nil
}

// Decompress inflates raw-deflate data.
func Decompress(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()

	out, err := io.ReadAll(io.LimitReader(r, MaxDecompressedSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", perrors.ErrDecompress, err)
	}
	if len(out) > MaxDecompressedSize {
		return nil, fmt.Errorf("%w: output exceeds %d bytes", perrors.ErrDecompress, MaxDecompressedSize)
	}
	return out, nil
}
