package compress

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Blob layout constants
const (
	// LengthPrefixSize is the width of the uncompressed length header
	LengthPrefixSize = 4

	// MaxUncompressedSize bounds the length header accepted on decode
	MaxUncompressedSize = 16 << 20
)

var (
	// ErrTruncated is returned when the blob is shorter than its header
	ErrTruncated = errors.New("blob shorter than length prefix")
	// ErrLengthMismatch is returned when the inflated data disagrees with the header
	ErrLengthMismatch = errors.New("uncompressed length does not match prefix")
	// ErrTooLarge is returned when the header announces more than MaxUncompressedSize
	ErrTooLarge = errors.New("uncompressed length exceeds limit")
)

// Service is the gzip based Codec
type Service struct {
	level int
}

// NewService creates a codec using the default compression level
func NewService() Codec {
	return &Service{level: gzip.DefaultCompression}
}

// Compress encodes text into the persisted blob format
func (s *Service) Compress(text string) (string, error) {
	raw := []byte(text)

	var buf bytes.Buffer
	var header [LengthPrefixSize]byte
	binary.LittleEndian.PutUint32(header[:], uint32(len(raw)))
	buf.Write(header[:])

	zw, err := gzip.NewWriterLevel(&buf, s.level)
	if err != nil {
		return "", fmt.Errorf("failed to create gzip writer: %w", err)
	}
	if _, err := zw.Write(raw); err != nil {
		return "", fmt.Errorf("failed to compress: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("failed to finish gzip stream: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Decompress reverses Compress. Any malformed input yields an error.
func (s *Service) Decompress(blob string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}
	if len(data) < LengthPrefixSize {
		return "", ErrTruncated
	}

	size := binary.LittleEndian.Uint32(data[:LengthPrefixSize])
	if size > MaxUncompressedSize {
		return "", fmt.Errorf("%w: %d", ErrTooLarge, size)
	}

	zr, err := gzip.NewReader(bytes.NewReader(data[LengthPrefixSize:]))
	if err != nil {
		return "", fmt.Errorf("failed to open gzip stream: %w", err)
	}
	defer zr.Close()

	out, err := io.ReadAll(io.LimitReader(zr, int64(size)+1))
	if err != nil {
		return "", fmt.Errorf("failed to decompress: %w", err)
	}
	if len(out) != int(size) {
		return "", fmt.Errorf("%w: header %d, got %d", ErrLengthMismatch, size, len(out))
	}

	return string(out), nil
}

// UncompressedSize reads the length header of a blob without inflating it
func UncompressedSize(blob string) (int, error) {
	data, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return 0, fmt.Errorf("failed to decode base64: %w", err)
	}
	if len(data) < LengthPrefixSize {
		return 0, ErrTruncated
	}
	return int(binary.LittleEndian.Uint32(data[:LengthPrefixSize])), nil
}
