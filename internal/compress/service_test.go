package compress

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"strings"
	"testing"
)

func TestCompress_RoundTrip(t *testing.T) {
	codec := NewService()

	tests := []string{
		"",
		"MAIN[{}]\u200b\u200b\u200b",
		`MAIN[{"enabled":true,"guiXOffset":-12.5}]` + "\u200b\u200b\u200b",
		strings.Repeat("hierarchy ", 1000),
		"Привет, мир",
	}

	for _, text := range tests {
		blob, err := codec.Compress(text)
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}
		got, err := codec.Decompress(blob)
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}
		if got != text {
			t.Errorf("Expected %q, got %q", text, got)
		}
	}
}

func TestCompress_LengthPrefix(t *testing.T) {
	codec := NewService()
	text := "MAIN[x]\u200b\u200b\u200b"

	blob, err := codec.Compress(text)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		t.Fatalf("Blob is not base64: %v", err)
	}
	if got := binary.LittleEndian.Uint32(raw[:4]); int(got) != len(text) {
		t.Errorf("Expected prefix %d, got %d", len(text), got)
	}
	// gzip magic follows the prefix
	if raw[4] != 0x1f || raw[5] != 0x8b {
		t.Errorf("Expected gzip header after prefix, got %x %x", raw[4], raw[5])
	}

	size, err := UncompressedSize(blob)
	if err != nil || size != len(text) {
		t.Errorf("UncompressedSize = %d, %v; expected %d", size, err, len(text))
	}
}

func TestDecompress_Malformed(t *testing.T) {
	codec := NewService()

	tests := []struct {
		name string
		blob string
	}{
		{"not base64", "%%% definitely not base64 %%%"},
		{"too short", base64.StdEncoding.EncodeToString([]byte{1, 2})},
		{"not gzip", base64.StdEncoding.EncodeToString([]byte{5, 0, 0, 0, 'h', 'e', 'l', 'l', 'o'})},
		{"huge prefix", base64.StdEncoding.EncodeToString([]byte{0xff, 0xff, 0xff, 0x7f, 0x1f, 0x8b})},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := codec.Decompress(test.blob); err == nil {
				t.Error("Expected an error for malformed blob")
			}
		})
	}
}

func TestDecompress_LengthMismatch(t *testing.T) {
	codec := NewService()
	blob, err := codec.Compress("hello")
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(blob)
	binary.LittleEndian.PutUint32(raw[:4], 3)
	tampered := base64.StdEncoding.EncodeToString(raw)

	_, err = codec.Decompress(tampered)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Expected ErrLengthMismatch, got %v", err)
	}
}
