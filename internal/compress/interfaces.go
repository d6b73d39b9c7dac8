package compress

// Codec turns text into a compact printable blob and back.
type Codec interface {
	Compress(text string) (string, error)
	Decompress(blob string) (string, error)
}
