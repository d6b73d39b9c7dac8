package compress

// Package compress implements the blob codec used to persist settings: the
// UTF-8 text is gzip compressed, prefixed with its uncompressed byte length as
// a 4-byte little-endian integer, and base64 encoded.
