package format

import (
	"fmt"
	"strings"
)

type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed record stream.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 stream compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 frame compression.
	CompressionLZMA CompressionType = 0x5 // CompressionLZMA represents LZMA "alone" streams, the native bi5 format.
	CompressionXZ   CompressionType = 0x6 // CompressionXZ represents LZMA2 streams in an xz container.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionLZMA:
		return "LZMA"
	case CompressionXZ:
		return "XZ"
	default:
		return "Unknown"
	}
}

// Extension returns the file name suffix of tick files stored with this compression.
// Unknown types return an empty string.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionLZMA:
		return ".bi5"
	case CompressionXZ:
		return ".bi5.xz"
	case CompressionZstd:
		return ".bi5.zst"
	case CompressionS2:
		return ".bi5.s2"
	case CompressionLZ4:
		return ".bi5.lz4"
	case CompressionNone:
		return ".bi5.raw"
	default:
		return ""
	}
}

// ParseCompressionType parses a case-insensitive compression name such as "lzma" or "zstd".
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lzma", "bi5":
		return CompressionLZMA, nil
	case "xz", "lzma2":
		return CompressionXZ, nil
	case "zstd", "zst":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	case "none", "raw":
		return CompressionNone, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}
