package bi5

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arloliu/bi5/record"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz/lzma"
)

func compressLZMA(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := lzma.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func encodeTicks(ticks []record.Tick) []byte {
	buf := make([]byte, 0, len(ticks)*record.Size)
	for _, tick := range ticks {
		buf = record.Append(buf, tick)
	}

	return buf
}

// hourTicks returns n ticks spread over one hour with slowly moving prices.
func hourTicks(n int, seed uint32) []record.Tick {
	ticks := make([]record.Tick, n)
	step := uint32(3_600_000 / (n + 1))
	for i := range ticks {
		ticks[i] = record.Tick{
			Millisecs: uint32(i) * step,
			Ask:       133150 + seed + uint32(i%7),
			Bid:       133110 + seed + uint32(i%5),
			AskVolume: 0.015,
			BidVolume: 0.02,
		}
	}

	return ticks
}

func writeFile(t *testing.T, path string, data []byte) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path
}

// writeTickFile writes ticks as an LZMA-compressed bi5 file.
func writeTickFile(t *testing.T, path string, ticks []record.Tick) string {
	t.Helper()

	return writeFile(t, path, compressLZMA(t, encodeTicks(ticks)))
}

// corruptHeader returns a copy of an LZMA stream with an invalid properties byte.
func corruptHeader(data []byte) []byte {
	out := append([]byte{}, data...)
	out[0] = 0xFF

	return out
}
