package bi5

import (
	"io/fs"
	"path/filepath"
	"testing"
	"time"

	"github.com/arloliu/bi5/errs"
	"github.com/arloliu/bi5/format"
	"github.com/arloliu/bi5/record"
	"github.com/arloliu/bi5/timebase"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

var canonicalTick = record.Tick{Millisecs: 1860002, Ask: 133153, Bid: 133117, AskVolume: 0.015, BidVolume: 0.02}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("CanonicalRecord", func(t *testing.T) {
		path := writeTickFile(t, filepath.Join(dir, "canonical.bi5"), []record.Tick{canonicalTick})

		ticks, err := ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, []record.Tick{canonicalTick}, ticks)
	})

	t.Run("PreservesFileOrder", func(t *testing.T) {
		want := hourTicks(500, 0)
		path := writeTickFile(t, filepath.Join(dir, "order.bi5"), want)

		ticks, err := ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, want, ticks)
	})

	t.Run("EmptyFile", func(t *testing.T) {
		path := writeFile(t, filepath.Join(dir, "empty.bi5"), nil)

		ticks, err := ReadFile(path)
		require.NoError(t, err)
		require.Empty(t, ticks)
	})

	t.Run("EmptyPayload", func(t *testing.T) {
		path := writeFile(t, filepath.Join(dir, "empty-payload.bi5"), compressLZMA(t, nil))

		ticks, err := ReadFile(path)
		require.NoError(t, err)
		require.Empty(t, ticks)
	})

	t.Run("MissingFile", func(t *testing.T) {
		path := filepath.Join(dir, "missing.bi5")

		ticks, err := ReadFile(path)
		require.Nil(t, ticks)
		require.ErrorIs(t, err, errs.ErrIO)
		require.ErrorIs(t, err, fs.ErrNotExist)
		require.Equal(t, errs.KindIO, errs.KindOf(err))

		var ioErr *errs.IOError
		require.ErrorAs(t, err, &ioErr)
		require.Equal(t, path, ioErr.Path)
	})

	t.Run("Directory", func(t *testing.T) {
		_, err := ReadFile(dir)
		require.ErrorIs(t, err, errs.ErrIO)
	})

	t.Run("CorruptedStream", func(t *testing.T) {
		raw := compressLZMA(t, encodeTicks(hourTicks(10, 0)))
		path := writeFile(t, filepath.Join(dir, "corrupt.bi5"), corruptHeader(raw))

		ticks, err := ReadFile(path)
		require.Nil(t, ticks)
		require.ErrorIs(t, err, errs.ErrDecompression)
		require.Equal(t, errs.KindDecompression, errs.KindOf(err))
		require.Contains(t, err.Error(), path)
	})

	t.Run("InvalidLength", func(t *testing.T) {
		payload := append(encodeTicks(hourTicks(3, 0)), 0x01)
		path := writeFile(t, filepath.Join(dir, "short.bi5"), compressLZMA(t, payload))

		ticks, err := ReadFile(path)
		require.Nil(t, ticks)
		require.ErrorIs(t, err, errs.ErrInvalidLength)

		var lenErr *errs.LengthError
		require.ErrorAs(t, err, &lenErr)
		require.Equal(t, 3*record.Size+1, lenErr.Length)
	})
}

func TestReadTicks(t *testing.T) {
	path := writeTickFile(t, filepath.Join(t.TempDir(), "14h_ticks.bi5"), []record.Tick{
		{Millisecs: 60002},
		canonicalTick,
	})

	t.Run("WithBase", func(t *testing.T) {
		base := timebase.At(time.Date(2022, time.December, 16, 14, 0, 0, 0, time.UTC))

		ticks, err := ReadTicks(path, base)
		require.NoError(t, err)
		require.Len(t, ticks, 2)
		require.Equal(t, "2022-12-16T14:01:00.002", ticks[0].Time.Format(timebase.LayoutMillis))
		require.Equal(t, "2022-12-16T14:31:00.002", ticks[1].Time.Format(timebase.LayoutMillis))
		require.Equal(t, canonicalTick, ticks[1].Tick)
	})

	t.Run("WithoutBase", func(t *testing.T) {
		ticks, err := ReadTicks(path, timebase.None())
		require.NoError(t, err)
		require.Equal(t, "0000-01-01T00:31:00.002", ticks[1].Time.Format(timebase.LayoutMillis))
	})

	t.Run("Error", func(t *testing.T) {
		ticks, err := ReadTicks(filepath.Join(t.TempDir(), "nope.bi5"), timebase.None())
		require.Nil(t, ticks)
		require.ErrorIs(t, err, errs.ErrIO)
	})
}

func TestDecode(t *testing.T) {
	want := hourTicks(50, 3)
	payload := encodeTicks(want)

	t.Run("LZMA", func(t *testing.T) {
		ticks, err := Decode(compressLZMA(t, payload))
		require.NoError(t, err)
		require.Equal(t, want, ticks)
	})

	t.Run("ZstdMirror", func(t *testing.T) {
		enc, err := zstd.NewWriter(nil)
		require.NoError(t, err)
		defer enc.Close()

		ticks, err := Decode(enc.EncodeAll(payload, nil), WithCompression(format.CompressionZstd))
		require.NoError(t, err)
		require.Equal(t, want, ticks)
	})

	t.Run("Uncompressed", func(t *testing.T) {
		ticks, err := Decode(payload, WithCompression(format.CompressionNone))
		require.NoError(t, err)
		require.Equal(t, want, ticks)
	})

	t.Run("Empty", func(t *testing.T) {
		ticks, err := Decode(nil)
		require.NoError(t, err)
		require.Empty(t, ticks)
	})

	t.Run("Corrupted", func(t *testing.T) {
		_, err := Decode(corruptHeader(compressLZMA(t, payload)))
		require.ErrorIs(t, err, errs.ErrDecompression)
	})

	t.Run("InvalidOption", func(t *testing.T) {
		_, err := Decode(payload, WithCompression(format.CompressionType(0x7F)))
		require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
	})
}
