package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arloliu/bi5/record"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz/lzma"
)

var canonicalTick = record.Tick{Millisecs: 1860002, Ask: 133153, Bid: 133117, AskVolume: 0.015, BidVolume: 0.02}

func writeBi5(t *testing.T, path string, payload []byte) string {
	t.Helper()
	var buf bytes.Buffer
	w, err := lzma.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	return path
}

func ticksPayload(ticks ...record.Tick) []byte {
	var buf []byte
	for _, tick := range ticks {
		buf = record.Append(buf, tick)
	}

	return buf
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestSingleFile(t *testing.T) {
	path := writeBi5(t, filepath.Join(t.TempDir(), "ticks.bi5"), ticksPayload(canonicalTick, record.Tick{Millisecs: 60002, Ask: 2, Bid: 1}))

	t.Run("Offsets", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, path)
		require.Equal(t, exitOK, code, stderr)
		require.Equal(t,
			"t\tbid\task\tbidsize\tasksize\n"+
				"1860002\t133117\t133153\t0.02\t0.015\n"+
				"60002\t1\t2\t0\t0\n",
			stdout)
	})

	t.Run("WithDate", func(t *testing.T) {
		code, stdout, _ := runCLI(t, "-d", "2022-12-16T14:00:00", "-s", ",", path)
		require.Equal(t, exitOK, code)
		require.Equal(t,
			"t,bid,ask,bidsize,asksize\n"+
				"2022-12-16 14:31:00.002,133117,133153,0.02,0.015\n"+
				"2022-12-16 14:01:00.002,1,2,0,0\n",
			stdout)
	})

	t.Run("Scale", func(t *testing.T) {
		code, stdout, _ := runCLI(t, "-scale", "5", path)
		require.Equal(t, exitOK, code)
		require.Contains(t, stdout, "1860002\t1.33117\t1.33153\t0.02\t0.015\n")
	})

	t.Run("Count", func(t *testing.T) {
		code, stdout, _ := runCLI(t, "-count", path)
		require.Equal(t, exitOK, code)
		require.Equal(t, "2\n", stdout)
	})
}

func TestDirectory(t *testing.T) {
	root := t.TempDir()
	writeBi5(t, filepath.Join(root, "2022", "11", "16", "15h_ticks.bi5"), ticksPayload(record.Tick{Millisecs: 1}))
	writeBi5(t, filepath.Join(root, "2022", "11", "16", "14h_ticks.bi5"), ticksPayload(canonicalTick))

	t.Run("Ticks", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, root)
		require.Equal(t, exitOK, code, stderr)

		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		require.Len(t, lines, 3)
		require.True(t, strings.HasPrefix(lines[1], "2022-12-16 14:31:00.002\t"))
		require.True(t, strings.HasPrefix(lines[2], "2022-12-16 15:00:00.001\t"))
	})

	t.Run("Manifest", func(t *testing.T) {
		code, stdout, _ := runCLI(t, "-manifest", "-s", ",", root)
		require.Equal(t, exitOK, code)

		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		require.Len(t, lines, 3)
		require.Equal(t, "path,base,dated,ticks,raw_bytes,decompressed_bytes,xxhash", lines[0])

		fields := strings.Split(lines[1], ",")
		require.Len(t, fields, 7)
		require.Equal(t, filepath.Join(root, "2022", "11", "16", "14h_ticks.bi5"), fields[0])
		require.Equal(t, "2022-12-16T14:00:00.000", fields[1])
		require.Equal(t, "true", fields[2])
		require.Equal(t, "1", fields[3])
		require.Equal(t, "20", fields[5])
		require.Len(t, fields[6], 16)
	})

	t.Run("Count", func(t *testing.T) {
		code, stdout, _ := runCLI(t, "-count", root)
		require.Equal(t, exitOK, code)
		require.Equal(t, "2\n", stdout)
	})

	t.Run("DebugLogs", func(t *testing.T) {
		code, _, stderr := runCLI(t, "-count", "-log-level", "debug", root)
		require.Equal(t, exitOK, code)
		require.Contains(t, stderr, `"message":"decoded tick file"`)
		require.Contains(t, stderr, `"xxhash"`)
	})

	t.Run("MetricsFile", func(t *testing.T) {
		metricsPath := filepath.Join(t.TempDir(), "catbi5.prom")

		code, _, _ := runCLI(t, "-metrics-file", metricsPath, root)
		require.Equal(t, exitOK, code)

		data, err := os.ReadFile(metricsPath)
		require.NoError(t, err)
		require.Contains(t, string(data), "bi5_files_decoded_total 2")
		require.Contains(t, string(data), "bi5_ticks_decoded_total 2")
	})
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()
	good := writeBi5(t, filepath.Join(dir, "good.bi5"), ticksPayload(canonicalTick))
	short := writeBi5(t, filepath.Join(dir, "short.bi5"), make([]byte, 21))
	corrupt := filepath.Join(dir, "corrupt.bi5")
	require.NoError(t, os.WriteFile(corrupt, []byte{0xFF, 0x00, 0x00, 0x01, 0x00}, 0o644))

	cases := []struct {
		name string
		args []string
		want int
	}{
		{"Help", []string{"-h"}, exitOK},
		{"NoPath", nil, exitUsage},
		{"TwoPaths", []string{good, good}, exitUsage},
		{"UnknownFlag", []string{"-x", good}, exitUsage},
		{"BadDate", []string{"-d", "2022-12-16", good}, exitUsage},
		{"BadCompression", []string{"-compression", "brotli", good}, exitUsage},
		{"BadLogLevel", []string{"-log-level", "loud", good}, exitUsage},
		{"BadPeriod", []string{"-period", "0s", good}, exitUsage},
		{"NegativeScale", []string{"-scale", "-1", good}, exitUsage},
		{"CountAndManifest", []string{"-count", "-manifest", good}, exitUsage},
		{"Missing", []string{filepath.Join(dir, "missing.bi5")}, exitIO},
		{"Corrupt", []string{corrupt}, exitDecompression},
		{"InvalidLength", []string{short}, exitInvalidLength},
		{"InvalidLengthCount", []string{"-count", short}, exitInvalidLength},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, c.args...)
			require.Equal(t, c.want, code, stderr)
			if c.want != exitOK {
				require.NotEmpty(t, stderr)
			}
		})
	}
}

func TestErrorAfterPartialOutput(t *testing.T) {
	root := t.TempDir()
	writeBi5(t, filepath.Join(root, "a.bi5"), ticksPayload(canonicalTick))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.bi5"), []byte("not lzma"), 0o644))

	code, stdout, stderr := runCLI(t, root)
	require.Equal(t, exitDecompression, code)
	require.Contains(t, stdout, "133117")
	require.Contains(t, stderr, "b.bi5")
}
