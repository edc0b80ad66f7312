// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := parseFlags(nil, io.Discard)
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, cfg.LogLevel)
	require.Equal(t, "res/vector.json", cfg.VectorPath)
	require.Equal(t, "res/matrix.json", cfg.MatrixPath)
	require.Equal(t, ".", cfg.OutDir)
	require.Equal(t, 512, cfg.Size)
	require.True(t, cfg.Noise)
	require.Equal(t, int64(1), cfg.Seed)
}

func TestParseFlags_Overrides(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-log-level", "debug", "-out", "", "-size", "32", "-noise=false", "-caption", "  hi  ",
	}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, cfg.LogLevel)
	require.Empty(t, cfg.OutDir)
	require.Equal(t, 32, cfg.Size)
	require.False(t, cfg.Noise)
	require.Equal(t, "hi", cfg.Caption)

	var stderr bytes.Buffer
	_, err = parseFlags([]string{"-log-level", "loud"}, &stderr)
	require.Error(t, err)
	require.NotEmpty(t, stderr.String())
}

func TestRun_FullDemo(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		LogLevel:   slog.LevelDebug,
		VectorPath: writeFixture(t, dir, "vector.json", `{"values":[1.5,2.5,-3,1]}`),
		MatrixPath: writeFixture(t, dir, "matrix.json", `{"values":[1,0,0,10, 0,2,0,20, 0,0,3,30, 0,0,0,1]}`),
		OutDir:     dir,
		Size:       24,
		Noise:      true,
		Seed:       3,
		Caption:    "rt",
	}

	var out, logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: cfg.LogLevel}))
	require.NoError(t, run(cfg, &out, logger))

	got := out.String()
	require.Contains(t, got, "det of mat4_16f32: -128")
	require.Contains(t, got, "dot product of vec4_3f32 and vec4_4f32: 40")
	require.Contains(t, got, "Vector4(1.5, 2.5, -3, 1)")
	require.Contains(t, got, "[0, 0, 3, 30]")
	require.Contains(t, logs.String(), "msg=construct")

	for _, name := range []string{"gradient.png", "sphere.png", "fractal.png"} {
		fi, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		require.Positive(t, fi.Size())
	}
}

func TestRun_SkipsImagesAndReportsLoadErrors(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		VectorPath: writeFixture(t, dir, "vector.json", `{"values":[0,0,0,1]}`),
		MatrixPath: filepath.Join(dir, "absent.json"),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var out bytes.Buffer
	err := run(cfg, &out, logger)
	require.ErrorContains(t, err, "json matrix")

	cfg.MatrixPath = writeFixture(t, dir, "matrix.json", `{"values":[1,0,0,0, 0,1,0,0, 0,0,1,0, 0,0,0,1]}`)
	out.Reset()
	require.NoError(t, run(cfg, &out, logger))
	require.Contains(t, out.String(), "Image generation skipped.")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}
