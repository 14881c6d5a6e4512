package cmd

import (
	"bytes"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func writePNG(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 3, 3))))
	return path
}

func TestPingCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"paths": {"/swap_faces/": {}}}`))
	}))
	defer server.Close()

	out := run(t, "ping", "--endpoint", server.URL)
	assert.Contains(t, out, server.URL+"/swap_faces/")
}

func TestPreviewCommand(t *testing.T) {
	path := writePNG(t, t.TempDir(), "face.png")

	out := run(t, "preview", path, "--endpoint", "http://localhost:8000")
	assert.Contains(t, out, "face.png")
	assert.Contains(t, out, "image/png")
	assert.Contains(t, out, "data:image/png;base64,")
}

func TestSwapCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Header().Set("Content-Disposition", "attachment; filename=swapped_result.jpg")
		w.Write([]byte("swapped"))
	}))
	defer server.Close()

	dir := t.TempDir()
	source := writePNG(t, dir, "source.png")
	target := writePNG(t, dir, "target.png")
	outDir := filepath.Join(dir, "out")

	out := run(t, "swap", source, target, "-o", outDir, "--endpoint", server.URL)
	assert.Contains(t, out, "Swapped image saved")

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "swapped_result-"))
}
