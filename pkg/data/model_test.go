package data

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestNewSelectedFileDetectsMimeType(t *testing.T) {
	file := NewSelectedFile("face.png", pngHeader, "")
	assert.Equal(t, "image/png", file.MimeType)
	assert.Equal(t, "face.png", file.Name)
}

func TestNewSelectedFileKeepsGivenMimeType(t *testing.T) {
	file := NewSelectedFile("face.bin", []byte("whatever"), "image/jpeg")
	assert.Equal(t, "image/jpeg", file.MimeType)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "source.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0644))

	file, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "source.png", file.Name)
	assert.Equal(t, pngHeader, file.Content)
	assert.Equal(t, "image/png", file.MimeType)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.jpg"))
	assert.Error(t, err)
}

func TestSelectedFileEmpty(t *testing.T) {
	var nilFile *SelectedFile
	assert.True(t, nilFile.Empty())
	assert.True(t, (&SelectedFile{Name: "x"}).Empty())
	assert.False(t, (&SelectedFile{Content: []byte{1}}).Empty())
}

func TestSwapRequestValidate(t *testing.T) {
	file := &SelectedFile{Name: "a.jpg", Content: []byte{1, 2, 3}}

	tests := []struct {
		name    string
		request SwapRequest
		wantErr bool
	}{
		{"both set", SwapRequest{Source: file, Target: file}, false},
		{"missing source", SwapRequest{Target: file}, true},
		{"missing target", SwapRequest{Source: file}, true},
		{"missing both", SwapRequest{}, true},
		{"empty source", SwapRequest{Source: &SelectedFile{}, Target: file}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrMissingImages))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSwapErrorMessage(t *testing.T) {
	err := &SwapError{StatusCode: 400, Detail: "No face detected in the source image."}
	assert.Equal(t, "swap failed (400): No face detected in the source image.", err.Error())
}
