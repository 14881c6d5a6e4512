package data

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// ErrMissingImages is returned when a swap is attempted without both images selected.
var ErrMissingImages = errors.New("both source and target images are required")

// SelectedFile is a file picked by the user for either side of a swap.
type SelectedFile struct {
	Name     string
	Content  []byte
	MimeType string
}

// LoadFile reads a file from disk and sniffs its MIME type from the content.
func LoadFile(path string) (*SelectedFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return NewSelectedFile(filepath.Base(path), content, ""), nil
}

// NewSelectedFile builds a SelectedFile, detecting the MIME type when mimeType is empty.
func NewSelectedFile(name string, content []byte, mimeType string) *SelectedFile {
	if mimeType == "" {
		mimeType = mimetype.Detect(content).String()
	}
	return &SelectedFile{Name: name, Content: content, MimeType: mimeType}
}

// Empty reports whether there is nothing to send.
func (f *SelectedFile) Empty() bool {
	return f == nil || len(f.Content) == 0
}

// SwapRequest bundles the two selections sent to the swap endpoint.
type SwapRequest struct {
	Source *SelectedFile
	Target *SelectedFile
}

func (r SwapRequest) Validate() error {
	if r.Source.Empty() || r.Target.Empty() {
		return ErrMissingImages
	}
	return nil
}

// SwapResult is the image returned by a successful swap.
type SwapResult struct {
	Image       []byte
	ContentType string
	Filename    string
}

// SwapError is a failure reported by the swap service itself.
type SwapError struct {
	StatusCode int
	Detail     string
}

func (e *SwapError) Error() string {
	return fmt.Sprintf("swap failed (%d): %s", e.StatusCode, e.Detail)
}
