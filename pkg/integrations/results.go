package integrations

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/kerbaras/faceswap/pkg/data"
)

// ResultStore writes swapped images to a directory and hands out file:// URLs for them.
// Only the most recent result is kept unless Keep is set.
type ResultStore struct {
	dir     string
	keep    bool
	tempDir bool

	mu      sync.Mutex
	current string
}

// NewResultStore stores results in dir. An empty dir uses a fresh temp directory.
func NewResultStore(dir string, keep bool) (*ResultStore, error) {
	if dir == "" {
		tempDir, err := os.MkdirTemp("", "faceswap-*")
		if err != nil {
			return nil, fmt.Errorf("failed to create temp dir: %w", err)
		}
		return &ResultStore{dir: tempDir, keep: keep, tempDir: true}, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &ResultStore{dir: dir, keep: keep}, nil
}

func (s *ResultStore) Dir() string {
	return s.dir
}

func (s *ResultStore) Store(result *data.SwapResult) (string, error) {
	if result == nil || len(result.Image) == 0 {
		return "", fmt.Errorf("empty result")
	}

	path := filepath.Join(s.dir, resultName(result))
	if err := os.WriteFile(path, result.Image, 0644); err != nil {
		return "", fmt.Errorf("failed to write result: %w", err)
	}

	s.mu.Lock()
	previous := s.current
	s.current = path
	s.mu.Unlock()

	if previous != "" && !s.keep {
		os.Remove(previous)
	}
	return FileURL(path), nil
}

// Close releases the last stored result, and the directory too if the store created it.
func (s *ResultStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.keep {
		return nil
	}
	if s.tempDir {
		s.current = ""
		return os.RemoveAll(s.dir)
	}
	if s.current == "" {
		return nil
	}
	err := os.Remove(s.current)
	s.current = ""
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func resultName(result *data.SwapResult) string {
	base := strings.TrimSuffix(filepath.Base(result.Filename), filepath.Ext(result.Filename))
	if base == "" || base == "." {
		base = "swapped"
	}
	ext := filepath.Ext(result.Filename)
	if ext == "" {
		ext = extensionFor(result.ContentType)
	}
	return fmt.Sprintf("%s-%s%s", base, uuid.NewString()[:8], ext)
}

func extensionFor(contentType string) string {
	switch strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0])) {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}

// FileURL converts an absolute or relative path to a file:// URL.
func FileURL(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
}

// PathFromURL is the inverse of FileURL.
func PathFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("not a file URL: %s", raw)
	}
	return filepath.FromSlash(u.Path), nil
}
