package components

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vincent-petithory/dataurl"
)

func createTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 50, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	return buf.Bytes()
}

func TestButtonState(t *testing.T) {
	b := NewButton("Swap Faces")

	if !b.Enabled() {
		t.Error("Expected button to start enabled")
	}

	b.SetEnabled(false)
	b.SetText("Swapping...")

	if b.Enabled() {
		t.Error("Expected button to be disabled")
	}
	if b.Label() != "Swapping..." {
		t.Errorf("Expected label 'Swapping...', got %s", b.Label())
	}
	if !strings.Contains(b.View(true), "Swapping...") {
		t.Error("Expected label in view")
	}

	b.SetVisible(false)
	if b.View(false) != "" {
		t.Error("Expected hidden button to render nothing")
	}
}

func TestAlert(t *testing.T) {
	a := NewAlert()

	if a.Active() {
		t.Error("Expected no alert initially")
	}
	if a.View(80) != "" {
		t.Error("Expected empty view without alert")
	}

	a.Alert("Error: No face detected in the source image.")

	if !a.Active() {
		t.Error("Expected alert to be active")
	}
	if !strings.Contains(a.View(80), "No face detected") {
		t.Error("Expected message in view")
	}

	a.Dismiss()
	if a.Active() {
		t.Error("Expected alert to be dismissed")
	}
}

func TestSection(t *testing.T) {
	s := NewSection()
	if s.Visible() {
		t.Error("Expected section hidden initially")
	}
	s.SetVisible(true)
	if !s.Visible() {
		t.Error("Expected section visible")
	}
}

func TestFileInputPick(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "face.png")
	if err := os.WriteFile(path, createTestPNG(t, 2, 2), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	f := NewFileInput("source")

	if f.Selected() != nil {
		t.Error("Expected no selection initially")
	}

	if err := f.Pick(path); err != nil {
		t.Fatalf("Pick failed: %v", err)
	}
	if f.Selected() == nil || f.Selected().MimeType != "image/png" {
		t.Errorf("Expected PNG selection, got %+v", f.Selected())
	}

	if err := f.Pick("   "); err != nil {
		t.Errorf("Expected clearing to succeed, got %v", err)
	}
	if f.Selected() != nil {
		t.Error("Expected selection to be cleared")
	}

	if err := f.Pick(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}
	if f.Selected() != nil {
		t.Error("Expected failed pick to clear selection")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := expandHome("~/a.png"); got != filepath.Join(home, "a.png") {
		t.Errorf("Expected home expansion, got %s", got)
	}
	if got := expandHome("/tmp/a.png"); got != "/tmp/a.png" {
		t.Errorf("Expected path unchanged, got %s", got)
	}
}

func TestImageViewHidden(t *testing.T) {
	v := NewImageView("Source")
	v.SetImageSource(dataurl.New(createTestPNG(t, 4, 4), "image/png").String())

	if v.View(10, 5) != "" {
		t.Error("Expected hidden view to render nothing")
	}
}

func TestImageViewRendersDataURL(t *testing.T) {
	v := NewImageView("Source")
	v.SetImageSource(dataurl.New(createTestPNG(t, 4, 4), "image/png").String())
	v.SetVisible(true)

	view := v.View(10, 5)

	if !strings.Contains(view, "Source") {
		t.Error("Expected title in view")
	}
	if !strings.Contains(view, "▀") {
		t.Error("Expected thumbnail blocks in view")
	}
	if !strings.Contains(view, "4x4") {
		t.Error("Expected dimensions in view")
	}
}

func TestImageViewRendersFileURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.png")
	if err := os.WriteFile(path, createTestPNG(t, 6, 2), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	v := NewImageView("Result")
	v.SetImageSource("file://" + filepath.ToSlash(path))
	v.SetVisible(true)

	if !strings.Contains(v.View(10, 5), "6x2") {
		t.Error("Expected dimensions of file image in view")
	}
}

func TestImageViewBadSource(t *testing.T) {
	v := NewImageView("Source")
	v.SetImageSource("#")
	v.SetVisible(true)

	if !strings.Contains(v.View(10, 5), "cannot display image") {
		t.Error("Expected error message for undecodable source")
	}
}

func TestRenderThumbnail(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))

	out := RenderThumbnail(img, 20, 10)
	lines := strings.Split(out, "\n")

	// 100x50 fits into 20x20 pixels as 20x10, i.e. 5 rows of half blocks
	if len(lines) != 5 {
		t.Errorf("Expected 5 lines, got %d", len(lines))
	}
	if strings.Count(lines[0], "▀") != 20 {
		t.Errorf("Expected 20 cells per line, got %d", strings.Count(lines[0], "▀"))
	}
}

func TestRenderThumbnailEmpty(t *testing.T) {
	if RenderThumbnail(nil, 10, 10) != "" {
		t.Error("Expected empty output for nil image")
	}
	if RenderThumbnail(image.NewRGBA(image.Rect(0, 0, 4, 4)), 0, 10) != "" {
		t.Error("Expected empty output for zero width")
	}
}

func TestFitBox(t *testing.T) {
	tests := []struct {
		srcW, srcH, maxW, maxH int
		wantW, wantH           int
	}{
		{10, 10, 20, 20, 10, 10},
		{100, 50, 20, 20, 20, 10},
		{50, 100, 20, 20, 10, 20},
		{1000, 1, 10, 10, 10, 1},
		{0, 10, 10, 10, 0, 0},
	}

	for _, tt := range tests {
		w, h := fitBox(tt.srcW, tt.srcH, tt.maxW, tt.maxH)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("fitBox(%d, %d, %d, %d) = %d, %d; want %d, %d",
				tt.srcW, tt.srcH, tt.maxW, tt.maxH, w, h, tt.wantW, tt.wantH)
		}
	}
}
