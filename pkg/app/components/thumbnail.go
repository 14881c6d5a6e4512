package components

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// RenderThumbnail draws img inside a cols x rows cell box using upper half blocks, two
// pixels per cell. Aspect ratio is preserved.
func RenderThumbnail(img image.Image, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}
	w, h := fitBox(img.Bounds().Dx(), img.Bounds().Dy(), cols, rows*2)
	if w == 0 || h == 0 {
		return ""
	}
	if h%2 == 1 {
		h++
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	var b strings.Builder
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			top := hexColor(dst, x, y)
			bottom := hexColor(dst, x, y+1)
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render("▀"))
		}
		if y+2 < h {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func fitBox(srcW, srcH, maxW, maxH int) (int, int) {
	if srcW <= 0 || srcH <= 0 {
		return 0, 0
	}
	if srcW <= maxW && srcH <= maxH {
		return srcW, srcH
	}
	scale := float64(maxW) / float64(srcW)
	if s := float64(maxH) / float64(srcH); s < scale {
		scale = s
	}
	w := int(float64(srcW) * scale)
	h := int(float64(srcH) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func hexColor(img *image.RGBA, x, y int) string {
	c := img.RGBAAt(x, y)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
