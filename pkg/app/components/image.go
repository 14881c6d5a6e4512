package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/kerbaras/faceswap/pkg/app/styles"
	"github.com/kerbaras/faceswap/pkg/data"
	"github.com/kerbaras/faceswap/pkg/integrations"
	"github.com/vincent-petithory/dataurl"
)

// ImageView is an image element: a preview thumbnail or the swap result. It is safe to
// mutate from a tea.Cmd while the program renders it.
type ImageView struct {
	title string

	mu      sync.Mutex
	visible bool
	src     string
	caption string
	enabled bool

	cached     string
	cachedSrc  string
	cachedCols int
	cachedRows int
}

func NewImageView(title string) *ImageView {
	return &ImageView{title: title, enabled: true}
}

func (v *ImageView) SetVisible(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.visible = visible
}

func (v *ImageView) SetImageSource(src string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.src = src
}

func (v *ImageView) SetText(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.caption = text
}

func (v *ImageView) SetEnabled(enabled bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.enabled = enabled
}

func (v *ImageView) Visible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.visible
}

func (v *ImageView) Source() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.src
}

// View renders the image into a cols x rows box, or nothing while hidden.
func (v *ImageView) View(cols, rows int) string {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.visible {
		return ""
	}

	if v.cachedSrc != v.src || v.cachedCols != cols || v.cachedRows != rows {
		v.cached = v.render(cols, rows)
		v.cachedSrc, v.cachedCols, v.cachedRows = v.src, cols, rows
	}

	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render(v.title))
	b.WriteString("\n")
	b.WriteString(v.cached)
	if v.caption != "" {
		b.WriteString("\n")
		b.WriteString(styles.MutedStyle.Render(v.caption))
	}
	return b.String()
}

func (v *ImageView) render(cols, rows int) string {
	src := v.src
	if strings.HasPrefix(src, "file://") {
		path, err := integrations.PathFromURL(src)
		if err != nil {
			return styles.StatusError.Render(err.Error())
		}
		du, err := loadAsDataURL(path)
		if err != nil {
			return styles.StatusError.Render(err.Error())
		}
		src = du
	}

	img, err := integrations.DecodeDataURL(src)
	if err != nil {
		return styles.StatusError.Render(fmt.Sprintf("cannot display image: %s", err))
	}

	info := ""
	if du, err := dataurl.DecodeString(src); err == nil {
		info = fmt.Sprintf("%dx%d • %s • %s",
			img.Bounds().Dx(), img.Bounds().Dy(), du.MediaType.ContentType(), humanize.Bytes(uint64(len(du.Data))))
	}

	out := RenderThumbnail(img, cols, rows)
	if info != "" {
		out += "\n" + styles.MutedStyle.Render(info)
	}
	return out
}

func loadAsDataURL(path string) (string, error) {
	file, err := data.LoadFile(path)
	if err != nil {
		return "", err
	}
	return dataurl.New(file.Content, file.MimeType).String(), nil
}
