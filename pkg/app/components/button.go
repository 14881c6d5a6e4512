package components

import (
	"sync"

	"github.com/kerbaras/faceswap/pkg/app/styles"
)

type Button struct {
	mu      sync.Mutex
	label   string
	enabled bool
	visible bool
}

func NewButton(label string) *Button {
	return &Button{label: label, enabled: true, visible: true}
}

func (b *Button) SetVisible(visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.visible = visible
}

// SetImageSource is a no-op; buttons have no image.
func (b *Button) SetImageSource(string) {}

func (b *Button) SetText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.label = text
}

func (b *Button) SetEnabled(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enabled = enabled
}

func (b *Button) Enabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enabled
}

func (b *Button) Label() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.label
}

func (b *Button) View(focused bool) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.visible {
		return ""
	}
	switch {
	case !b.enabled:
		return styles.DisabledButtonStyle.Render(b.label)
	case focused:
		return styles.FocusedButtonStyle.Render(b.label)
	default:
		return styles.ButtonStyle.Render(b.label)
	}
}
