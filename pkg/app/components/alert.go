package components

import (
	"sync"

	"github.com/kerbaras/faceswap/pkg/app/styles"
)

// Alert holds the message currently shown to the user until dismissed.
type Alert struct {
	mu      sync.Mutex
	message string
}

func NewAlert() *Alert {
	return &Alert{}
}

func (a *Alert) Alert(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.message = message
}

func (a *Alert) Dismiss() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.message = ""
}

func (a *Alert) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.message != ""
}

func (a *Alert) Message() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.message
}

func (a *Alert) View(width int) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.message == "" {
		return ""
	}
	style := styles.AlertStyle
	if width > 4 {
		style = style.Width(width - 4)
	}
	return style.Render(a.message + "\n\n" + styles.HelpStyle.Render("esc: dismiss"))
}
