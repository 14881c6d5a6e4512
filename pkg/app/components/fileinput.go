package components

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/faceswap/pkg/app/styles"
	"github.com/kerbaras/faceswap/pkg/data"
)

// FileInput is a path field that holds the file picked from it.
type FileInput struct {
	Input textinput.Model

	mu       sync.Mutex
	selected *data.SelectedFile
}

func NewFileInput(placeholder string) *FileInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 4096
	ti.Width = 50
	return &FileInput{Input: ti}
}

func (f *FileInput) Selected() *data.SelectedFile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selected
}

// Value is the path currently typed in the field.
func (f *FileInput) Value() string {
	return f.Input.Value()
}

// Pick loads the file at path as the new selection. An empty path clears the selection;
// so does a file that cannot be read.
func (f *FileInput) Pick(path string) error {
	path = expandHome(strings.TrimSpace(path))

	var file *data.SelectedFile
	var err error
	if path != "" {
		file, err = data.LoadFile(path)
	}

	f.mu.Lock()
	f.selected = file
	f.mu.Unlock()
	return err
}

func (f *FileInput) Focus() tea.Cmd {
	return f.Input.Focus()
}

func (f *FileInput) Blur() {
	f.Input.Blur()
}

func (f *FileInput) Focused() bool {
	return f.Input.Focused()
}

func (f *FileInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.Input, cmd = f.Input.Update(msg)
	return cmd
}

func (f *FileInput) View() string {
	style := styles.InputStyle
	if f.Input.Focused() {
		style = styles.FocusedInputStyle
	}
	return style.Render(f.Input.View())
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
