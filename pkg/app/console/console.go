// Package console provides UI handles that render to a terminal stream, for running the
// upload controller without the interactive app.
package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/kerbaras/faceswap/pkg/app/styles"
	"github.com/kerbaras/faceswap/pkg/data"
)

// File is an input whose selection is fixed at construction.
type File struct {
	file *data.SelectedFile
}

func NewFile(file *data.SelectedFile) *File {
	return &File{file: file}
}

func (f *File) Selected() *data.SelectedFile {
	return f.file
}

// Element records what the controller sets on it and, when verbose, echoes label
// changes to out.
type Element struct {
	name    string
	out     io.Writer
	verbose bool

	mu      sync.Mutex
	visible bool
	src     string
	text    string
	enabled bool
}

func NewElement(name string, out io.Writer, verbose bool) *Element {
	return &Element{name: name, out: out, verbose: verbose}
}

func (e *Element) SetVisible(visible bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.visible = visible
}

func (e *Element) SetImageSource(src string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.src = src
}

func (e *Element) SetText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	changed := text != e.text
	e.text = text
	if e.verbose && changed && e.out != nil {
		fmt.Fprintln(e.out, styles.MutedStyle.Render(fmt.Sprintf("[%s] %s", e.name, text)))
	}
}

func (e *Element) SetEnabled(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enabled = enabled
}

func (e *Element) Visible() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visible
}

func (e *Element) Source() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.src
}

func (e *Element) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text
}

func (e *Element) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enabled
}

// Notifier writes alerts to out.
type Notifier struct {
	out io.Writer

	mu   sync.Mutex
	last string
}

func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

func (n *Notifier) Alert(message string) {
	n.mu.Lock()
	n.last = message
	n.mu.Unlock()
	fmt.Fprintln(n.out, styles.StatusError.Render("❌ "+message))
}

// Last returns the most recent alert.
func (n *Notifier) Last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.last
}
