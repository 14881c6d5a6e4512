package screens

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/faceswap/pkg/app/components"
	"github.com/kerbaras/faceswap/pkg/app/styles"
	"github.com/kerbaras/faceswap/pkg/integrations"
	"github.com/kerbaras/faceswap/pkg/services"
	"github.com/kerbaras/faceswap/pkg/swapper"
)

type field int

const (
	sourceField field = iota
	targetField
	buttonField
	fieldCount
)

const (
	previewCols = 28
	previewRows = 12
	resultCols  = 48
	resultRows  = 20
)

// UploadScreen is the single page of the app: two pickers with previews, the swap button
// and the result.
type UploadScreen struct {
	ctx        context.Context
	controller *services.UploadController

	source        *components.FileInput
	target        *components.FileInput
	sourcePreview *components.ImageView
	targetPreview *components.ImageView
	button        *components.Button
	resultSection *components.Section
	resultImage   *components.ImageView
	alert         *components.Alert
	spinner       spinner.Model

	focus    field
	status   string
	inFlight bool
	width  int
	height int
}

// NewUploadScreen builds every element, then wires the controller to them.
func NewUploadScreen(ctx context.Context, s swapper.Swapper, opts ...services.Option) (*UploadScreen, error) {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.StatusSubmitting

	screen := &UploadScreen{
		ctx:           ctx,
		source:        components.NewFileInput("path to source image (the face)"),
		target:        components.NewFileInput("path to target image (the scene)"),
		sourcePreview: components.NewImageView("Source"),
		targetPreview: components.NewImageView("Target"),
		button:        components.NewButton(services.SwapLabel),
		resultSection: components.NewSection(),
		resultImage:   components.NewImageView("Result"),
		alert:         components.NewAlert(),
		spinner:       sp,
	}
	screen.resultImage.SetVisible(true)

	controller, err := services.NewUploadController(services.Handles{
		SourceInput:   screen.source,
		TargetInput:   screen.target,
		SourcePreview: screen.sourcePreview,
		TargetPreview: screen.targetPreview,
		SwapButton:    screen.button,
		ResultSection: screen.resultSection,
		ResultImage:   screen.resultImage,
		Notifier:      screen.alert,
	}, s, opts...)
	if err != nil {
		return nil, err
	}
	screen.controller = controller
	return screen, nil
}

func (s *UploadScreen) Init() tea.Cmd {
	return s.source.Focus()
}

func (s *UploadScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return s, tea.Quit
		}

		if s.alert.Active() {
			switch msg.String() {
			case "esc", "enter":
				s.alert.Dismiss()
			}
			return s, nil
		}

		switch msg.String() {
		case "tab", "down":
			return s, s.setFocus((s.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return s, s.setFocus((s.focus + fieldCount - 1) % fieldCount)
		case "ctrl+s":
			return s, s.submit()
		case "enter":
			switch s.focus {
			case sourceField:
				return s, s.pick(sourceField)
			case targetField:
				return s, s.pick(targetField)
			case buttonField:
				return s, s.submit()
			}
		case "esc":
			s.status = ""
			return s, nil
		}

	case spinner.TickMsg:
		if !s.inFlight {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case previewDoneMsg:
		if msg.err != nil {
			s.status = msg.err.Error()
		} else {
			s.status = ""
		}
		return s, nil

	case swapDoneMsg:
		s.inFlight = false
		if msg.err == nil {
			s.status = ""
		}
		return s, nil
	}

	switch s.focus {
	case sourceField:
		return s, s.source.Update(msg)
	case targetField:
		return s, s.target.Update(msg)
	}
	return s, nil
}

func (s *UploadScreen) setFocus(f field) tea.Cmd {
	s.focus = f
	s.source.Blur()
	s.target.Blur()
	switch f {
	case sourceField:
		return s.source.Focus()
	case targetField:
		return s.target.Focus()
	}
	return nil
}

func (s *UploadScreen) View() string {
	header := styles.TitleStyle.Render("Face Swap")

	sourceCol := s.column("Source image", s.source, s.sourcePreview)
	targetCol := s.column("Target image", s.target, s.targetPreview)
	pickers := lipgloss.JoinHorizontal(lipgloss.Top, sourceCol, "  ", targetCol)

	action := s.button.View(s.focus == buttonField)
	if s.inFlight {
		action = lipgloss.JoinHorizontal(lipgloss.Center, action, " ", s.spinner.View(),
			styles.StatusSubmitting.Render("waiting for the server"))
	}

	var sections []string
	sections = append(sections, header, pickers, action)

	if s.status != "" {
		sections = append(sections, styles.StatusError.Render(fmt.Sprintf("Error: %s", s.status)))
	}
	if alert := s.alert.View(s.width); alert != "" {
		sections = append(sections, alert)
	}
	if s.resultSection.Visible() {
		sections = append(sections, s.resultView())
	}

	sections = append(sections, styles.HelpStyle.Render(
		"enter: pick file / swap • tab: next field • ctrl+s: swap • esc: dismiss • ctrl+c: quit",
	))
	return strings.Join(sections, "\n\n")
}

func (s *UploadScreen) column(label string, input *components.FileInput, preview *components.ImageView) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.SubtitleStyle.Render(label),
		input.View(),
	)
	if p := preview.View(previewCols, previewRows); p != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", p)
	}
	return styles.CardStyle.Render(body)
}

func (s *UploadScreen) resultView() string {
	view := s.resultImage.View(resultCols, resultRows)
	if path, err := integrations.PathFromURL(s.resultImage.Source()); err == nil {
		view = lipgloss.JoinVertical(lipgloss.Left, view, styles.StatusCompleted.Render("Saved to "+path))
	}
	return styles.ActiveCardStyle.Render(view)
}

// Messages
type previewDoneMsg struct {
	field field
	err   error
}

type swapDoneMsg struct {
	err error
}

// Commands
func (s *UploadScreen) pick(f field) tea.Cmd {
	input, preview := s.source, s.sourcePreview
	if f == targetField {
		input, preview = s.target, s.targetPreview
	}
	path := input.Value()

	return func() tea.Msg {
		pickErr := input.Pick(path)
		err := s.controller.PreviewImage(s.ctx, input, preview)
		if pickErr != nil {
			err = pickErr
		}
		return previewDoneMsg{field: f, err: err}
	}
}

func (s *UploadScreen) submit() tea.Cmd {
	if s.inFlight || !s.button.Enabled() {
		return nil
	}
	s.inFlight = true
	return tea.Batch(
		func() tea.Msg {
			return swapDoneMsg{err: s.controller.SubmitSwap(s.ctx)}
		},
		s.spinner.Tick,
	)
}
