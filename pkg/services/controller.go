package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/kerbaras/faceswap/pkg/data"
	"github.com/kerbaras/faceswap/pkg/integrations"
	"github.com/kerbaras/faceswap/pkg/swapper"
)

const (
	SwapLabel     = "Swap Faces"
	SwappingLabel = "Swapping..."

	MissingImagesMessage = "Please upload both source and target images."
	UnexpectedMessage    = "An unexpected error occurred."

	// EmptyImageSource is what a hidden preview points at.
	EmptyImageSource = "#"
)

// ErrSubmitInProgress is returned when a submission is attempted while another is in flight.
var ErrSubmitInProgress = errors.New("a swap is already in progress")

func errMissingHandle(name string) error {
	return fmt.Errorf("missing %s handle", name)
}

// UploadController mediates between file selection, local previews and the remote swap.
type UploadController struct {
	handles Handles
	swapper swapper.Swapper
	reader  integrations.Reader
	results integrations.Store
	logger  *slog.Logger

	submitting atomic.Bool
}

type Option func(*UploadController)

func WithReader(r integrations.Reader) Option {
	return func(c *UploadController) { c.reader = r }
}

func WithResultStore(s integrations.Store) Option {
	return func(c *UploadController) { c.results = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *UploadController) { c.logger = l }
}

// NewUploadController wires a controller to its handles. It is meant to be called once,
// after the host has built every element.
func NewUploadController(handles Handles, s swapper.Swapper, opts ...Option) (*UploadController, error) {
	if err := handles.validate(); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("swapper cannot be nil")
	}

	c := &UploadController{
		handles: handles,
		swapper: s,
		reader:  integrations.NewDataURLReader(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.results == nil {
		store, err := integrations.NewResultStore("", false)
		if err != nil {
			return nil, err
		}
		c.results = store
	}

	handles.SwapButton.SetText(SwapLabel)
	handles.SwapButton.SetEnabled(true)
	return c, nil
}

// PreviewSource refreshes the source preview from the source input.
func (c *UploadController) PreviewSource(ctx context.Context) error {
	return c.PreviewImage(ctx, c.handles.SourceInput, c.handles.SourcePreview)
}

// PreviewTarget refreshes the target preview from the target input.
func (c *UploadController) PreviewTarget(ctx context.Context) error {
	return c.PreviewImage(ctx, c.handles.TargetInput, c.handles.TargetPreview)
}

// PreviewImage shows the file selected in input on preview, or hides preview when the
// input is empty. A file that cannot be decoded leaves the preview hidden.
func (c *UploadController) PreviewImage(ctx context.Context, input FileInput, preview Element) error {
	file := input.Selected()
	if file.Empty() {
		clearPreview(preview)
		return nil
	}

	src, err := c.reader.ReadAsDataURL(ctx, file)
	if err != nil {
		c.logger.Warn("preview failed", "file", file.Name, "error", err)
		clearPreview(preview)
		return fmt.Errorf("failed to preview %s: %w", file.Name, err)
	}

	preview.SetImageSource(src)
	preview.SetVisible(true)
	return nil
}

func clearPreview(preview Element) {
	preview.SetImageSource(EmptyImageSource)
	preview.SetVisible(false)
}

// SubmitSwap sends both selections to the swap service and renders the outcome. The
// returned error mirrors what the user was told; callers that only drive the UI can
// ignore it.
func (c *UploadController) SubmitSwap(ctx context.Context) error {
	request := data.SwapRequest{
		Source: c.handles.SourceInput.Selected(),
		Target: c.handles.TargetInput.Selected(),
	}
	if err := request.Validate(); err != nil {
		c.handles.Notifier.Alert(MissingImagesMessage)
		return err
	}

	if !c.submitting.CompareAndSwap(false, true) {
		return ErrSubmitInProgress
	}
	defer c.submitting.Store(false)

	button := c.handles.SwapButton
	button.SetEnabled(false)
	button.SetText(SwappingLabel)
	defer func() {
		button.SetEnabled(true)
		button.SetText(SwapLabel)
	}()

	c.logger.Info("submitting swap",
		"source", request.Source.Name,
		"target", request.Target.Name,
	)

	result, err := c.swapper.Swap(ctx, request)
	if err != nil {
		var swapErr *data.SwapError
		if errors.As(err, &swapErr) {
			c.logger.Info("swap rejected", "status", swapErr.StatusCode, "detail", swapErr.Detail)
			c.handles.Notifier.Alert(fmt.Sprintf("Error: %s", swapErr.Detail))
			return err
		}
		return c.unexpected(err)
	}

	url, err := c.results.Store(result)
	if err != nil {
		return c.unexpected(fmt.Errorf("failed to store result: %w", err))
	}

	c.handles.ResultImage.SetImageSource(url)
	c.handles.ResultSection.SetVisible(true)
	c.logger.Info("swap complete", "result", url, "bytes", len(result.Image))
	return nil
}

// Close releases the last result if the store supports it.
func (c *UploadController) Close() error {
	if closer, ok := c.results.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Submitting reports whether a swap is in flight.
func (c *UploadController) Submitting() bool {
	return c.submitting.Load()
}

func (c *UploadController) unexpected(err error) error {
	c.logger.Error("swap failed", "error", err)
	c.handles.Notifier.Alert(UnexpectedMessage)
	return err
}
