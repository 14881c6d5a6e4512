package services

import "github.com/kerbaras/faceswap/pkg/data"

// Element is the slice of a UI widget the controller is allowed to touch.
type Element interface {
	SetVisible(visible bool)
	SetImageSource(src string)
	SetText(text string)
	SetEnabled(enabled bool)
}

// FileInput exposes the file currently picked in an input, or nil.
type FileInput interface {
	Selected() *data.SelectedFile
}

// Notifier shows a blocking message to the user.
type Notifier interface {
	Alert(message string)
}

// Handles are the UI collaborators an UploadController drives.
type Handles struct {
	SourceInput   FileInput
	TargetInput   FileInput
	SourcePreview Element
	TargetPreview Element
	SwapButton    Element
	ResultSection Element
	ResultImage   Element
	Notifier      Notifier
}

func (h Handles) validate() error {
	switch {
	case h.SourceInput == nil, h.TargetInput == nil:
		return errMissingHandle("file input")
	case h.SourcePreview == nil, h.TargetPreview == nil:
		return errMissingHandle("preview")
	case h.SwapButton == nil:
		return errMissingHandle("swap button")
	case h.ResultSection == nil, h.ResultImage == nil:
		return errMissingHandle("result")
	case h.Notifier == nil:
		return errMissingHandle("notifier")
	}
	return nil
}
