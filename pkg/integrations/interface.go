package integrations

import (
	"context"

	"github.com/kerbaras/faceswap/pkg/data"
)

// Reader turns a selected file into something a preview can display.
type Reader interface {
	ReadAsDataURL(ctx context.Context, file *data.SelectedFile) (string, error)
}

// Store makes a swapped image locally addressable.
type Store interface {
	Store(result *data.SwapResult) (string, error)
}
