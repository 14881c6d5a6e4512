package swapper

import (
	"context"

	"github.com/kerbaras/faceswap/pkg/data"
)

type Swapper interface {
	Swap(ctx context.Context, request data.SwapRequest) (*data.SwapResult, error)
}
