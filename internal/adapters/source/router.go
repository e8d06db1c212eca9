package source

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/voteagora/abifsm-go/internal/usecase"
	"github.com/voteagora/abifsm-go/pkg/abifsm"
)

// Router sends address references to the HTTP source and everything else
// to the file source
type Router struct {
	files  usecase.ABISource
	remote usecase.ABISource
}

// NewRouter creates a new source router
func NewRouter(files *FileSource, remote *HTTPSource) *Router {
	return &Router{files: files, remote: remote}
}

// Fetch dispatches on the shape of ref
func (r *Router) Fetch(ctx context.Context, label, ref string) (*abifsm.ABI, error) {
	if common.IsHexAddress(ref) {
		return r.remote.Fetch(ctx, label, ref)
	}
	return r.files.Fetch(ctx, label, ref)
}

var _ usecase.ABISource = (*Router)(nil)
