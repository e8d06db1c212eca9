package source

import (
	"context"
	"fmt"
	"os"

	"github.com/voteagora/abifsm-go/internal/usecase"
	"github.com/voteagora/abifsm-go/pkg/abifsm"
)

// FileSource reads ABIs from local JSON files, either a bare array or a
// compiler artifact with an "abi" field
type FileSource struct{}

// NewFileSource creates a new file source
func NewFileSource() *FileSource {
	return &FileSource{}
}

// Fetch reads and parses the file at path
func (s *FileSource) Fetch(ctx context.Context, label, path string) (*abifsm.ABI, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read abi file: %w", err)
	}
	abi, err := abifsm.ParseABI(label, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return abi, nil
}

var _ usecase.ABISource = (*FileSource)(nil)
