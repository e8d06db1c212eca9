package progress

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/voteagora/abifsm-go/internal/config"
	"github.com/voteagora/abifsm-go/internal/usecase"
)

// NewSink picks the spinner on an interactive stderr and the no-op sink otherwise
func NewSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.Debug || !isatty.IsTerminal(os.Stderr.Fd()) {
		return NewNopSink()
	}
	return NewSpinnerSink(os.Stderr)
}
