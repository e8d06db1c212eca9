package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/voteagora/abifsm-go/pkg/abifsm"
)

// setLoader fetches every referenced ABI and groups them into a collection
type setLoader struct {
	source   ABISource
	progress ProgressSink
	log      *slog.Logger
}

func (l *setLoader) load(ctx context.Context, name string, refs []LabeledRef) (*abifsm.ABISet, error) {
	if name == "" {
		return nil, fmt.Errorf("collection name is required")
	}
	if len(refs) == 0 {
		return nil, fmt.Errorf("at least one abi is required")
	}

	seen := make(map[string]bool, len(refs))
	abis := make([]*abifsm.ABI, 0, len(refs))
	for i, ref := range refs {
		if seen[ref.Label] {
			return nil, fmt.Errorf("duplicate abi label %q", ref.Label)
		}
		seen[ref.Label] = true

		l.progress.OnProgress(ctx, ProgressEvent{
			Stage:   "fetch",
			Current: i + 1,
			Total:   len(refs),
			Message: fmt.Sprintf("Loading %s from %s", ref.Label, ref.Ref),
			Spinner: true,
		})

		abi, err := l.source.Fetch(ctx, ref.Label, ref.Ref)
		if err != nil {
			return nil, fmt.Errorf("failed to load abi %s: %w", ref.Label, err)
		}
		l.log.Debug("loaded abi", "label", ref.Label, "ref", ref.Ref, "fragments", abi.Len())
		abis = append(abis, abi)
	}
	l.progress.OnProgress(ctx, ProgressEvent{Stage: "fetch", Current: len(refs), Total: len(refs)})

	return abifsm.NewABISet(name, abis...), nil
}
