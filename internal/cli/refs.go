package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/voteagora/abifsm-go/internal/usecase"
)

// parseLabeledRefs parses label=ref arguments. A bare file path is labeled
// with its base name, addresses always need an explicit label.
func parseLabeledRefs(args []string) ([]usecase.LabeledRef, error) {
	refs := make([]usecase.LabeledRef, 0, len(args))
	for _, arg := range args {
		label, ref, ok := strings.Cut(arg, "=")
		if !ok {
			if common.IsHexAddress(arg) {
				return nil, fmt.Errorf("address %s needs a label, use label=%s", arg, arg)
			}
			ref = arg
			label = strings.TrimSuffix(filepath.Base(arg), filepath.Ext(arg))
		}
		if label == "" || ref == "" {
			return nil, fmt.Errorf("invalid abi reference %q, expected label=path or label=address", arg)
		}
		refs = append(refs, usecase.LabeledRef{Label: label, Ref: ref})
	}
	return refs, nil
}
