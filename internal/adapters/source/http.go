package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/voteagora/abifsm-go/internal/config"
	"github.com/voteagora/abifsm-go/internal/domain"
	"github.com/voteagora/abifsm-go/internal/usecase"
	"github.com/voteagora/abifsm-go/pkg/abifsm"
)

// ErrNoBaseURL is returned when no ABI endpoint is configured
var ErrNoBaseURL = errors.New("abi url not configured, set ABIFSM_ABI_URL or abi_url in abifsm.toml")

// HTTPSource downloads ABIs from baseURL + address + ".json"
type HTTPSource struct {
	baseURL  string
	checksum bool
	client   *http.Client
	log      *slog.Logger
}

// NewHTTPSource creates an HTTP source from the runtime configuration
func NewHTTPSource(cfg *config.RuntimeConfig, log *slog.Logger) *HTTPSource {
	return &HTTPSource{
		baseURL:  cfg.ABIURL,
		checksum: !cfg.NoChecksum,
		client:   &http.Client{},
		log:      log.With("component", "HTTPSource"),
	}
}

// URL returns the location the ABI of address is downloaded from
func (s *HTTPSource) URL(address string) string {
	if s.checksum {
		address = common.HexToAddress(address).Hex()
	}
	return s.baseURL + address + ".json"
}

// Fetch downloads and parses the ABI of address
func (s *HTTPSource) Fetch(ctx context.Context, label, address string) (*abifsm.ABI, error) {
	if s.baseURL == "" {
		return nil, ErrNoBaseURL
	}
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, address)
	}

	url := s.URL(address)
	s.log.Debug("fetching abi", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch abi: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, domain.FetchError{URL: url, StatusCode: resp.StatusCode, Body: string(body)}
	}

	abi, err := abifsm.ParseABI(label, body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse abi from %s: %w", url, err)
	}
	return abi, nil
}

var _ usecase.ABISource = (*HTTPSource)(nil)
