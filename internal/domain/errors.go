package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for collaborator operations
var (
	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidChainID is returned when a chain ID is unknown
	ErrInvalidChainID = errors.New("invalid chain ID")

	// ErrNoRPCEndpoint is returned when no RPC endpoint is configured for a chain
	ErrNoRPCEndpoint = errors.New("no rpc endpoint configured")

	// ErrNoImplementation is returned when a proxy slot holds the zero address
	ErrNoImplementation = errors.New("proxy has no implementation")

	// ErrFetchFailed is returned when an ABI could not be retrieved
	ErrFetchFailed = errors.New("abi fetch failed")
)

// FetchError carries the HTTP status of a failed ABI download
type FetchError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e FetchError) Error() string {
	return fmt.Sprintf("GET %s returned status %d: %s", e.URL, e.StatusCode, e.Body)
}

func (e FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}
