package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/microlend/lending-console/internal/domain/port"
)

// ---------------------------------------------------------------------------
// Passcode Service Adapter – structured for real integration
// ---------------------------------------------------------------------------

// PasscodeServiceConfig holds configuration for the passcode adapter.
type PasscodeServiceConfig struct {
	// BaseURL is the base URL for the passcode service API.
	BaseURL string
	// APIKey is the authentication credential for the service API.
	APIKey string
	// TimeoutSeconds is the HTTP client timeout.
	TimeoutSeconds int
}

// DefaultPasscodeServiceConfig returns sensible defaults for development.
func DefaultPasscodeServiceConfig() PasscodeServiceConfig {
	return PasscodeServiceConfig{
		BaseURL:        "https://api.passcode.example.com",
		APIKey:         "dev-api-key",
		TimeoutSeconds: 10,
	}
}

// PasscodeClient defines the interface for calling the passcode service.
type PasscodeClient interface {
	CheckPasscode(ctx context.Context, profileID, passcode string) error
}

// PasscodeAdapter implements port.PasscodeVerifier. With a nil client the
// accepted passcode is derived deterministically from the profile ID, which
// keeps the step-up path testable without the real service.
type PasscodeAdapter struct {
	config PasscodeServiceConfig
	client PasscodeClient // nil = use simulated responses
}

// NewPasscodeAdapter creates a new adapter with the given configuration.
func NewPasscodeAdapter(config PasscodeServiceConfig, client PasscodeClient) *PasscodeAdapter {
	return &PasscodeAdapter{config: config, client: client}
}

// VerifyPasscode checks the passcode for the profile. A wrong passcode maps
// to port.ErrVerificationFailed.
func (a *PasscodeAdapter) VerifyPasscode(ctx context.Context, profileID, passcode string) error {
	if profileID == "" || passcode == "" {
		return fmt.Errorf("profile ID and passcode are required: %w", port.ErrVerificationFailed)
	}

	if a.client != nil {
		if err := a.client.CheckPasscode(ctx, profileID, passcode); err != nil {
			return fmt.Errorf("passcode check: %w", err)
		}
		return nil
	}

	if passcode != SimulatedPasscode(profileID) {
		return port.ErrVerificationFailed
	}
	return nil
}

// SimulatedPasscode returns the deterministic passcode the simulation accepts
// for a profile. Exported so development tooling and tests can mint it.
func SimulatedPasscode(profileID string) string {
	h := sha256.Sum256([]byte(profileID))
	return fmt.Sprintf("%06d", uint32(h[0])<<16|uint32(h[1])<<8|uint32(h[2]))[:6]
}
