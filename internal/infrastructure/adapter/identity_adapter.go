package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/microlend/lending-console/internal/domain/port"
)

// ---------------------------------------------------------------------------
// Identity Provider Adapter – structured for real integration
// ---------------------------------------------------------------------------

// IdentityProviderConfig holds configuration for the identity adapter.
type IdentityProviderConfig struct {
	// BaseURL is the base URL for the identity provider API.
	BaseURL string
	// APIKey is the authentication credential for the provider API.
	APIKey string
	// TimeoutSeconds is the HTTP client timeout.
	TimeoutSeconds int
}

// DefaultIdentityProviderConfig returns sensible defaults for development.
func DefaultIdentityProviderConfig() IdentityProviderConfig {
	return IdentityProviderConfig{
		BaseURL:        "https://api.identity.example.com",
		APIKey:         "dev-api-key",
		TimeoutSeconds: 10,
	}
}

// IdentityClient defines the interface for calling the identity provider.
// This enables testing with mock implementations.
type IdentityClient interface {
	LookupNationalID(ctx context.Context, nationalID string) (port.IdentityDetails, error)
}

// IdentityAdapter implements port.IdentityVerifier. It is structured to be
// swapped with a real HTTP-based implementation; with a nil client it returns
// deterministic simulated identities so scenarios are reproducible.
type IdentityAdapter struct {
	config IdentityProviderConfig
	client IdentityClient // nil = use simulated responses
}

// NewIdentityAdapter creates a new adapter with the given configuration.
func NewIdentityAdapter(config IdentityProviderConfig, client IdentityClient) *IdentityAdapter {
	return &IdentityAdapter{config: config, client: client}
}

// VerifyIdentity checks the national identifier against the provider.
func (a *IdentityAdapter) VerifyIdentity(ctx context.Context, nationalID string) (port.IdentityDetails, error) {
	if len(nationalID) != 11 || !allDigits(nationalID) {
		return port.IdentityDetails{}, fmt.Errorf("national identifier must be 11 digits: %w", port.ErrVerificationFailed)
	}

	if a.client != nil {
		details, err := a.client.LookupNationalID(ctx, nationalID)
		if err != nil {
			return port.IdentityDetails{}, fmt.Errorf("identity lookup: %w", err)
		}
		return details, nil
	}

	return a.simulateIdentity(nationalID)
}

var (
	simFirstNames = []string{"Ada", "Chinedu", "Ngozi", "Emeka", "Funke", "Tunde", "Amina", "Yusuf"}
	simLastNames  = []string{"Obi", "Okafor", "Adeyemi", "Bello", "Eze", "Mohammed", "Olawale", "Nwosu"}
)

// simulateIdentity derives a deterministic identity from the national ID
// hash. Identifiers ending in "00" simulate a failed lookup.
func (a *IdentityAdapter) simulateIdentity(nationalID string) (port.IdentityDetails, error) {
	if strings.HasSuffix(nationalID, "00") {
		return port.IdentityDetails{}, port.ErrVerificationFailed
	}

	h := sha256.Sum256([]byte(nationalID))
	first := simFirstNames[int(h[0])%len(simFirstNames)]
	last := simLastNames[int(h[1])%len(simLastNames)]

	// Mask the middle of the registered phone number, as the provider does.
	suffix := binary.BigEndian.Uint16(h[2:4]) % 10000
	masked := fmt.Sprintf("0803***%04d", suffix)

	ageYears := 20 + int(h[4])%40
	dob := time.Now().UTC().AddDate(-ageYears, 0, -int(h[5])%300)

	return port.IdentityDetails{
		FirstName:   first,
		LastName:    last,
		MaskedPhone: masked,
		DateOfBirth: dob,
	}, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
