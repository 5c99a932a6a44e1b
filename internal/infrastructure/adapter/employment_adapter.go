package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/microlend/lending-console/internal/domain/port"
)

// ---------------------------------------------------------------------------
// Employment Registry Adapter – structured for real integration
// ---------------------------------------------------------------------------

// EmploymentRegistryConfig holds configuration for the employment adapter.
type EmploymentRegistryConfig struct {
	// BaseURL is the base URL for the employment registry API.
	BaseURL string
	// APIKey is the authentication credential for the registry API.
	APIKey string
	// TimeoutSeconds is the HTTP client timeout.
	TimeoutSeconds int
}

// DefaultEmploymentRegistryConfig returns sensible defaults for development.
func DefaultEmploymentRegistryConfig() EmploymentRegistryConfig {
	return EmploymentRegistryConfig{
		BaseURL:        "https://api.employment.example.com",
		APIKey:         "dev-api-key",
		TimeoutSeconds: 10,
	}
}

// EmploymentClient defines the interface for calling the employment registry.
type EmploymentClient interface {
	LookupReference(ctx context.Context, reference string) (port.EmploymentDetails, error)
}

// EmploymentAdapter implements port.EmploymentVerifier. With a nil client it
// resolves references to deterministic simulated employers so the policy
// table can be exercised end to end.
type EmploymentAdapter struct {
	config EmploymentRegistryConfig
	client EmploymentClient // nil = use simulated responses
}

// NewEmploymentAdapter creates a new adapter with the given configuration.
func NewEmploymentAdapter(config EmploymentRegistryConfig, client EmploymentClient) *EmploymentAdapter {
	return &EmploymentAdapter{config: config, client: client}
}

// VerifyEmployment resolves the reference to an organization and net pay.
func (a *EmploymentAdapter) VerifyEmployment(ctx context.Context, reference string) (port.EmploymentDetails, error) {
	if strings.TrimSpace(reference) == "" {
		return port.EmploymentDetails{}, fmt.Errorf("employment reference is required: %w", port.ErrVerificationFailed)
	}

	if a.client != nil {
		details, err := a.client.LookupReference(ctx, reference)
		if err != nil {
			return port.EmploymentDetails{}, fmt.Errorf("employment lookup: %w", err)
		}
		return details, nil
	}

	return a.simulateEmployment(reference)
}

var simOrganizations = []string{
	"NIGERIAN POLICE FORCE",
	"FEDERAL MINISTRY OF WORKS",
	"LAGOS STATE CIVIL SERVICE",
	"ACME LTD",
	"ZENITH DISTRIBUTION CO",
}

// simulateEmployment derives a deterministic employer and net pay from the
// reference hash. References prefixed "X-" simulate an unknown employee.
func (a *EmploymentAdapter) simulateEmployment(reference string) (port.EmploymentDetails, error) {
	if strings.HasPrefix(reference, "X-") {
		return port.EmploymentDetails{}, port.ErrVerificationFailed
	}

	h := sha256.Sum256([]byte(reference))
	org := simOrganizations[int(h[0])%len(simOrganizations)]

	// Net pay between 50,000 and 550,000 in steps of 1,000.
	netPay := decimal.NewFromInt(int64(50_000 + (binary.BigEndian.Uint32(h[1:5])%500)*1_000))

	return port.EmploymentDetails{
		Organization:  org,
		MonthlyNetPay: netPay,
	}, nil
}
