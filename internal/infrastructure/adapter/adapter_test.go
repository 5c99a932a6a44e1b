package adapter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microlend/lending-console/internal/domain/port"
	"github.com/microlend/lending-console/internal/infrastructure/adapter"
)

func TestIdentityAdapter_SimulationIsDeterministic(t *testing.T) {
	a := adapter.NewIdentityAdapter(adapter.DefaultIdentityProviderConfig(), nil)
	ctx := context.Background()

	first, err := a.VerifyIdentity(ctx, "12345678901")
	require.NoError(t, err)
	second, err := a.VerifyIdentity(ctx, "12345678901")
	require.NoError(t, err)

	assert.Equal(t, first.FirstName, second.FirstName)
	assert.Equal(t, first.MaskedPhone, second.MaskedPhone)
	assert.Contains(t, first.MaskedPhone, "***")
	assert.Len(t, first.MaskedPhone, 11)
}

func TestIdentityAdapter_RejectsMalformedIdentifier(t *testing.T) {
	a := adapter.NewIdentityAdapter(adapter.DefaultIdentityProviderConfig(), nil)

	for _, id := range []string{"", "123", "1234567890a", "123456789012"} {
		_, err := a.VerifyIdentity(context.Background(), id)
		assert.ErrorIs(t, err, port.ErrVerificationFailed, "id %q", id)
	}
}

func TestIdentityAdapter_SimulatedLookupFailure(t *testing.T) {
	a := adapter.NewIdentityAdapter(adapter.DefaultIdentityProviderConfig(), nil)

	_, err := a.VerifyIdentity(context.Background(), "12345678900")
	assert.ErrorIs(t, err, port.ErrVerificationFailed)
}

func TestEmploymentAdapter_SimulationIsDeterministic(t *testing.T) {
	a := adapter.NewEmploymentAdapter(adapter.DefaultEmploymentRegistryConfig(), nil)
	ctx := context.Background()

	first, err := a.VerifyEmployment(ctx, "EMP-0042")
	require.NoError(t, err)
	second, err := a.VerifyEmployment(ctx, "EMP-0042")
	require.NoError(t, err)

	assert.Equal(t, first.Organization, second.Organization)
	assert.True(t, first.MonthlyNetPay.Equal(second.MonthlyNetPay))
	assert.True(t, first.MonthlyNetPay.IsPositive())
}

func TestEmploymentAdapter_UnknownReference(t *testing.T) {
	a := adapter.NewEmploymentAdapter(adapter.DefaultEmploymentRegistryConfig(), nil)

	_, err := a.VerifyEmployment(context.Background(), "X-unknown")
	assert.ErrorIs(t, err, port.ErrVerificationFailed)

	_, err = a.VerifyEmployment(context.Background(), "  ")
	assert.ErrorIs(t, err, port.ErrVerificationFailed)
}

func TestPasscodeAdapter_AcceptsDerivedPasscodeOnly(t *testing.T) {
	a := adapter.NewPasscodeAdapter(adapter.DefaultPasscodeServiceConfig(), nil)
	ctx := context.Background()

	good := adapter.SimulatedPasscode("profile-1")
	require.Len(t, good, 6)

	assert.NoError(t, a.VerifyPasscode(ctx, "profile-1", good))
	assert.ErrorIs(t, a.VerifyPasscode(ctx, "profile-1", "000000"), port.ErrVerificationFailed)
	assert.ErrorIs(t, a.VerifyPasscode(ctx, "profile-1", ""), port.ErrVerificationFailed)
}
