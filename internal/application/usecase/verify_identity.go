package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/microlend/lending-console/internal/application/dto"
	"github.com/microlend/lending-console/internal/domain/model"
	"github.com/microlend/lending-console/internal/domain/port"
)

// VerifyIdentityUseCase runs the identity check that gates the first wizard
// stage. A successful check is cached in the draft so resumption never
// re-verifies.
type VerifyIdentityUseCase struct {
	drafts   port.DraftStore
	identity port.IdentityVerifier
}

// NewVerifyIdentityUseCase wires dependencies.
func NewVerifyIdentityUseCase(drafts port.DraftStore, identity port.IdentityVerifier) *VerifyIdentityUseCase {
	return &VerifyIdentityUseCase{drafts: drafts, identity: identity}
}

// Execute verifies the national identifier and caches the outcome.
func (uc *VerifyIdentityUseCase) Execute(
	ctx context.Context,
	req dto.VerifyIdentityRequest,
) (dto.VerifyIdentityResponse, error) {
	if req.SessionID == "" {
		return dto.VerifyIdentityResponse{}, errors.New("session ID is required")
	}

	details, err := uc.identity.VerifyIdentity(ctx, req.NationalID)
	if err != nil {
		return dto.VerifyIdentityResponse{}, fmt.Errorf("verify identity: %w", err)
	}

	// Preserve any employment details already cached for this session.
	var verification model.VerificationResult
	if _, err := getDraftJSON(ctx, uc.drafts, req.SessionID, port.DraftKeyVerification, &verification); err != nil {
		return dto.VerifyIdentityResponse{}, err
	}
	verification.IdentityVerified = true
	verification.NationalID = req.NationalID
	verification.VerifiedAt = time.Now().UTC()
	if err := putDraftJSON(ctx, uc.drafts, req.SessionID, port.DraftKeyVerification, verification); err != nil {
		return dto.VerifyIdentityResponse{}, err
	}

	return dto.VerifyIdentityResponse{
		FirstName:   details.FirstName,
		LastName:    details.LastName,
		MaskedPhone: details.MaskedPhone,
		DateOfBirth: details.DateOfBirth.Format("2006-01-02"),
	}, nil
}
