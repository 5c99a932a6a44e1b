package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/microlend/lending-console/internal/application/dto"
	"github.com/microlend/lending-console/internal/domain/model"
	"github.com/microlend/lending-console/internal/domain/port"
	"github.com/microlend/lending-console/internal/domain/valueobject"
)

// ErrIdentityNotVerified blocks forward navigation off the first stage until
// the identity check has succeeded for the session.
var ErrIdentityNotVerified = errors.New("identity has not been verified for this session")

// CompleteBasicInfoUseCase validates the first wizard stage and advances the
// persisted stage pointer.
type CompleteBasicInfoUseCase struct {
	drafts port.DraftStore
}

// NewCompleteBasicInfoUseCase wires dependencies.
func NewCompleteBasicInfoUseCase(drafts port.DraftStore) *CompleteBasicInfoUseCase {
	return &CompleteBasicInfoUseCase{drafts: drafts}
}

// Execute validates the identity fields, requires a verified identity, and
// moves the wizard to CONTACT_INFO.
func (uc *CompleteBasicInfoUseCase) Execute(
	ctx context.Context,
	req dto.CompleteBasicInfoRequest,
) (dto.WizardStateResponse, error) {
	if req.SessionID == "" {
		return dto.WizardStateResponse{}, errors.New("session ID is required")
	}
	if err := req.BasicInfo.Validate(time.Now().UTC()); err != nil {
		return dto.WizardStateResponse{}, fmt.Errorf("basic info: %w", err)
	}

	var verification model.VerificationResult
	found, err := getDraftJSON(ctx, uc.drafts, req.SessionID, port.DraftKeyVerification, &verification)
	if err != nil {
		return dto.WizardStateResponse{}, err
	}
	// The gate is bound to the identifier that passed the check: submitting a
	// different national ID does not unlock the stage.
	if !found || !verification.IdentityVerified || verification.NationalID != req.BasicInfo.NationalID {
		return dto.WizardStateResponse{}, ErrIdentityNotVerified
	}

	if err := putDraftJSON(ctx, uc.drafts, req.SessionID, port.DraftKeyBasicInfo, req.BasicInfo); err != nil {
		return dto.WizardStateResponse{}, err
	}

	next := valueobject.WizardStageContactInfo
	if err := putDraftJSON(ctx, uc.drafts, req.SessionID, port.DraftKeyStagePointer, next.Index()); err != nil {
		return dto.WizardStateResponse{}, err
	}

	return dto.WizardStateResponse{
		SessionID:    req.SessionID,
		Stage:        next.String(),
		StagePointer: next.Index(),
	}, nil
}
