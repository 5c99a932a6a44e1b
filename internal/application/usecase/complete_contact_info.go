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

// ErrStageNotReached refuses a stage completion the persisted pointer has
// not reached yet.
var ErrStageNotReached = errors.New("wizard has not reached this stage")

// CompleteContactInfoUseCase validates the second wizard stage, resolves the
// employment reference, and advances the persisted stage pointer. The
// resolved organization and net pay feed the eligibility calculation on the
// documents stage.
type CompleteContactInfoUseCase struct {
	drafts     port.DraftStore
	employment port.EmploymentVerifier
}

// NewCompleteContactInfoUseCase wires dependencies.
func NewCompleteContactInfoUseCase(
	drafts port.DraftStore,
	employment port.EmploymentVerifier,
) *CompleteContactInfoUseCase {
	return &CompleteContactInfoUseCase{drafts: drafts, employment: employment}
}

// Execute validates the contact fields, verifies employment, and moves the
// wizard to DOCUMENTS.
func (uc *CompleteContactInfoUseCase) Execute(
	ctx context.Context,
	req dto.CompleteContactInfoRequest,
) (dto.WizardStateResponse, error) {
	if req.SessionID == "" {
		return dto.WizardStateResponse{}, errors.New("session ID is required")
	}
	if err := req.ContactInfo.Validate(); err != nil {
		return dto.WizardStateResponse{}, fmt.Errorf("contact info: %w", err)
	}

	var pointer int
	found, err := getDraftJSON(ctx, uc.drafts, req.SessionID, port.DraftKeyStagePointer, &pointer)
	if err != nil {
		return dto.WizardStateResponse{}, err
	}
	if !found || pointer < valueobject.WizardStageContactInfo.Index() {
		return dto.WizardStateResponse{}, ErrStageNotReached
	}

	details, err := uc.employment.VerifyEmployment(ctx, req.ContactInfo.EmploymentReference)
	if err != nil {
		return dto.WizardStateResponse{}, fmt.Errorf("verify employment: %w", err)
	}

	var verification model.VerificationResult
	if _, err := getDraftJSON(ctx, uc.drafts, req.SessionID, port.DraftKeyVerification, &verification); err != nil {
		return dto.WizardStateResponse{}, err
	}
	verification.EmploymentVerified = true
	verification.Organization = details.Organization
	verification.MonthlyNetPay = details.MonthlyNetPay
	verification.VerifiedAt = time.Now().UTC()
	if err := putDraftJSON(ctx, uc.drafts, req.SessionID, port.DraftKeyVerification, verification); err != nil {
		return dto.WizardStateResponse{}, err
	}

	if err := putDraftJSON(ctx, uc.drafts, req.SessionID, port.DraftKeyContactInfo, req.ContactInfo); err != nil {
		return dto.WizardStateResponse{}, err
	}

	next := valueobject.WizardStageDocuments
	if err := putDraftJSON(ctx, uc.drafts, req.SessionID, port.DraftKeyStagePointer, next.Index()); err != nil {
		return dto.WizardStateResponse{}, err
	}

	return dto.WizardStateResponse{
		SessionID:    req.SessionID,
		Stage:        next.String(),
		StagePointer: next.Index(),
	}, nil
}
