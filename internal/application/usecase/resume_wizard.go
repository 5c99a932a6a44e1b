package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/microlend/lending-console/internal/application/dto"
	"github.com/microlend/lending-console/internal/domain/model"
	"github.com/microlend/lending-console/internal/domain/port"
	"github.com/microlend/lending-console/internal/domain/valueobject"
)

// ResumeWizardUseCase rehydrates a session's draft at the persisted stage
// pointer. Nothing is revalidated on resumption: the pointer only ever moved
// forward through successful completions, so stored field sets are trusted
// as-is, even if stale.
type ResumeWizardUseCase struct {
	drafts port.DraftStore
}

// NewResumeWizardUseCase wires dependencies.
func NewResumeWizardUseCase(drafts port.DraftStore) *ResumeWizardUseCase {
	return &ResumeWizardUseCase{drafts: drafts}
}

// Execute loads the pointer and every stored field set for the session.
func (uc *ResumeWizardUseCase) Execute(
	ctx context.Context,
	req dto.ResumeWizardRequest,
) (dto.ResumeWizardResponse, error) {
	if req.SessionID == "" {
		return dto.ResumeWizardResponse{}, errors.New("session ID is required")
	}

	pointer := valueobject.WizardStageBasicInfo.Index()
	if _, err := getDraftJSON(ctx, uc.drafts, req.SessionID, port.DraftKeyStagePointer, &pointer); err != nil {
		return dto.ResumeWizardResponse{}, err
	}
	stage, err := valueobject.NewWizardStageFromIndex(pointer)
	if err != nil {
		return dto.ResumeWizardResponse{}, fmt.Errorf("stage pointer: %w", err)
	}

	resp := dto.ResumeWizardResponse{
		SessionID:    req.SessionID,
		Stage:        stage.String(),
		StagePointer: stage.Index(),
	}

	var basic model.BasicInfo
	if found, err := getDraftJSON(ctx, uc.drafts, req.SessionID, port.DraftKeyBasicInfo, &basic); err != nil {
		return dto.ResumeWizardResponse{}, err
	} else if found {
		resp.BasicInfo = &basic
	}

	var contact model.ContactInfo
	if found, err := getDraftJSON(ctx, uc.drafts, req.SessionID, port.DraftKeyContactInfo, &contact); err != nil {
		return dto.ResumeWizardResponse{}, err
	} else if found {
		resp.ContactInfo = &contact
	}

	var docs model.Documents
	if found, err := getDraftJSON(ctx, uc.drafts, req.SessionID, port.DraftKeyDocuments, &docs); err != nil {
		return dto.ResumeWizardResponse{}, err
	} else if found {
		resp.Documents = &docs
	}

	var verification model.VerificationResult
	if found, err := getDraftJSON(ctx, uc.drafts, req.SessionID, port.DraftKeyVerification, &verification); err != nil {
		return dto.ResumeWizardResponse{}, err
	} else if found {
		resp.Verification = &verification
	}

	return resp, nil
}
