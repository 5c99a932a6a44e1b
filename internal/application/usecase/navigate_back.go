package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/microlend/lending-console/internal/application/dto"
	"github.com/microlend/lending-console/internal/domain/port"
	"github.com/microlend/lending-console/internal/domain/valueobject"
)

// NavigateBackUseCase moves the wizard one stage backward. Backward
// navigation never validates the stage being left; whatever is typed stays
// in the draft.
type NavigateBackUseCase struct {
	drafts port.DraftStore
}

// NewNavigateBackUseCase wires dependencies.
func NewNavigateBackUseCase(drafts port.DraftStore) *NavigateBackUseCase {
	return &NavigateBackUseCase{drafts: drafts}
}

// Execute decrements the persisted stage pointer.
func (uc *NavigateBackUseCase) Execute(
	ctx context.Context,
	req dto.NavigateBackRequest,
) (dto.WizardStateResponse, error) {
	if req.SessionID == "" {
		return dto.WizardStateResponse{}, errors.New("session ID is required")
	}

	var pointer int
	found, err := getDraftJSON(ctx, uc.drafts, req.SessionID, port.DraftKeyStagePointer, &pointer)
	if err != nil {
		return dto.WizardStateResponse{}, err
	}
	if !found {
		pointer = valueobject.WizardStageBasicInfo.Index()
	}

	current, err := valueobject.NewWizardStageFromIndex(pointer)
	if err != nil {
		return dto.WizardStateResponse{}, fmt.Errorf("stage pointer: %w", err)
	}
	previous, err := current.Previous()
	if err != nil {
		return dto.WizardStateResponse{}, err
	}

	if err := putDraftJSON(ctx, uc.drafts, req.SessionID, port.DraftKeyStagePointer, previous.Index()); err != nil {
		return dto.WizardStateResponse{}, err
	}

	return dto.WizardStateResponse{
		SessionID:    req.SessionID,
		Stage:        previous.String(),
		StagePointer: previous.Index(),
	}, nil
}
