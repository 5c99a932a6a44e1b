package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/microlend/lending-console/internal/application/dto"
	"github.com/microlend/lending-console/internal/domain/port"
)

// AcknowledgeSuccessUseCase finishes a submitted wizard session: it hands the
// confirmation note to the caller and clears the draft so the session can
// start over.
type AcknowledgeSuccessUseCase struct {
	drafts port.DraftStore
}

// NewAcknowledgeSuccessUseCase wires dependencies.
func NewAcknowledgeSuccessUseCase(drafts port.DraftStore) *AcknowledgeSuccessUseCase {
	return &AcknowledgeSuccessUseCase{drafts: drafts}
}

// Execute returns the stored success note and clears every wizard key.
func (uc *AcknowledgeSuccessUseCase) Execute(
	ctx context.Context,
	req dto.AcknowledgeSuccessRequest,
) (dto.AcknowledgeSuccessResponse, error) {
	if req.SessionID == "" {
		return dto.AcknowledgeSuccessResponse{}, errors.New("session ID is required")
	}

	var note string
	found, err := getDraftJSON(ctx, uc.drafts, req.SessionID, port.DraftKeySuccessNote, &note)
	if err != nil {
		return dto.AcknowledgeSuccessResponse{}, err
	}
	if !found {
		return dto.AcknowledgeSuccessResponse{}, ErrStageNotReached
	}

	if err := uc.drafts.Clear(ctx, req.SessionID); err != nil {
		return dto.AcknowledgeSuccessResponse{}, fmt.Errorf("clear draft: %w", err)
	}

	return dto.AcknowledgeSuccessResponse{Note: note}, nil
}
