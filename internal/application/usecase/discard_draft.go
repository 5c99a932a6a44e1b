package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/microlend/lending-console/internal/application/dto"
	"github.com/microlend/lending-console/internal/domain/port"
)

// DiscardDraftUseCase removes every wizard key for a session. Called when the
// borrower acknowledges the success screen or abandons the draft outright.
type DiscardDraftUseCase struct {
	drafts port.DraftStore
}

// NewDiscardDraftUseCase wires dependencies.
func NewDiscardDraftUseCase(drafts port.DraftStore) *DiscardDraftUseCase {
	return &DiscardDraftUseCase{drafts: drafts}
}

// Execute clears the session's draft.
func (uc *DiscardDraftUseCase) Execute(ctx context.Context, req dto.DiscardDraftRequest) error {
	if req.SessionID == "" {
		return errors.New("session ID is required")
	}
	if err := uc.drafts.Clear(ctx, req.SessionID); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}
