package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/microlend/lending-console/internal/application/dto"
	"github.com/microlend/lending-console/internal/domain/model"
	"github.com/microlend/lending-console/internal/domain/port"
	"github.com/microlend/lending-console/internal/domain/valueobject"
)

// AuthorizerActUseCase handles the final-stage decisions: approve to
// COMPLETED, reject to REJECTED, or close to CLOSED.
type AuthorizerActUseCase struct {
	records   port.ApplicationRecordRepository
	publisher port.EventPublisher
}

// NewAuthorizerActUseCase wires dependencies.
func NewAuthorizerActUseCase(
	records port.ApplicationRecordRepository,
	publisher port.EventPublisher,
) *AuthorizerActUseCase {
	return &AuthorizerActUseCase{records: records, publisher: publisher}
}

// Execute applies an authorizer decision.
func (uc *AuthorizerActUseCase) Execute(
	ctx context.Context,
	req dto.AuthorizerActRequest,
) (dto.ApplicationRecordResponse, error) {
	if strings.TrimSpace(req.Note) == "" {
		return dto.ApplicationRecordResponse{}, valueobject.ErrNoteRequired
	}
	decision, err := valueobject.NewReviewDecision(req.Decision)
	if err != nil {
		return dto.ApplicationRecordResponse{}, err
	}

	rec, err := uc.records.FindByID(ctx, req.RecordID)
	if err != nil {
		return dto.ApplicationRecordResponse{}, fmt.Errorf("load record: %w", err)
	}
	if err := rec.RequireStage(valueobject.PipelineStageAuthorizer); err != nil {
		return dto.ApplicationRecordResponse{}, err
	}

	now := time.Now().UTC()

	var next model.ApplicationRecord
	switch {
	case decision.Equal(valueobject.ReviewDecisionApprove):
		next, err = rec.AuthorizerApprove(req.ActorID, req.Note, now)
	case decision.Equal(valueobject.ReviewDecisionReject):
		next, err = rec.AuthorizerReject(req.ActorID, req.Note, now)
	case decision.Equal(valueobject.ReviewDecisionClose):
		next, err = rec.AuthorizerClose(req.ActorID, req.Note, now)
	default:
		return dto.ApplicationRecordResponse{}, ErrDecisionNotPermitted
	}
	if err != nil {
		return dto.ApplicationRecordResponse{}, fmt.Errorf("apply decision: %w", err)
	}

	if err := uc.records.Save(ctx, next); err != nil {
		return dto.ApplicationRecordResponse{}, fmt.Errorf("save record: %w", err)
	}
	if err := uc.publisher.Publish(ctx, next.DomainEvents()...); err != nil {
		return dto.ApplicationRecordResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toRecordResponse(next), nil
}
