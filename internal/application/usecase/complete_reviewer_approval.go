package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/microlend/lending-console/internal/application/dto"
	"github.com/microlend/lending-console/internal/domain/port"
	"github.com/microlend/lending-console/internal/domain/valueobject"
)

// ErrChallengeExpired is returned when the challenge outlived its TTL before
// being consumed. The store's own TTL usually removes it first.
var ErrChallengeExpired = errors.New("step-up challenge has expired")

// CompleteReviewerApprovalUseCase consumes a step-up challenge and, on a
// successful passcode check, fires the REVIEWER -> AUTHORIZER transition.
// The challenge is taken before the passcode call, so a wrong passcode burns
// it: retrying means starting a new approval.
type CompleteReviewerApprovalUseCase struct {
	records    port.ApplicationRecordRepository
	challenges port.ChallengeStore
	passcodes  port.PasscodeVerifier
	publisher  port.EventPublisher
}

// NewCompleteReviewerApprovalUseCase wires dependencies.
func NewCompleteReviewerApprovalUseCase(
	records port.ApplicationRecordRepository,
	challenges port.ChallengeStore,
	passcodes port.PasscodeVerifier,
	publisher port.EventPublisher,
) *CompleteReviewerApprovalUseCase {
	return &CompleteReviewerApprovalUseCase{
		records:    records,
		challenges: challenges,
		passcodes:  passcodes,
		publisher:  publisher,
	}
}

// Execute verifies the passcode against the consumed challenge and applies
// the approval.
func (uc *CompleteReviewerApprovalUseCase) Execute(
	ctx context.Context,
	req dto.CompleteReviewerApprovalRequest,
) (dto.ApplicationRecordResponse, error) {
	if req.ChallengeToken == "" || req.Passcode == "" {
		return dto.ApplicationRecordResponse{}, errors.New("challenge token and passcode are required")
	}

	now := time.Now().UTC()

	// Take is destructive: the token can never be presented twice.
	challenge, err := uc.challenges.Take(ctx, req.ChallengeToken)
	if err != nil {
		return dto.ApplicationRecordResponse{}, fmt.Errorf("take challenge: %w", err)
	}
	if challenge.Expired(now) {
		return dto.ApplicationRecordResponse{}, ErrChallengeExpired
	}

	// The record must still be at REVIEWER before the remote passcode call.
	rec, err := uc.records.FindByID(ctx, challenge.RecordID)
	if err != nil {
		return dto.ApplicationRecordResponse{}, fmt.Errorf("load record: %w", err)
	}
	if err := rec.RequireStage(valueobject.PipelineStageReviewer); err != nil {
		return dto.ApplicationRecordResponse{}, err
	}

	if err := uc.passcodes.VerifyPasscode(ctx, challenge.ProfileID, req.Passcode); err != nil {
		return dto.ApplicationRecordResponse{}, fmt.Errorf("verify passcode: %w", err)
	}

	approved, err := rec.ReviewerApprove(challenge.ReviewerID, challenge.Note, now)
	if err != nil {
		return dto.ApplicationRecordResponse{}, fmt.Errorf("approve: %w", err)
	}
	if err := uc.records.Save(ctx, approved); err != nil {
		return dto.ApplicationRecordResponse{}, fmt.Errorf("save record: %w", err)
	}
	if err := uc.publisher.Publish(ctx, approved.DomainEvents()...); err != nil {
		return dto.ApplicationRecordResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toRecordResponse(approved), nil
}
