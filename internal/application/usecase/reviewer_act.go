package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/microlend/lending-console/internal/application/dto"
	"github.com/microlend/lending-console/internal/domain/event"
	"github.com/microlend/lending-console/internal/domain/model"
	"github.com/microlend/lending-console/internal/domain/port"
	"github.com/microlend/lending-console/internal/domain/valueobject"
)

// ErrDecisionNotPermitted refuses a decision the actor's stage does not offer.
var ErrDecisionNotPermitted = errors.New("decision not permitted at this stage")

// ReviewerActResult is either an applied rejection or a pending step-up
// challenge for an approval.
type ReviewerActResult struct {
	Record    *dto.ApplicationRecordResponse
	Challenge *dto.StepUpChallengeResponse
}

// ReviewerActUseCase handles reviewer decisions. A rejection applies
// immediately; an approval issues a single-use step-up challenge and defers
// the transition to CompleteReviewerApprovalUseCase. All local checks (note,
// stage) run before anything is stored or sent.
type ReviewerActUseCase struct {
	records      port.ApplicationRecordRepository
	challenges   port.ChallengeStore
	publisher    port.EventPublisher
	challengeTTL time.Duration
}

// NewReviewerActUseCase wires dependencies.
func NewReviewerActUseCase(
	records port.ApplicationRecordRepository,
	challenges port.ChallengeStore,
	publisher port.EventPublisher,
	challengeTTL time.Duration,
) *ReviewerActUseCase {
	return &ReviewerActUseCase{
		records:      records,
		challenges:   challenges,
		publisher:    publisher,
		challengeTTL: challengeTTL,
	}
}

// Execute applies a reviewer decision or issues the approval challenge.
func (uc *ReviewerActUseCase) Execute(
	ctx context.Context,
	req dto.ReviewerActRequest,
) (ReviewerActResult, error) {
	// Local checks first: an empty note or a bad decision must fail without
	// touching the repository or any external service.
	if strings.TrimSpace(req.Note) == "" {
		return ReviewerActResult{}, valueobject.ErrNoteRequired
	}
	decision, err := valueobject.NewReviewDecision(req.Decision)
	if err != nil {
		return ReviewerActResult{}, err
	}
	if decision.Equal(valueobject.ReviewDecisionClose) {
		return ReviewerActResult{}, ErrDecisionNotPermitted
	}

	rec, err := uc.records.FindByID(ctx, req.RecordID)
	if err != nil {
		return ReviewerActResult{}, fmt.Errorf("load record: %w", err)
	}
	if err := rec.RequireStage(valueobject.PipelineStageReviewer); err != nil {
		return ReviewerActResult{}, err
	}

	now := time.Now().UTC()

	if decision.Equal(valueobject.ReviewDecisionReject) {
		rejected, err := rec.ReviewerReject(req.ActorID, req.Note, now)
		if err != nil {
			return ReviewerActResult{}, fmt.Errorf("reject: %w", err)
		}
		if err := uc.records.Save(ctx, rejected); err != nil {
			return ReviewerActResult{}, fmt.Errorf("save record: %w", err)
		}
		if err := uc.publisher.Publish(ctx, rejected.DomainEvents()...); err != nil {
			return ReviewerActResult{}, fmt.Errorf("publish events: %w", err)
		}
		resp := toRecordResponse(rejected)
		return ReviewerActResult{Record: &resp}, nil
	}

	// Approval: issue the challenge, leave the record untouched.
	challenge, err := model.NewStepUpChallenge(
		rec.ID(), rec.ProfileID(), req.ActorID, req.Note, uc.challengeTTL, now,
	)
	if err != nil {
		return ReviewerActResult{}, fmt.Errorf("issue challenge: %w", err)
	}
	if err := uc.challenges.Put(ctx, challenge); err != nil {
		return ReviewerActResult{}, fmt.Errorf("store challenge: %w", err)
	}
	issued := event.NewStepUpChallengeIssued(rec.ID(), rec.ProfileID(), challenge.ExpiresAt)
	if err := uc.publisher.Publish(ctx, issued); err != nil {
		return ReviewerActResult{}, fmt.Errorf("publish events: %w", err)
	}

	return ReviewerActResult{Challenge: &dto.StepUpChallengeResponse{
		ChallengeToken: challenge.Token,
		RecordID:       rec.ID(),
		ExpiresAt:      challenge.ExpiresAt,
	}}, nil
}
