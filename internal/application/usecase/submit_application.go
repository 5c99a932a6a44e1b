package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/microlend/lending-console/internal/application/dto"
	"github.com/microlend/lending-console/internal/domain/model"
	"github.com/microlend/lending-console/internal/domain/port"
	"github.com/microlend/lending-console/internal/domain/service"
	"github.com/microlend/lending-console/internal/domain/valueobject"
)

// SubmitApplicationUseCase completes the documents stage: validates the final
// field set against the current eligible amount, creates the pipeline record,
// and moves the wizard to SUCCESS.
type SubmitApplicationUseCase struct {
	drafts     port.DraftStore
	records    port.ApplicationRecordRepository
	publisher  port.EventPublisher
	calculator *service.RepaymentCalculator
}

// NewSubmitApplicationUseCase wires dependencies.
func NewSubmitApplicationUseCase(
	drafts port.DraftStore,
	records port.ApplicationRecordRepository,
	publisher port.EventPublisher,
	calculator *service.RepaymentCalculator,
) *SubmitApplicationUseCase {
	return &SubmitApplicationUseCase{
		drafts:     drafts,
		records:    records,
		publisher:  publisher,
		calculator: calculator,
	}
}

// Execute validates and submits the draft into the approval pipeline.
func (uc *SubmitApplicationUseCase) Execute(
	ctx context.Context,
	req dto.SubmitApplicationRequest,
) (dto.ApplicationRecordResponse, error) {
	if req.SessionID == "" {
		return dto.ApplicationRecordResponse{}, errors.New("session ID is required")
	}

	// 1. The wizard must be sitting at the documents stage.
	var pointer int
	found, err := getDraftJSON(ctx, uc.drafts, req.SessionID, port.DraftKeyStagePointer, &pointer)
	if err != nil {
		return dto.ApplicationRecordResponse{}, err
	}
	if !found || pointer < valueobject.WizardStageDocuments.Index() {
		return dto.ApplicationRecordResponse{}, ErrStageNotReached
	}

	// 2. Load the cached verification and earlier field sets.
	var verification model.VerificationResult
	found, err = getDraftJSON(ctx, uc.drafts, req.SessionID, port.DraftKeyVerification, &verification)
	if err != nil {
		return dto.ApplicationRecordResponse{}, err
	}
	if !found || !verification.IdentityVerified || !verification.EmploymentVerified {
		return dto.ApplicationRecordResponse{}, ErrStageNotReached
	}

	var basic model.BasicInfo
	found, err = getDraftJSON(ctx, uc.drafts, req.SessionID, port.DraftKeyBasicInfo, &basic)
	if err != nil {
		return dto.ApplicationRecordResponse{}, err
	}
	if !found {
		return dto.ApplicationRecordResponse{}, ErrStageNotReached
	}

	// 3. Validate the documents stage against the current eligible amount.
	eligible := uc.calculator.EligibleAmount(
		verification.Organization, verification.MonthlyNetPay, req.Documents.TenorMonths,
	)
	if err := req.Documents.Validate(eligible); err != nil {
		return dto.ApplicationRecordResponse{}, fmt.Errorf("documents: %w", err)
	}
	principal, err := req.Documents.Principal()
	if err != nil {
		return dto.ApplicationRecordResponse{}, fmt.Errorf("documents: %w", err)
	}

	// 4. Final repayment snapshot for the record.
	snap := uc.calculator.Compute(
		verification.Organization, principal, req.Documents.TenorMonths, verification.MonthlyNetPay,
	)

	// 5. Create the pipeline record at REVIEWER.
	now := time.Now().UTC()
	rec, err := model.NewApplicationRecord(
		req.SessionID,
		basic.FirstName+" "+basic.LastName,
		verification.Organization,
		principal,
		req.Documents.TenorMonths,
		snap.InterestRate, snap.MonthlyRepayment, snap.TotalRepayment,
		now,
	)
	if err != nil {
		return dto.ApplicationRecordResponse{}, fmt.Errorf("create record: %w", err)
	}

	if err := uc.records.Save(ctx, rec); err != nil {
		return dto.ApplicationRecordResponse{}, fmt.Errorf("save record: %w", err)
	}
	if err := uc.publisher.Publish(ctx, rec.DomainEvents()...); err != nil {
		return dto.ApplicationRecordResponse{}, fmt.Errorf("publish events: %w", err)
	}

	// 6. Park the wizard at SUCCESS with the confirmation text.
	if err := putDraftJSON(ctx, uc.drafts, req.SessionID, port.DraftKeyDocuments, req.Documents); err != nil {
		return dto.ApplicationRecordResponse{}, err
	}
	success := fmt.Sprintf("Application %s submitted for review", rec.ID())
	if err := putDraftJSON(ctx, uc.drafts, req.SessionID, port.DraftKeySuccessNote, success); err != nil {
		return dto.ApplicationRecordResponse{}, err
	}
	next := valueobject.WizardStageSuccess
	if err := putDraftJSON(ctx, uc.drafts, req.SessionID, port.DraftKeyStagePointer, next.Index()); err != nil {
		return dto.ApplicationRecordResponse{}, err
	}

	return toRecordResponse(rec), nil
}
