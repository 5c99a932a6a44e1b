package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/microlend/lending-console/internal/application/dto"
	"github.com/microlend/lending-console/internal/domain/model"
	"github.com/microlend/lending-console/internal/domain/port"
	"github.com/microlend/lending-console/internal/domain/service"
	"github.com/microlend/lending-console/internal/domain/valueobject"
)

// EditRejectedUseCase is the one-shot editor for rejected records: re-run
// both external verifications, recompute eligibility from the edited terms,
// and resubmit to the reviewer stage.
type EditRejectedUseCase struct {
	records    port.ApplicationRecordRepository
	identity   port.IdentityVerifier
	employment port.EmploymentVerifier
	publisher  port.EventPublisher
	calculator *service.RepaymentCalculator
}

// NewEditRejectedUseCase wires dependencies.
func NewEditRejectedUseCase(
	records port.ApplicationRecordRepository,
	identity port.IdentityVerifier,
	employment port.EmploymentVerifier,
	publisher port.EventPublisher,
	calculator *service.RepaymentCalculator,
) *EditRejectedUseCase {
	return &EditRejectedUseCase{
		records:    records,
		identity:   identity,
		employment: employment,
		publisher:  publisher,
		calculator: calculator,
	}
}

// Execute re-verifies, recomputes, and resubmits a rejected record.
func (uc *EditRejectedUseCase) Execute(
	ctx context.Context,
	req dto.EditRejectedRequest,
) (dto.ApplicationRecordResponse, error) {
	// Local checks before any remote call.
	principal, err := model.ParseAmount(req.PrincipalRaw)
	if err != nil {
		return dto.ApplicationRecordResponse{}, fmt.Errorf("principal: %w", err)
	}
	if req.TenorMonths < 3 || req.TenorMonths > 24 {
		return dto.ApplicationRecordResponse{}, fmt.Errorf("tenor must be between 3 and 24 months")
	}

	rec, err := uc.records.FindByID(ctx, req.RecordID)
	if err != nil {
		return dto.ApplicationRecordResponse{}, fmt.Errorf("load record: %w", err)
	}
	if err := rec.RequireStage(valueobject.PipelineStageRejected); err != nil {
		return dto.ApplicationRecordResponse{}, err
	}

	// Both verifications must pass again before the edited record re-enters
	// the pipeline.
	if _, err := uc.identity.VerifyIdentity(ctx, req.NationalID); err != nil {
		return dto.ApplicationRecordResponse{}, fmt.Errorf("verify identity: %w", err)
	}
	employment, err := uc.employment.VerifyEmployment(ctx, req.EmploymentReference)
	if err != nil {
		return dto.ApplicationRecordResponse{}, fmt.Errorf("verify employment: %w", err)
	}

	eligible := uc.calculator.EligibleAmount(
		employment.Organization, employment.MonthlyNetPay, req.TenorMonths,
	)
	if principal.GreaterThan(eligible) {
		return dto.ApplicationRecordResponse{}, model.ErrAmountExceedsEligible
	}
	snap := uc.calculator.Compute(
		employment.Organization, principal, req.TenorMonths, employment.MonthlyNetPay,
	)

	resubmitted, err := rec.Resubmit(
		principal, req.TenorMonths,
		snap.InterestRate, snap.MonthlyRepayment, snap.TotalRepayment,
		time.Now().UTC(),
	)
	if err != nil {
		return dto.ApplicationRecordResponse{}, fmt.Errorf("resubmit: %w", err)
	}

	if err := uc.records.Save(ctx, resubmitted); err != nil {
		return dto.ApplicationRecordResponse{}, fmt.Errorf("save record: %w", err)
	}
	if err := uc.publisher.Publish(ctx, resubmitted.DomainEvents()...); err != nil {
		return dto.ApplicationRecordResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toRecordResponse(resubmitted), nil
}
