package usecase

import (
	"context"
	"errors"

	"github.com/microlend/lending-console/internal/application/dto"
	"github.com/microlend/lending-console/internal/domain/model"
	"github.com/microlend/lending-console/internal/domain/port"
	"github.com/microlend/lending-console/internal/domain/service"
)

// ComputeEligibilityUseCase recomputes the repayment snapshot for the current
// draft. The console calls it on every principal or tenor change, so
// degenerate inputs return a zero snapshot instead of an error.
type ComputeEligibilityUseCase struct {
	drafts     port.DraftStore
	calculator *service.RepaymentCalculator
}

// NewComputeEligibilityUseCase wires dependencies.
func NewComputeEligibilityUseCase(
	drafts port.DraftStore,
	calculator *service.RepaymentCalculator,
) *ComputeEligibilityUseCase {
	return &ComputeEligibilityUseCase{drafts: drafts, calculator: calculator}
}

// Execute derives the snapshot from the cached employment details and the
// entered terms.
func (uc *ComputeEligibilityUseCase) Execute(
	ctx context.Context,
	req dto.ComputeEligibilityRequest,
) (dto.EligibilityResponse, error) {
	if req.SessionID == "" {
		return dto.EligibilityResponse{}, errors.New("session ID is required")
	}

	var verification model.VerificationResult
	found, err := getDraftJSON(ctx, uc.drafts, req.SessionID, port.DraftKeyVerification, &verification)
	if err != nil {
		return dto.EligibilityResponse{}, err
	}
	if !found || !verification.EmploymentVerified {
		return dto.EligibilityResponse{}, ErrStageNotReached
	}

	principal, err := model.ParseAmount(req.PrincipalRaw)
	if err != nil {
		// Mid-typing input is not an error condition for this screen.
		snap := service.ZeroSnapshot()
		snap.EligibleAmount = uc.calculator.EligibleAmount(
			verification.Organization, verification.MonthlyNetPay, req.TenorMonths,
		)
		return toEligibilityResponse(snap), nil
	}

	snap := uc.calculator.Compute(
		verification.Organization, principal, req.TenorMonths, verification.MonthlyNetPay,
	)
	return toEligibilityResponse(snap), nil
}

func toEligibilityResponse(snap service.EligibilitySnapshot) dto.EligibilityResponse {
	return dto.EligibilityResponse{
		EligibleAmount:   snap.EligibleAmount,
		MonthlyRepayment: snap.MonthlyRepayment,
		TotalRepayment:   snap.TotalRepayment,
		InterestRate:     snap.InterestRate,
	}
}
