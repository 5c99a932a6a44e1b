package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microlend/lending-console/internal/application/dto"
	"github.com/microlend/lending-console/internal/application/usecase"
	"github.com/microlend/lending-console/internal/domain/model"
	"github.com/microlend/lending-console/internal/domain/service"
)

const sessionID = "session-1"

func validBasicInfo() model.BasicInfo {
	return model.BasicInfo{
		FirstName:   "Ada",
		LastName:    "Obi",
		NationalID:  "12345678901",
		DateOfBirth: "1990-03-14",
	}
}

func validContactInfo() model.ContactInfo {
	return model.ContactInfo{
		PhoneNumber:         "0803***4567",
		Email:               "ada@example.com",
		ResidentialAddress:  "12 Marina Rd, Lagos",
		EmploymentReference: "EMP-0042",
	}
}

func validDocuments() model.Documents {
	return model.Documents{
		PrincipalRaw: "100,000",
		TenorMonths:  12,
		Attachments:  []model.Attachment{{Title: "payslip", Data: "cGF5c2xpcA=="}},
		Signature:    "c2lnbmF0dXJl",
		TermsAgreed:  true,
	}
}

// completeThroughContactInfo walks a session through verification and the
// first two stages.
func completeThroughContactInfo(t *testing.T, drafts *memoryDraftStore) {
	t.Helper()
	ctx := context.Background()

	_, err := usecase.NewVerifyIdentityUseCase(drafts, &mockIdentityVerifier{}).
		Execute(ctx, dto.VerifyIdentityRequest{SessionID: sessionID, NationalID: "12345678901"})
	require.NoError(t, err)

	_, err = usecase.NewCompleteBasicInfoUseCase(drafts).
		Execute(ctx, dto.CompleteBasicInfoRequest{SessionID: sessionID, BasicInfo: validBasicInfo()})
	require.NoError(t, err)

	_, err = usecase.NewCompleteContactInfoUseCase(drafts, &mockEmploymentVerifier{}).
		Execute(ctx, dto.CompleteContactInfoRequest{SessionID: sessionID, ContactInfo: validContactInfo()})
	require.NoError(t, err)
}

func TestCompleteBasicInfo_RequiresVerifiedIdentity(t *testing.T) {
	drafts := newMemoryDraftStore()
	uc := usecase.NewCompleteBasicInfoUseCase(drafts)

	_, err := uc.Execute(context.Background(), dto.CompleteBasicInfoRequest{
		SessionID: sessionID,
		BasicInfo: validBasicInfo(),
	})
	assert.ErrorIs(t, err, usecase.ErrIdentityNotVerified)

	// The pointer must not have moved.
	resumed, err := usecase.NewResumeWizardUseCase(drafts).
		Execute(context.Background(), dto.ResumeWizardRequest{SessionID: sessionID})
	require.NoError(t, err)
	assert.Equal(t, 0, resumed.StagePointer)
}

func TestCompleteBasicInfo_AdvancesAfterVerification(t *testing.T) {
	drafts := newMemoryDraftStore()
	ctx := context.Background()

	_, err := usecase.NewVerifyIdentityUseCase(drafts, &mockIdentityVerifier{}).
		Execute(ctx, dto.VerifyIdentityRequest{SessionID: sessionID, NationalID: "12345678901"})
	require.NoError(t, err)

	state, err := usecase.NewCompleteBasicInfoUseCase(drafts).
		Execute(ctx, dto.CompleteBasicInfoRequest{SessionID: sessionID, BasicInfo: validBasicInfo()})
	require.NoError(t, err)
	assert.Equal(t, "CONTACT_INFO", state.Stage)
	assert.Equal(t, 1, state.StagePointer)
}

func TestCompleteBasicInfo_RejectsDifferentNationalID(t *testing.T) {
	drafts := newMemoryDraftStore()
	ctx := context.Background()

	_, err := usecase.NewVerifyIdentityUseCase(drafts, &mockIdentityVerifier{}).
		Execute(ctx, dto.VerifyIdentityRequest{SessionID: sessionID, NationalID: "12345678901"})
	require.NoError(t, err)

	// A well-formed but different identifier must not pass the gate.
	swapped := validBasicInfo()
	swapped.NationalID = "10987654321"
	_, err = usecase.NewCompleteBasicInfoUseCase(drafts).
		Execute(ctx, dto.CompleteBasicInfoRequest{SessionID: sessionID, BasicInfo: swapped})
	assert.ErrorIs(t, err, usecase.ErrIdentityNotVerified)

	resumed, err := usecase.NewResumeWizardUseCase(drafts).
		Execute(ctx, dto.ResumeWizardRequest{SessionID: sessionID})
	require.NoError(t, err)
	assert.Equal(t, 0, resumed.StagePointer)
}

func TestCompleteBasicInfo_InvalidFieldsDoNotAdvance(t *testing.T) {
	drafts := newMemoryDraftStore()
	ctx := context.Background()

	_, err := usecase.NewVerifyIdentityUseCase(drafts, &mockIdentityVerifier{}).
		Execute(ctx, dto.VerifyIdentityRequest{SessionID: sessionID, NationalID: "12345678901"})
	require.NoError(t, err)

	bad := validBasicInfo()
	bad.NationalID = "123"
	_, err = usecase.NewCompleteBasicInfoUseCase(drafts).
		Execute(ctx, dto.CompleteBasicInfoRequest{SessionID: sessionID, BasicInfo: bad})
	assert.Error(t, err)

	resumed, err := usecase.NewResumeWizardUseCase(drafts).
		Execute(ctx, dto.ResumeWizardRequest{SessionID: sessionID})
	require.NoError(t, err)
	assert.Equal(t, 0, resumed.StagePointer)
}

func TestCompleteContactInfo_CachesEmploymentDetails(t *testing.T) {
	drafts := newMemoryDraftStore()
	employment := &mockEmploymentVerifier{}
	ctx := context.Background()

	_, err := usecase.NewVerifyIdentityUseCase(drafts, &mockIdentityVerifier{}).
		Execute(ctx, dto.VerifyIdentityRequest{SessionID: sessionID, NationalID: "12345678901"})
	require.NoError(t, err)
	_, err = usecase.NewCompleteBasicInfoUseCase(drafts).
		Execute(ctx, dto.CompleteBasicInfoRequest{SessionID: sessionID, BasicInfo: validBasicInfo()})
	require.NoError(t, err)

	state, err := usecase.NewCompleteContactInfoUseCase(drafts, employment).
		Execute(ctx, dto.CompleteContactInfoRequest{SessionID: sessionID, ContactInfo: validContactInfo()})
	require.NoError(t, err)
	assert.Equal(t, "DOCUMENTS", state.Stage)
	assert.Equal(t, 1, employment.calls)

	resumed, err := usecase.NewResumeWizardUseCase(drafts).
		Execute(ctx, dto.ResumeWizardRequest{SessionID: sessionID})
	require.NoError(t, err)
	require.NotNil(t, resumed.Verification)
	assert.Equal(t, "ACME LTD", resumed.Verification.Organization)
	assert.Equal(t, "200000", resumed.Verification.MonthlyNetPay.String())
}

func TestCompleteContactInfo_RefusedBeforeBasicInfo(t *testing.T) {
	drafts := newMemoryDraftStore()

	_, err := usecase.NewCompleteContactInfoUseCase(drafts, &mockEmploymentVerifier{}).
		Execute(context.Background(), dto.CompleteContactInfoRequest{
			SessionID:   sessionID,
			ContactInfo: validContactInfo(),
		})
	assert.ErrorIs(t, err, usecase.ErrStageNotReached)
}

func TestNavigateBack_NeverValidates(t *testing.T) {
	drafts := newMemoryDraftStore()
	completeThroughContactInfo(t, drafts)
	ctx := context.Background()

	state, err := usecase.NewNavigateBackUseCase(drafts).
		Execute(ctx, dto.NavigateBackRequest{SessionID: sessionID})
	require.NoError(t, err)
	assert.Equal(t, "CONTACT_INFO", state.Stage)

	state, err = usecase.NewNavigateBackUseCase(drafts).
		Execute(ctx, dto.NavigateBackRequest{SessionID: sessionID})
	require.NoError(t, err)
	assert.Equal(t, "BASIC_INFO", state.Stage)

	// There is nowhere further back to go.
	_, err = usecase.NewNavigateBackUseCase(drafts).
		Execute(ctx, dto.NavigateBackRequest{SessionID: sessionID})
	assert.Error(t, err)
}

func TestResumeWizard_RehydratesWithoutRevalidation(t *testing.T) {
	drafts := newMemoryDraftStore()
	completeThroughContactInfo(t, drafts)

	resumed, err := usecase.NewResumeWizardUseCase(drafts).
		Execute(context.Background(), dto.ResumeWizardRequest{SessionID: sessionID})
	require.NoError(t, err)

	assert.Equal(t, "DOCUMENTS", resumed.Stage)
	assert.Equal(t, 2, resumed.StagePointer)
	require.NotNil(t, resumed.BasicInfo)
	assert.Equal(t, "Ada", resumed.BasicInfo.FirstName)
	require.NotNil(t, resumed.ContactInfo)
	assert.Equal(t, "EMP-0042", resumed.ContactInfo.EmploymentReference)
}

func TestResumeWizard_FreshSessionStartsAtBasicInfo(t *testing.T) {
	drafts := newMemoryDraftStore()

	resumed, err := usecase.NewResumeWizardUseCase(drafts).
		Execute(context.Background(), dto.ResumeWizardRequest{SessionID: "unknown"})
	require.NoError(t, err)
	assert.Equal(t, "BASIC_INFO", resumed.Stage)
	assert.Nil(t, resumed.BasicInfo)
}

func TestComputeEligibility_UsesCachedEmployment(t *testing.T) {
	drafts := newMemoryDraftStore()
	completeThroughContactInfo(t, drafts)

	resp, err := usecase.NewComputeEligibilityUseCase(drafts, service.NewRepaymentCalculator()).
		Execute(context.Background(), dto.ComputeEligibilityRequest{
			SessionID:    sessionID,
			PrincipalRaw: "100,000",
			TenorMonths:  12,
		})
	require.NoError(t, err)

	assert.Equal(t, "5", resp.InterestRate.String())
	assert.Equal(t, "13333.33", resp.MonthlyRepayment.StringFixed(2))
	assert.Equal(t, "160000.00", resp.TotalRepayment.StringFixed(2))
	// 200000 net pay, 33% cap, 12 months: 66000 * 12 / 1.6 = 495000.
	assert.Equal(t, "495000.00", resp.EligibleAmount.StringFixed(2))
}

func TestComputeEligibility_MidTypingAmountReturnsZeroTerms(t *testing.T) {
	drafts := newMemoryDraftStore()
	completeThroughContactInfo(t, drafts)

	resp, err := usecase.NewComputeEligibilityUseCase(drafts, service.NewRepaymentCalculator()).
		Execute(context.Background(), dto.ComputeEligibilityRequest{
			SessionID:    sessionID,
			PrincipalRaw: "",
			TenorMonths:  12,
		})
	require.NoError(t, err)
	assert.True(t, resp.MonthlyRepayment.IsZero())
	assert.False(t, resp.EligibleAmount.IsZero())
}

func TestSubmitApplication_CreatesRecordAndParksAtSuccess(t *testing.T) {
	drafts := newMemoryDraftStore()
	completeThroughContactInfo(t, drafts)
	repo := &mockRecordRepository{}
	publisher := &mockEventPublisher{}
	ctx := context.Background()

	resp, err := usecase.NewSubmitApplicationUseCase(drafts, repo, publisher, service.NewRepaymentCalculator()).
		Execute(ctx, dto.SubmitApplicationRequest{SessionID: sessionID, Documents: validDocuments()})
	require.NoError(t, err)

	assert.Equal(t, "REVIEWER", resp.Stage)
	assert.Equal(t, "Ada Obi", resp.ApplicantName)
	assert.Equal(t, "ACME LTD", resp.Organization)
	require.Len(t, repo.savedRecords, 1)
	require.Len(t, publisher.publishedEvents, 1)
	assert.Equal(t, "console.application.submitted", publisher.publishedEvents[0].EventType())

	resumed, err := usecase.NewResumeWizardUseCase(drafts).
		Execute(ctx, dto.ResumeWizardRequest{SessionID: sessionID})
	require.NoError(t, err)
	assert.Equal(t, "SUCCESS", resumed.Stage)
}

func TestSubmitApplication_PrincipalAboveEligibleRefused(t *testing.T) {
	drafts := newMemoryDraftStore()
	completeThroughContactInfo(t, drafts)
	repo := &mockRecordRepository{}

	docs := validDocuments()
	docs.PrincipalRaw = "500,000" // eligible is 495000 at this net pay and tenor
	_, err := usecase.NewSubmitApplicationUseCase(drafts, repo, &mockEventPublisher{}, service.NewRepaymentCalculator()).
		Execute(context.Background(), dto.SubmitApplicationRequest{SessionID: sessionID, Documents: docs})

	assert.ErrorIs(t, err, model.ErrAmountExceedsEligible)
	assert.Empty(t, repo.savedRecords)
}

func TestSubmitApplication_RefusedBeforeDocumentsStage(t *testing.T) {
	drafts := newMemoryDraftStore()

	_, err := usecase.NewSubmitApplicationUseCase(drafts, &mockRecordRepository{}, &mockEventPublisher{}, service.NewRepaymentCalculator()).
		Execute(context.Background(), dto.SubmitApplicationRequest{SessionID: sessionID, Documents: validDocuments()})
	assert.ErrorIs(t, err, usecase.ErrStageNotReached)
}

func TestDiscardDraft_RemovesEverything(t *testing.T) {
	drafts := newMemoryDraftStore()
	completeThroughContactInfo(t, drafts)
	ctx := context.Background()

	err := usecase.NewDiscardDraftUseCase(drafts).
		Execute(ctx, dto.DiscardDraftRequest{SessionID: sessionID})
	require.NoError(t, err)

	resumed, err := usecase.NewResumeWizardUseCase(drafts).
		Execute(ctx, dto.ResumeWizardRequest{SessionID: sessionID})
	require.NoError(t, err)
	assert.Equal(t, "BASIC_INFO", resumed.Stage)
	assert.Nil(t, resumed.BasicInfo)
	assert.Nil(t, resumed.Verification)
}
