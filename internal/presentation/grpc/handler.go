package grpc

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/microlend/lending-console/internal/application/dto"
	"github.com/microlend/lending-console/internal/application/usecase"
	"github.com/microlend/lending-console/internal/domain/model"
	"github.com/microlend/lending-console/internal/domain/port"
	"github.com/microlend/lending-console/internal/domain/valueobject"
	"github.com/microlend/lending-console/pkg/auth"
)

// ConsoleHandler implements the gRPC console service handler.
type ConsoleHandler struct {
	UnimplementedConsoleServiceServer

	verifyIdentity   *usecase.VerifyIdentityUseCase
	completeBasic    *usecase.CompleteBasicInfoUseCase
	completeContact  *usecase.CompleteContactInfoUseCase
	computeEligible  *usecase.ComputeEligibilityUseCase
	submitApp        *usecase.SubmitApplicationUseCase
	navigateBack     *usecase.NavigateBackUseCase
	resumeWizard     *usecase.ResumeWizardUseCase
	discardDraft     *usecase.DiscardDraftUseCase
	ackSuccess       *usecase.AcknowledgeSuccessUseCase
	reviewerAct      *usecase.ReviewerActUseCase
	completeApproval *usecase.CompleteReviewerApprovalUseCase
	authorizerAct    *usecase.AuthorizerActUseCase
	editRejected     *usecase.EditRejectedUseCase
	getRecord        *usecase.GetRecordUseCase
	listRecords      *usecase.ListRecordsByStageUseCase
}

// NewConsoleHandler creates a new gRPC console handler.
func NewConsoleHandler(
	verifyIdentity *usecase.VerifyIdentityUseCase,
	completeBasic *usecase.CompleteBasicInfoUseCase,
	completeContact *usecase.CompleteContactInfoUseCase,
	computeEligible *usecase.ComputeEligibilityUseCase,
	submitApp *usecase.SubmitApplicationUseCase,
	navigateBack *usecase.NavigateBackUseCase,
	resumeWizard *usecase.ResumeWizardUseCase,
	discardDraft *usecase.DiscardDraftUseCase,
	ackSuccess *usecase.AcknowledgeSuccessUseCase,
	reviewerAct *usecase.ReviewerActUseCase,
	completeApproval *usecase.CompleteReviewerApprovalUseCase,
	authorizerAct *usecase.AuthorizerActUseCase,
	editRejected *usecase.EditRejectedUseCase,
	getRecord *usecase.GetRecordUseCase,
	listRecords *usecase.ListRecordsByStageUseCase,
) *ConsoleHandler {
	return &ConsoleHandler{
		verifyIdentity:   verifyIdentity,
		completeBasic:    completeBasic,
		completeContact:  completeContact,
		computeEligible:  computeEligible,
		submitApp:        submitApp,
		navigateBack:     navigateBack,
		resumeWizard:     resumeWizard,
		discardDraft:     discardDraft,
		ackSuccess:       ackSuccess,
		reviewerAct:      reviewerAct,
		completeApproval: completeApproval,
		authorizerAct:    authorizerAct,
		editRejected:     editRejected,
		getRecord:        getRecord,
		listRecords:      listRecords,
	}
}

// ---------------------------------------------------------------------------
// Message types (stand-ins for buf-generated code)
// ---------------------------------------------------------------------------

// VerifyIdentityRequest represents the gRPC request for identity verification.
type VerifyIdentityRequest struct {
	SessionID  string `json:"session_id"`
	NationalID string `json:"national_id"`
}

// VerifyIdentityResponse represents the gRPC response for identity verification.
type VerifyIdentityResponse struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	MaskedPhone string `json:"masked_phone"`
	DateOfBirth string `json:"date_of_birth"`
}

// BasicInfoMessage carries the first wizard stage's fields.
type BasicInfoMessage struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	NationalID  string `json:"national_id"`
	DateOfBirth string `json:"date_of_birth"`
}

// ContactInfoMessage carries the second wizard stage's fields.
type ContactInfoMessage struct {
	PhoneNumber         string `json:"phone_number"`
	Email               string `json:"email"`
	ResidentialAddress  string `json:"residential_address"`
	EmploymentReference string `json:"employment_reference"`
}

// AttachmentMessage is one uploaded supporting document.
type AttachmentMessage struct {
	Title string `json:"title"`
	Data  string `json:"data"`
}

// DocumentsMessage carries the final wizard stage's fields.
type DocumentsMessage struct {
	Principal   string              `json:"principal"`
	TenorMonths int32               `json:"tenor_months"`
	Attachments []AttachmentMessage `json:"attachments"`
	Signature   string              `json:"signature"`
	TermsAgreed bool                `json:"terms_agreed"`
}

// CompleteBasicInfoRequest represents the gRPC request for the first stage.
type CompleteBasicInfoRequest struct {
	SessionID string            `json:"session_id"`
	BasicInfo *BasicInfoMessage `json:"basic_info"`
}

// CompleteContactInfoRequest represents the gRPC request for the second stage.
type CompleteContactInfoRequest struct {
	SessionID   string              `json:"session_id"`
	ContactInfo *ContactInfoMessage `json:"contact_info"`
}

// WizardStateResponse represents the wizard position after an operation.
type WizardStateResponse struct {
	SessionID    string `json:"session_id"`
	Stage        string `json:"stage"`
	StagePointer int32  `json:"stage_pointer"`
}

// ComputeEligibilityRequest represents the gRPC request for recomputation.
type ComputeEligibilityRequest struct {
	SessionID   string `json:"session_id"`
	Principal   string `json:"principal"`
	TenorMonths int32  `json:"tenor_months"`
}

// EligibilityResponse represents the recomputed repayment snapshot.
type EligibilityResponse struct {
	EligibleAmount   string `json:"eligible_amount"`
	MonthlyRepayment string `json:"monthly_repayment"`
	TotalRepayment   string `json:"total_repayment"`
	InterestRate     string `json:"interest_rate"`
}

// SubmitApplicationRequest represents the gRPC request for final submission.
type SubmitApplicationRequest struct {
	SessionID string            `json:"session_id"`
	Documents *DocumentsMessage `json:"documents"`
}

// NavigateBackRequest represents the gRPC request for backward navigation.
type NavigateBackRequest struct {
	SessionID string `json:"session_id"`
}

// ResumeWizardRequest represents the gRPC request for session resumption.
type ResumeWizardRequest struct {
	SessionID string `json:"session_id"`
}

// VerificationMessage is the cached verification state a resumed session
// re-shows without re-running any check.
type VerificationMessage struct {
	IdentityVerified   bool   `json:"identity_verified"`
	NationalID         string `json:"national_id"`
	EmploymentVerified bool   `json:"employment_verified"`
	Organization       string `json:"organization"`
	MonthlyNetPay      string `json:"monthly_net_pay"`
	VerifiedAt         string `json:"verified_at"`
}

// ResumeWizardResponse rehydrates everything a resumed session needs.
type ResumeWizardResponse struct {
	SessionID    string               `json:"session_id"`
	Stage        string               `json:"stage"`
	StagePointer int32                `json:"stage_pointer"`
	BasicInfo    *BasicInfoMessage    `json:"basic_info,omitempty"`
	ContactInfo  *ContactInfoMessage  `json:"contact_info,omitempty"`
	Documents    *DocumentsMessage    `json:"documents,omitempty"`
	Verification *VerificationMessage `json:"verification,omitempty"`
}

// DiscardDraftRequest represents the gRPC request for clearing a draft.
type DiscardDraftRequest struct {
	SessionID string `json:"session_id"`
}

// DiscardDraftResponse acknowledges a cleared draft.
type DiscardDraftResponse struct {
	Cleared bool `json:"cleared"`
}

// AcknowledgeSuccessRequest closes out a submitted session.
type AcknowledgeSuccessRequest struct {
	SessionID string `json:"session_id"`
}

// AcknowledgeSuccessResponse carries the one-time confirmation note.
type AcknowledgeSuccessResponse struct {
	Note string `json:"note"`
}

// ReviewerActRequest represents a reviewer decision.
type ReviewerActRequest struct {
	RecordID string `json:"record_id"`
	Decision string `json:"decision"`
	Note     string `json:"note"`
}

// ReviewerActResponse carries either the updated record (reject) or the
// issued step-up challenge (approve).
type ReviewerActResponse struct {
	Record         *RecordMessage `json:"record,omitempty"`
	ChallengeToken string         `json:"challenge_token,omitempty"`
	ExpiresAt      string         `json:"expires_at,omitempty"`
}

// CompleteReviewerApprovalRequest consumes a step-up challenge.
type CompleteReviewerApprovalRequest struct {
	ChallengeToken string `json:"challenge_token"`
	Passcode       string `json:"passcode"`
}

// AuthorizerActRequest represents an authorizer decision.
type AuthorizerActRequest struct {
	RecordID string `json:"record_id"`
	Decision string `json:"decision"`
	Note     string `json:"note"`
}

// EditRejectedRequest represents the one-shot rejected-record edit.
type EditRejectedRequest struct {
	RecordID            string `json:"record_id"`
	NationalID          string `json:"national_id"`
	EmploymentReference string `json:"employment_reference"`
	Principal           string `json:"principal"`
	TenorMonths         int32  `json:"tenor_months"`
}

// GetRecordRequest identifies a record to retrieve.
type GetRecordRequest struct {
	RecordID string `json:"record_id"`
}

// ListRecordsByStageRequest lists records at a pipeline stage.
type ListRecordsByStageRequest struct {
	Stage string `json:"stage"`
}

// ListRecordsByStageResponse carries the stage's records.
type ListRecordsByStageResponse struct {
	Records []*RecordMessage `json:"records"`
}

// ReviewNoteMessage is one entry of a record's decision trail.
type ReviewNoteMessage struct {
	ActorID  string `json:"actor_id"`
	Stage    string `json:"stage"`
	Decision string `json:"decision"`
	Note     string `json:"note"`
	At       string `json:"at"`
}

// RecordMessage represents the gRPC view of a pipeline record.
type RecordMessage struct {
	ID               string               `json:"id"`
	ProfileID        string               `json:"profile_id"`
	ApplicantName    string               `json:"applicant_name"`
	Organization     string               `json:"organization"`
	Principal        string               `json:"principal"`
	TenorMonths      int32                `json:"tenor_months"`
	InterestRate     string               `json:"interest_rate"`
	MonthlyRepayment string               `json:"monthly_repayment"`
	TotalRepayment   string               `json:"total_repayment"`
	Stage            string               `json:"stage"`
	ReviewTrail      []*ReviewNoteMessage `json:"review_trail"`
	CreatedAt        string               `json:"created_at"`
	UpdatedAt        string               `json:"updated_at"`
}

// ---------------------------------------------------------------------------
// Wizard methods
// ---------------------------------------------------------------------------

// VerifyIdentity handles the gRPC VerifyIdentity request.
func (h *ConsoleHandler) VerifyIdentity(ctx context.Context, req *VerifyIdentityRequest) (*VerifyIdentityResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	result, err := h.verifyIdentity.Execute(ctx, dto.VerifyIdentityRequest{
		SessionID:  req.SessionID,
		NationalID: req.NationalID,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &VerifyIdentityResponse{
		FirstName:   result.FirstName,
		LastName:    result.LastName,
		MaskedPhone: result.MaskedPhone,
		DateOfBirth: result.DateOfBirth,
	}, nil
}

// CompleteBasicInfo handles the gRPC CompleteBasicInfo request.
func (h *ConsoleHandler) CompleteBasicInfo(ctx context.Context, req *CompleteBasicInfoRequest) (*WizardStateResponse, error) {
	if req == nil || req.BasicInfo == nil {
		return nil, status.Error(codes.InvalidArgument, "basic info is required")
	}
	result, err := h.completeBasic.Execute(ctx, dto.CompleteBasicInfoRequest{
		SessionID: req.SessionID,
		BasicInfo: model.BasicInfo{
			FirstName:   req.BasicInfo.FirstName,
			LastName:    req.BasicInfo.LastName,
			NationalID:  req.BasicInfo.NationalID,
			DateOfBirth: req.BasicInfo.DateOfBirth,
		},
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return toWizardState(result), nil
}

// CompleteContactInfo handles the gRPC CompleteContactInfo request.
func (h *ConsoleHandler) CompleteContactInfo(ctx context.Context, req *CompleteContactInfoRequest) (*WizardStateResponse, error) {
	if req == nil || req.ContactInfo == nil {
		return nil, status.Error(codes.InvalidArgument, "contact info is required")
	}
	result, err := h.completeContact.Execute(ctx, dto.CompleteContactInfoRequest{
		SessionID: req.SessionID,
		ContactInfo: model.ContactInfo{
			PhoneNumber:         req.ContactInfo.PhoneNumber,
			Email:               req.ContactInfo.Email,
			ResidentialAddress:  req.ContactInfo.ResidentialAddress,
			EmploymentReference: req.ContactInfo.EmploymentReference,
		},
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return toWizardState(result), nil
}

// ComputeEligibility handles the gRPC ComputeEligibility request.
func (h *ConsoleHandler) ComputeEligibility(ctx context.Context, req *ComputeEligibilityRequest) (*EligibilityResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	result, err := h.computeEligible.Execute(ctx, dto.ComputeEligibilityRequest{
		SessionID:    req.SessionID,
		PrincipalRaw: req.Principal,
		TenorMonths:  int(req.TenorMonths),
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &EligibilityResponse{
		EligibleAmount:   result.EligibleAmount.StringFixed(2),
		MonthlyRepayment: result.MonthlyRepayment.StringFixed(2),
		TotalRepayment:   result.TotalRepayment.StringFixed(2),
		InterestRate:     result.InterestRate.String(),
	}, nil
}

// SubmitApplication handles the gRPC SubmitApplication request.
func (h *ConsoleHandler) SubmitApplication(ctx context.Context, req *SubmitApplicationRequest) (*RecordMessage, error) {
	if req == nil || req.Documents == nil {
		return nil, status.Error(codes.InvalidArgument, "documents are required")
	}
	attachments := make([]model.Attachment, 0, len(req.Documents.Attachments))
	for _, a := range req.Documents.Attachments {
		attachments = append(attachments, model.Attachment{Title: a.Title, Data: a.Data})
	}
	result, err := h.submitApp.Execute(ctx, dto.SubmitApplicationRequest{
		SessionID: req.SessionID,
		Documents: model.Documents{
			PrincipalRaw: req.Documents.Principal,
			TenorMonths:  int(req.Documents.TenorMonths),
			Attachments:  attachments,
			Signature:    req.Documents.Signature,
			TermsAgreed:  req.Documents.TermsAgreed,
		},
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return toRecordMessage(result), nil
}

// NavigateBack handles the gRPC NavigateBack request.
func (h *ConsoleHandler) NavigateBack(ctx context.Context, req *NavigateBackRequest) (*WizardStateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	result, err := h.navigateBack.Execute(ctx, dto.NavigateBackRequest{SessionID: req.SessionID})
	if err != nil {
		return nil, statusFromError(err)
	}
	return toWizardState(result), nil
}

// ResumeWizard handles the gRPC ResumeWizard request.
func (h *ConsoleHandler) ResumeWizard(ctx context.Context, req *ResumeWizardRequest) (*ResumeWizardResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	result, err := h.resumeWizard.Execute(ctx, dto.ResumeWizardRequest{SessionID: req.SessionID})
	if err != nil {
		return nil, statusFromError(err)
	}

	resp := &ResumeWizardResponse{
		SessionID:    result.SessionID,
		Stage:        result.Stage,
		StagePointer: int32(result.StagePointer),
	}
	if result.BasicInfo != nil {
		resp.BasicInfo = &BasicInfoMessage{
			FirstName:   result.BasicInfo.FirstName,
			LastName:    result.BasicInfo.LastName,
			NationalID:  result.BasicInfo.NationalID,
			DateOfBirth: result.BasicInfo.DateOfBirth,
		}
	}
	if result.ContactInfo != nil {
		resp.ContactInfo = &ContactInfoMessage{
			PhoneNumber:         result.ContactInfo.PhoneNumber,
			Email:               result.ContactInfo.Email,
			ResidentialAddress:  result.ContactInfo.ResidentialAddress,
			EmploymentReference: result.ContactInfo.EmploymentReference,
		}
	}
	if result.Documents != nil {
		docs := &DocumentsMessage{
			Principal:   result.Documents.PrincipalRaw,
			TenorMonths: int32(result.Documents.TenorMonths),
			Signature:   result.Documents.Signature,
			TermsAgreed: result.Documents.TermsAgreed,
		}
		for _, a := range result.Documents.Attachments {
			docs.Attachments = append(docs.Attachments, AttachmentMessage{Title: a.Title, Data: a.Data})
		}
		resp.Documents = docs
	}
	if result.Verification != nil {
		resp.Verification = &VerificationMessage{
			IdentityVerified:   result.Verification.IdentityVerified,
			NationalID:         result.Verification.NationalID,
			EmploymentVerified: result.Verification.EmploymentVerified,
			Organization:       result.Verification.Organization,
			MonthlyNetPay:      result.Verification.MonthlyNetPay.StringFixed(2),
			VerifiedAt:         result.Verification.VerifiedAt.Format(time.RFC3339),
		}
	}
	return resp, nil
}

// DiscardDraft handles the gRPC DiscardDraft request.
func (h *ConsoleHandler) DiscardDraft(ctx context.Context, req *DiscardDraftRequest) (*DiscardDraftResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if err := h.discardDraft.Execute(ctx, dto.DiscardDraftRequest{SessionID: req.SessionID}); err != nil {
		return nil, statusFromError(err)
	}
	return &DiscardDraftResponse{Cleared: true}, nil
}

// AcknowledgeSuccess handles the gRPC AcknowledgeSuccess request.
func (h *ConsoleHandler) AcknowledgeSuccess(ctx context.Context, req *AcknowledgeSuccessRequest) (*AcknowledgeSuccessResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	result, err := h.ackSuccess.Execute(ctx, dto.AcknowledgeSuccessRequest{SessionID: req.SessionID})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &AcknowledgeSuccessResponse{Note: result.Note}, nil
}

// ---------------------------------------------------------------------------
// Pipeline methods
// ---------------------------------------------------------------------------

// ReviewerAct handles the gRPC ReviewerAct request.
func (h *ConsoleHandler) ReviewerAct(ctx context.Context, req *ReviewerActRequest) (*ReviewerActResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	actorID, err := requireRole(ctx, auth.RoleReviewer)
	if err != nil {
		return nil, err
	}
	result, err := h.reviewerAct.Execute(ctx, dto.ReviewerActRequest{
		RecordID: req.RecordID,
		ActorID:  actorID,
		Decision: req.Decision,
		Note:     req.Note,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	resp := &ReviewerActResponse{}
	if result.Record != nil {
		resp.Record = toRecordMessage(*result.Record)
	}
	if result.Challenge != nil {
		resp.ChallengeToken = result.Challenge.ChallengeToken
		resp.ExpiresAt = result.Challenge.ExpiresAt.Format(time.RFC3339)
	}
	return resp, nil
}

// CompleteReviewerApproval handles the gRPC CompleteReviewerApproval request.
func (h *ConsoleHandler) CompleteReviewerApproval(ctx context.Context, req *CompleteReviewerApprovalRequest) (*RecordMessage, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if _, err := requireRole(ctx, auth.RoleReviewer); err != nil {
		return nil, err
	}
	result, err := h.completeApproval.Execute(ctx, dto.CompleteReviewerApprovalRequest{
		ChallengeToken: req.ChallengeToken,
		Passcode:       req.Passcode,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return toRecordMessage(result), nil
}

// AuthorizerAct handles the gRPC AuthorizerAct request.
func (h *ConsoleHandler) AuthorizerAct(ctx context.Context, req *AuthorizerActRequest) (*RecordMessage, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	actorID, err := requireRole(ctx, auth.RoleAuthorizer)
	if err != nil {
		return nil, err
	}
	result, err := h.authorizerAct.Execute(ctx, dto.AuthorizerActRequest{
		RecordID: req.RecordID,
		ActorID:  actorID,
		Decision: req.Decision,
		Note:     req.Note,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return toRecordMessage(result), nil
}

// EditRejected handles the gRPC EditRejected request.
func (h *ConsoleHandler) EditRejected(ctx context.Context, req *EditRejectedRequest) (*RecordMessage, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	result, err := h.editRejected.Execute(ctx, dto.EditRejectedRequest{
		RecordID:            req.RecordID,
		NationalID:          req.NationalID,
		EmploymentReference: req.EmploymentReference,
		PrincipalRaw:        req.Principal,
		TenorMonths:         int(req.TenorMonths),
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return toRecordMessage(result), nil
}

// GetRecord handles the gRPC GetRecord request.
func (h *ConsoleHandler) GetRecord(ctx context.Context, req *GetRecordRequest) (*RecordMessage, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	result, err := h.getRecord.Execute(ctx, dto.GetRecordRequest{RecordID: req.RecordID})
	if err != nil {
		return nil, statusFromError(err)
	}
	return toRecordMessage(result), nil
}

// ListRecordsByStage handles the gRPC ListRecordsByStage request.
func (h *ConsoleHandler) ListRecordsByStage(ctx context.Context, req *ListRecordsByStageRequest) (*ListRecordsByStageResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	results, err := h.listRecords.Execute(ctx, dto.ListRecordsByStageRequest{Stage: req.Stage})
	if err != nil {
		return nil, statusFromError(err)
	}
	resp := &ListRecordsByStageResponse{Records: make([]*RecordMessage, 0, len(results))}
	for _, r := range results {
		resp.Records = append(resp.Records, toRecordMessage(r))
	}
	return resp, nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func toWizardState(state dto.WizardStateResponse) *WizardStateResponse {
	return &WizardStateResponse{
		SessionID:    state.SessionID,
		Stage:        state.Stage,
		StagePointer: int32(state.StagePointer),
	}
}

func toRecordMessage(rec dto.ApplicationRecordResponse) *RecordMessage {
	trail := make([]*ReviewNoteMessage, 0, len(rec.ReviewTrail))
	for _, n := range rec.ReviewTrail {
		trail = append(trail, &ReviewNoteMessage{
			ActorID:  n.ActorID,
			Stage:    n.Stage,
			Decision: n.Decision,
			Note:     n.Note,
			At:       n.At.Format(time.RFC3339),
		})
	}
	return &RecordMessage{
		ID:               rec.ID,
		ProfileID:        rec.ProfileID,
		ApplicantName:    rec.ApplicantName,
		Organization:     rec.Organization,
		Principal:        rec.Principal.StringFixed(2),
		TenorMonths:      int32(rec.TenorMonths),
		InterestRate:     rec.InterestRate.String(),
		MonthlyRepayment: rec.MonthlyRepayment.StringFixed(2),
		TotalRepayment:   rec.TotalRepayment.StringFixed(2),
		Stage:            rec.Stage,
		ReviewTrail:      trail,
		CreatedAt:        rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        rec.UpdatedAt.Format(time.RFC3339),
	}
}

// requireRole resolves the caller's claims and checks the staff role.
func requireRole(ctx context.Context, role string) (string, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing authentication")
	}
	if !claims.HasRole(role) && !claims.HasRole(auth.RoleAdmin) {
		return "", status.Errorf(codes.PermissionDenied, "role %s required", role)
	}
	return claims.UserID.String(), nil
}

func statusFromError(err error) error {
	switch {
	case errors.Is(err, port.ErrRecordNotFound),
		errors.Is(err, port.ErrChallengeNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, valueobject.ErrStageMismatch),
		errors.Is(err, valueobject.ErrInvalidStageTransition),
		errors.Is(err, usecase.ErrStageNotReached),
		errors.Is(err, usecase.ErrIdentityNotVerified),
		errors.Is(err, usecase.ErrChallengeExpired):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, valueobject.ErrNoteRequired),
		errors.Is(err, usecase.ErrDecisionNotPermitted),
		errors.Is(err, model.ErrAmountExceedsEligible),
		errors.Is(err, model.ErrTermsNotAgreed):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, port.ErrVerificationFailed):
		return status.Error(codes.PermissionDenied, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
