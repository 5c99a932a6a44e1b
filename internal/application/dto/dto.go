package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/microlend/lending-console/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// VerifyIdentityRequest starts identity verification for a wizard session.
type VerifyIdentityRequest struct {
	SessionID  string `json:"session_id"`
	NationalID string `json:"national_id"`
}

// CompleteBasicInfoRequest completes the first wizard stage.
type CompleteBasicInfoRequest struct {
	SessionID string          `json:"session_id"`
	BasicInfo model.BasicInfo `json:"basic_info"`
}

// CompleteContactInfoRequest completes the second wizard stage.
type CompleteContactInfoRequest struct {
	SessionID   string            `json:"session_id"`
	ContactInfo model.ContactInfo `json:"contact_info"`
}

// ComputeEligibilityRequest recomputes repayment terms for the current draft.
type ComputeEligibilityRequest struct {
	SessionID    string `json:"session_id"`
	PrincipalRaw string `json:"principal_raw"`
	TenorMonths  int    `json:"tenor_months"`
}

// SubmitApplicationRequest completes the documents stage and submits the
// draft into the approval pipeline.
type SubmitApplicationRequest struct {
	SessionID string          `json:"session_id"`
	Documents model.Documents `json:"documents"`
}

// NavigateBackRequest moves the wizard one stage backward.
type NavigateBackRequest struct {
	SessionID string `json:"session_id"`
}

// ResumeWizardRequest rehydrates a session's draft.
type ResumeWizardRequest struct {
	SessionID string `json:"session_id"`
}

// DiscardDraftRequest clears every wizard key for the session.
type DiscardDraftRequest struct {
	SessionID string `json:"session_id"`
}

// AcknowledgeSuccessRequest closes out a submitted session.
type AcknowledgeSuccessRequest struct {
	SessionID string `json:"session_id"`
}

// ReviewerActRequest is a reviewer decision on a record at the REVIEWER stage.
type ReviewerActRequest struct {
	RecordID string `json:"record_id"`
	ActorID  string `json:"actor_id"`
	Decision string `json:"decision"`
	Note     string `json:"note"`
}

// CompleteReviewerApprovalRequest consumes a step-up challenge with the
// passcode the reviewer received.
type CompleteReviewerApprovalRequest struct {
	ChallengeToken string `json:"challenge_token"`
	Passcode       string `json:"passcode"`
}

// AuthorizerActRequest is an authorizer decision on a record at the
// AUTHORIZER stage.
type AuthorizerActRequest struct {
	RecordID string `json:"record_id"`
	ActorID  string `json:"actor_id"`
	Decision string `json:"decision"`
	Note     string `json:"note"`
}

// EditRejectedRequest re-verifies and resubmits a rejected record with
// edited terms.
type EditRejectedRequest struct {
	RecordID            string `json:"record_id"`
	NationalID          string `json:"national_id"`
	EmploymentReference string `json:"employment_reference"`
	PrincipalRaw        string `json:"principal_raw"`
	TenorMonths         int    `json:"tenor_months"`
}

// GetRecordRequest identifies a record to retrieve.
type GetRecordRequest struct {
	RecordID string `json:"record_id"`
}

// ListRecordsByStageRequest lists records sitting at a pipeline stage.
type ListRecordsByStageRequest struct {
	Stage string `json:"stage"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// VerifyIdentityResponse returns the provider's identity details. The phone
// number arrives partially masked and pre-fills the contact stage.
type VerifyIdentityResponse struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	MaskedPhone string `json:"masked_phone"`
	DateOfBirth string `json:"date_of_birth"`
}

// WizardStateResponse is the wizard's position after an operation.
type WizardStateResponse struct {
	SessionID    string `json:"session_id"`
	Stage        string `json:"stage"`
	StagePointer int    `json:"stage_pointer"`
}

// ResumeWizardResponse rehydrates everything a resumed session needs.
type ResumeWizardResponse struct {
	SessionID    string                    `json:"session_id"`
	Stage        string                    `json:"stage"`
	StagePointer int                       `json:"stage_pointer"`
	BasicInfo    *model.BasicInfo          `json:"basic_info,omitempty"`
	ContactInfo  *model.ContactInfo        `json:"contact_info,omitempty"`
	Documents    *model.Documents          `json:"documents,omitempty"`
	Verification *model.VerificationResult `json:"verification,omitempty"`
}

// AcknowledgeSuccessResponse carries the confirmation note shown once before
// the draft is cleared.
type AcknowledgeSuccessResponse struct {
	Note string `json:"note"`
}

// EligibilityResponse is the recomputed repayment snapshot.
type EligibilityResponse struct {
	EligibleAmount   decimal.Decimal `json:"eligible_amount"`
	MonthlyRepayment decimal.Decimal `json:"monthly_repayment"`
	TotalRepayment   decimal.Decimal `json:"total_repayment"`
	InterestRate     decimal.Decimal `json:"interest_rate"`
}

// ReviewNoteResponse is one entry of a record's decision trail.
type ReviewNoteResponse struct {
	ActorID  string    `json:"actor_id"`
	Stage    string    `json:"stage"`
	Decision string    `json:"decision"`
	Note     string    `json:"note"`
	At       time.Time `json:"at"`
}

// ApplicationRecordResponse is the console view of a pipeline record.
type ApplicationRecordResponse struct {
	ID               string               `json:"id"`
	ProfileID        string               `json:"profile_id"`
	ApplicantName    string               `json:"applicant_name"`
	Organization     string               `json:"organization"`
	Principal        decimal.Decimal      `json:"principal"`
	TenorMonths      int                  `json:"tenor_months"`
	InterestRate     decimal.Decimal      `json:"interest_rate"`
	MonthlyRepayment decimal.Decimal      `json:"monthly_repayment"`
	TotalRepayment   decimal.Decimal      `json:"total_repayment"`
	Stage            string               `json:"stage"`
	ReviewTrail      []ReviewNoteResponse `json:"review_trail"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// StepUpChallengeResponse is returned when a reviewer approval issues a
// step-up challenge. The passcode itself travels out of band.
type StepUpChallengeResponse struct {
	ChallengeToken string    `json:"challenge_token"`
	RecordID       string    `json:"record_id"`
	ExpiresAt      time.Time `json:"expires_at"`
}
