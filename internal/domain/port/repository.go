package port

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/microlend/lending-console/internal/domain/event"
	"github.com/microlend/lending-console/internal/domain/model"
	"github.com/microlend/lending-console/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// ErrRecordNotFound is returned when no application record matches the lookup.
var ErrRecordNotFound = errors.New("application record not found")

// ApplicationRecordRepository persists and retrieves application records.
type ApplicationRecordRepository interface {
	Save(ctx context.Context, rec model.ApplicationRecord) error
	FindByID(ctx context.Context, id string) (model.ApplicationRecord, error)
	FindByStage(ctx context.Context, stage valueobject.PipelineStage) ([]model.ApplicationRecord, error)
}

// ---------------------------------------------------------------------------
// Draft store port
// ---------------------------------------------------------------------------

// DraftKey enumerates the keys a wizard session may hold. The key set is
// closed: Clear removes exactly these keys and nothing else.
type DraftKey string

const (
	DraftKeyStagePointer DraftKey = "stage_pointer"
	DraftKeyBasicInfo    DraftKey = "basic_info"
	DraftKeyContactInfo  DraftKey = "contact_info"
	DraftKeyDocuments    DraftKey = "documents"
	DraftKeyVerification DraftKey = "verification"
	DraftKeySuccessNote  DraftKey = "success_note"
)

// AllDraftKeys lists every key Clear must remove.
var AllDraftKeys = []DraftKey{
	DraftKeyStagePointer,
	DraftKeyBasicInfo,
	DraftKeyContactInfo,
	DraftKeyDocuments,
	DraftKeyVerification,
	DraftKeySuccessNote,
}

// ErrDraftKeyNotFound is returned when a session holds no value for the key.
var ErrDraftKeyNotFound = errors.New("draft key not found")

// DraftStore is the durable session-scoped store backing the wizard. Each
// write is atomic per key; values survive process restarts for the lifetime
// of the session.
type DraftStore interface {
	Put(ctx context.Context, sessionID string, key DraftKey, value []byte) error
	Get(ctx context.Context, sessionID string, key DraftKey) ([]byte, error)
	Clear(ctx context.Context, sessionID string) error
}

// ---------------------------------------------------------------------------
// Step-up challenge store port
// ---------------------------------------------------------------------------

// ErrChallengeNotFound is returned when a challenge token is unknown, already
// consumed, or expired.
var ErrChallengeNotFound = errors.New("step-up challenge not found or already consumed")

// ChallengeStore holds pending step-up challenges. Take removes and returns
// the challenge in one step so a token can never be consumed twice.
type ChallengeStore interface {
	Put(ctx context.Context, c model.StepUpChallenge) error
	Take(ctx context.Context, token string) (model.StepUpChallenge, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// ErrVerificationFailed is returned when an external check rejects the input.
var ErrVerificationFailed = errors.New("verification failed")

// IdentityDetails is what the identity provider returns for a verified
// national identifier. The phone number arrives partially masked.
type IdentityDetails struct {
	FirstName   string
	LastName    string
	MaskedPhone string
	DateOfBirth time.Time
}

// IdentityVerifier checks a national identifier against the identity provider.
type IdentityVerifier interface {
	VerifyIdentity(ctx context.Context, nationalID string) (IdentityDetails, error)
}

// EmploymentDetails is what the employment registry resolves for a reference.
type EmploymentDetails struct {
	Organization  string
	MonthlyNetPay decimal.Decimal
}

// EmploymentVerifier resolves an employment reference to the employing
// organization and the applicant's monthly net pay.
type EmploymentVerifier interface {
	VerifyEmployment(ctx context.Context, employmentReference string) (EmploymentDetails, error)
}

// PasscodeVerifier runs the step-up passcode check against the external
// passcode service. It returns ErrVerificationFailed for a wrong passcode.
type PasscodeVerifier interface {
	VerifyPasscode(ctx context.Context, profileID, passcode string) error
}
