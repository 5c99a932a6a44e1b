package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DomainEvent is the interface all console domain events implement.
type DomainEvent interface {
	EventID() string
	EventType() string
	AggregateID() string
	AggregateType() string
	OccurredAt() time.Time
}

// BaseEvent provides the shared implementation of DomainEvent.
type BaseEvent struct {
	ID            string    `json:"event_id"`
	Type          string    `json:"event_type"`
	Aggregate     string    `json:"aggregate_id"`
	AggregateKind string    `json:"aggregate_type"`
	At            time.Time `json:"occurred_at"`
}

// NewBaseEvent creates a BaseEvent with a generated UUID and the current time.
func NewBaseEvent(eventType, aggregateID, aggregateType string) BaseEvent {
	return BaseEvent{
		ID:            uuid.New().String(),
		Type:          eventType,
		Aggregate:     aggregateID,
		AggregateKind: aggregateType,
		At:            time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() string       { return e.ID }
func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) AggregateID() string   { return e.Aggregate }
func (e BaseEvent) AggregateType() string { return e.AggregateKind }
func (e BaseEvent) OccurredAt() time.Time { return e.At }

// ---------------------------------------------------------------------------
// Application record events
// ---------------------------------------------------------------------------

// ApplicationSubmitted is raised when a completed wizard draft enters the
// approval pipeline at the reviewer stage.
type ApplicationSubmitted struct {
	BaseEvent
	ProfileID        string          `json:"profile_id"`
	Organization     string          `json:"organization"`
	Principal        decimal.Decimal `json:"principal"`
	TenorMonths      int             `json:"tenor_months"`
	MonthlyRepayment decimal.Decimal `json:"monthly_repayment"`
}

func NewApplicationSubmitted(recordID, profileID, organization string, principal decimal.Decimal, tenorMonths int, monthly decimal.Decimal) ApplicationSubmitted {
	return ApplicationSubmitted{
		BaseEvent:        NewBaseEvent("console.application.submitted", recordID, "ApplicationRecord"),
		ProfileID:        profileID,
		Organization:     organization,
		Principal:        principal,
		TenorMonths:      tenorMonths,
		MonthlyRepayment: monthly,
	}
}

// ReviewerApproved is raised when the reviewer's approval transition fires
// after a successful step-up passcode check.
type ReviewerApproved struct {
	BaseEvent
	ActorID string `json:"actor_id"`
	Note    string `json:"note"`
}

func NewReviewerApproved(recordID, actorID, note string) ReviewerApproved {
	return ReviewerApproved{
		BaseEvent: NewBaseEvent("console.application.reviewer_approved", recordID, "ApplicationRecord"),
		ActorID:   actorID,
		Note:      note,
	}
}

// ReviewerRejected is raised when the reviewer rejects a record.
type ReviewerRejected struct {
	BaseEvent
	ActorID string `json:"actor_id"`
	Note    string `json:"note"`
}

func NewReviewerRejected(recordID, actorID, note string) ReviewerRejected {
	return ReviewerRejected{
		BaseEvent: NewBaseEvent("console.application.reviewer_rejected", recordID, "ApplicationRecord"),
		ActorID:   actorID,
		Note:      note,
	}
}

// ApplicationCompleted is raised when the authorizer's final approval lands.
type ApplicationCompleted struct {
	BaseEvent
	ActorID string `json:"actor_id"`
	Note    string `json:"note"`
}

func NewApplicationCompleted(recordID, actorID, note string) ApplicationCompleted {
	return ApplicationCompleted{
		BaseEvent: NewBaseEvent("console.application.completed", recordID, "ApplicationRecord"),
		ActorID:   actorID,
		Note:      note,
	}
}

// AuthorizerRejected is raised when the authorizer rejects a record.
type AuthorizerRejected struct {
	BaseEvent
	ActorID string `json:"actor_id"`
	Note    string `json:"note"`
}

func NewAuthorizerRejected(recordID, actorID, note string) AuthorizerRejected {
	return AuthorizerRejected{
		BaseEvent: NewBaseEvent("console.application.authorizer_rejected", recordID, "ApplicationRecord"),
		ActorID:   actorID,
		Note:      note,
	}
}

// ApplicationClosed is raised when the authorizer terminates a record.
type ApplicationClosed struct {
	BaseEvent
	ActorID string `json:"actor_id"`
	Note    string `json:"note"`
}

func NewApplicationClosed(recordID, actorID, note string) ApplicationClosed {
	return ApplicationClosed{
		BaseEvent: NewBaseEvent("console.application.closed", recordID, "ApplicationRecord"),
		ActorID:   actorID,
		Note:      note,
	}
}

// ApplicationResubmitted is raised when an edited rejected record re-enters
// the pipeline at the reviewer stage.
type ApplicationResubmitted struct {
	BaseEvent
	Principal   decimal.Decimal `json:"principal"`
	TenorMonths int             `json:"tenor_months"`
}

func NewApplicationResubmitted(recordID string, principal decimal.Decimal, tenorMonths int) ApplicationResubmitted {
	return ApplicationResubmitted{
		BaseEvent:   NewBaseEvent("console.application.resubmitted", recordID, "ApplicationRecord"),
		Principal:   principal,
		TenorMonths: tenorMonths,
	}
}

// StepUpChallengeIssued is raised when a reviewer approval pre-check issues
// a one-time passcode challenge.
type StepUpChallengeIssued struct {
	BaseEvent
	ProfileID string    `json:"profile_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewStepUpChallengeIssued(recordID, profileID string, expiresAt time.Time) StepUpChallengeIssued {
	return StepUpChallengeIssued{
		BaseEvent: NewBaseEvent("console.stepup.challenge_issued", recordID, "ApplicationRecord"),
		ProfileID: profileID,
		ExpiresAt: expiresAt,
	}
}
