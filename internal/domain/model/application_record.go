package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/microlend/lending-console/internal/domain/event"
	"github.com/microlend/lending-console/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// ApplicationRecord aggregate root (approval pipeline)
// ---------------------------------------------------------------------------

// ReviewNote is one entry of the record's decision trail.
type ReviewNote struct {
	ActorID  string
	Stage    valueobject.PipelineStage
	Decision valueobject.ReviewDecision
	Note     string
	At       time.Time
}

// ApplicationRecord is an immutable aggregate. Every mutation returns a new
// copy. A record is created when a completed wizard draft is submitted and
// moves through the staff approval pipeline until a terminal stage.
type ApplicationRecord struct {
	id               string
	profileID        string
	applicantName    string
	organization     string
	principal        decimal.Decimal
	tenorMonths      int
	interestRate     decimal.Decimal
	monthlyRepayment decimal.Decimal
	totalRepayment   decimal.Decimal
	stage            valueobject.PipelineStage
	reviewTrail      []ReviewNote
	version          int
	createdAt        time.Time
	updatedAt        time.Time
	domainEvents     []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewApplicationRecord creates a freshly submitted record at the REVIEWER stage.
func NewApplicationRecord(
	profileID, applicantName, organization string,
	principal decimal.Decimal,
	tenorMonths int,
	interestRate, monthlyRepayment, totalRepayment decimal.Decimal,
	now time.Time,
) (ApplicationRecord, error) {
	if profileID == "" {
		return ApplicationRecord{}, errors.New("profile ID is required")
	}
	if applicantName == "" {
		return ApplicationRecord{}, errors.New("applicant name is required")
	}
	if principal.LessThanOrEqual(decimal.Zero) {
		return ApplicationRecord{}, errors.New("principal must be positive")
	}
	if tenorMonths <= 0 {
		return ApplicationRecord{}, errors.New("tenor months must be positive")
	}

	id := uuid.New().String()
	rec := ApplicationRecord{
		id:               id,
		profileID:        profileID,
		applicantName:    applicantName,
		organization:     organization,
		principal:        principal,
		tenorMonths:      tenorMonths,
		interestRate:     interestRate,
		monthlyRepayment: monthlyRepayment,
		totalRepayment:   totalRepayment,
		stage:            valueobject.PipelineStageReviewer,
		version:          1,
		createdAt:        now,
		updatedAt:        now,
	}

	rec.domainEvents = append(rec.domainEvents, event.NewApplicationSubmitted(
		id, profileID, organization, principal, tenorMonths, monthlyRepayment,
	))
	return rec, nil
}

// ReconstructApplicationRecord rebuilds an aggregate from persistence without
// side-effects.
func ReconstructApplicationRecord(
	id, profileID, applicantName, organization string,
	principal decimal.Decimal,
	tenorMonths int,
	interestRate, monthlyRepayment, totalRepayment decimal.Decimal,
	stage valueobject.PipelineStage,
	reviewTrail []ReviewNote,
	version int,
	createdAt, updatedAt time.Time,
) ApplicationRecord {
	return ApplicationRecord{
		id:               id,
		profileID:        profileID,
		applicantName:    applicantName,
		organization:     organization,
		principal:        principal,
		tenorMonths:      tenorMonths,
		interestRate:     interestRate,
		monthlyRepayment: monthlyRepayment,
		totalRepayment:   totalRepayment,
		stage:            stage,
		reviewTrail:      reviewTrail,
		version:          version,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// ---------------------------------------------------------------------------
// Stage guards
// ---------------------------------------------------------------------------

// RequireStage refuses an action when the record is not at the actor's
// permitted stage. Callers run this before any remote call so a stale console
// view fails fast without side effects.
func (r ApplicationRecord) RequireStage(stage valueobject.PipelineStage) error {
	if !r.stage.Equal(stage) {
		return valueobject.ErrStageMismatch
	}
	return nil
}

func requireNote(note string) error {
	if strings.TrimSpace(note) == "" {
		return valueobject.ErrNoteRequired
	}
	return nil
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// ReviewerApprove transitions REVIEWER -> AUTHORIZER. The step-up passcode
// check is the caller's responsibility and must have succeeded before this
// transition fires.
func (r ApplicationRecord) ReviewerApprove(actorID, note string, now time.Time) (ApplicationRecord, error) {
	if err := requireNote(note); err != nil {
		return r, err
	}
	if !r.stage.Equal(valueobject.PipelineStageReviewer) {
		return r, valueobject.ErrInvalidStageTransition
	}
	next := r.withTrailEntry(actorID, valueobject.ReviewDecisionApprove, note, now)
	next.stage = valueobject.PipelineStageAuthorizer
	next.domainEvents = append(next.domainEvents, event.NewReviewerApproved(r.id, actorID, note))
	return next, nil
}

// ReviewerReject transitions REVIEWER -> REJECTED.
func (r ApplicationRecord) ReviewerReject(actorID, note string, now time.Time) (ApplicationRecord, error) {
	if err := requireNote(note); err != nil {
		return r, err
	}
	if !r.stage.Equal(valueobject.PipelineStageReviewer) {
		return r, valueobject.ErrInvalidStageTransition
	}
	next := r.withTrailEntry(actorID, valueobject.ReviewDecisionReject, note, now)
	next.stage = valueobject.PipelineStageRejected
	next.domainEvents = append(next.domainEvents, event.NewReviewerRejected(r.id, actorID, note))
	return next, nil
}

// AuthorizerApprove transitions AUTHORIZER -> COMPLETED.
func (r ApplicationRecord) AuthorizerApprove(actorID, note string, now time.Time) (ApplicationRecord, error) {
	if err := requireNote(note); err != nil {
		return r, err
	}
	if !r.stage.Equal(valueobject.PipelineStageAuthorizer) {
		return r, valueobject.ErrInvalidStageTransition
	}
	next := r.withTrailEntry(actorID, valueobject.ReviewDecisionApprove, note, now)
	next.stage = valueobject.PipelineStageCompleted
	next.domainEvents = append(next.domainEvents, event.NewApplicationCompleted(r.id, actorID, note))
	return next, nil
}

// AuthorizerReject transitions AUTHORIZER -> REJECTED.
func (r ApplicationRecord) AuthorizerReject(actorID, note string, now time.Time) (ApplicationRecord, error) {
	if err := requireNote(note); err != nil {
		return r, err
	}
	if !r.stage.Equal(valueobject.PipelineStageAuthorizer) {
		return r, valueobject.ErrInvalidStageTransition
	}
	next := r.withTrailEntry(actorID, valueobject.ReviewDecisionReject, note, now)
	next.stage = valueobject.PipelineStageRejected
	next.domainEvents = append(next.domainEvents, event.NewAuthorizerRejected(r.id, actorID, note))
	return next, nil
}

// AuthorizerClose transitions AUTHORIZER -> CLOSED. Closing is only possible
// from the authorizer stage.
func (r ApplicationRecord) AuthorizerClose(actorID, note string, now time.Time) (ApplicationRecord, error) {
	if err := requireNote(note); err != nil {
		return r, err
	}
	if !r.stage.Equal(valueobject.PipelineStageAuthorizer) {
		return r, valueobject.ErrInvalidStageTransition
	}
	next := r.withTrailEntry(actorID, valueobject.ReviewDecisionClose, note, now)
	next.stage = valueobject.PipelineStageClosed
	next.domainEvents = append(next.domainEvents, event.NewApplicationClosed(r.id, actorID, note))
	return next, nil
}

// Resubmit transitions REJECTED -> REVIEWER with the edited terms and the
// recomputed repayment snapshot.
func (r ApplicationRecord) Resubmit(
	principal decimal.Decimal,
	tenorMonths int,
	interestRate, monthlyRepayment, totalRepayment decimal.Decimal,
	now time.Time,
) (ApplicationRecord, error) {
	if !r.stage.Equal(valueobject.PipelineStageRejected) {
		return r, valueobject.ErrInvalidStageTransition
	}
	if principal.LessThanOrEqual(decimal.Zero) {
		return r, errors.New("principal must be positive")
	}
	if tenorMonths <= 0 {
		return r, errors.New("tenor months must be positive")
	}
	next := r
	next.principal = principal
	next.tenorMonths = tenorMonths
	next.interestRate = interestRate
	next.monthlyRepayment = monthlyRepayment
	next.totalRepayment = totalRepayment
	next.stage = valueobject.PipelineStageReviewer
	next.updatedAt = now
	next.reviewTrail = copyTrail(r.reviewTrail)
	next.domainEvents = copyEvents(r.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationResubmitted(r.id, principal, tenorMonths))
	return next, nil
}

// withTrailEntry copies the aggregate and appends a decision trail entry.
func (r ApplicationRecord) withTrailEntry(
	actorID string,
	decision valueobject.ReviewDecision,
	note string,
	now time.Time,
) ApplicationRecord {
	next := r
	next.updatedAt = now
	next.reviewTrail = append(copyTrail(r.reviewTrail), ReviewNote{
		ActorID:  actorID,
		Stage:    r.stage,
		Decision: decision,
		Note:     note,
		At:       now,
	})
	next.domainEvents = copyEvents(r.domainEvents)
	return next
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (r ApplicationRecord) ID() string                          { return r.id }
func (r ApplicationRecord) ProfileID() string                   { return r.profileID }
func (r ApplicationRecord) ApplicantName() string               { return r.applicantName }
func (r ApplicationRecord) Organization() string                { return r.organization }
func (r ApplicationRecord) Principal() decimal.Decimal          { return r.principal }
func (r ApplicationRecord) TenorMonths() int                    { return r.tenorMonths }
func (r ApplicationRecord) InterestRate() decimal.Decimal       { return r.interestRate }
func (r ApplicationRecord) MonthlyRepayment() decimal.Decimal   { return r.monthlyRepayment }
func (r ApplicationRecord) TotalRepayment() decimal.Decimal     { return r.totalRepayment }
func (r ApplicationRecord) Stage() valueobject.PipelineStage    { return r.stage }
func (r ApplicationRecord) ReviewTrail() []ReviewNote           { return copyTrail(r.reviewTrail) }
func (r ApplicationRecord) Version() int                        { return r.version }
func (r ApplicationRecord) CreatedAt() time.Time                { return r.createdAt }
func (r ApplicationRecord) UpdatedAt() time.Time                { return r.updatedAt }
func (r ApplicationRecord) DomainEvents() []event.DomainEvent   { return r.domainEvents }

// ClearEvents returns a copy with an empty event list (call after publishing).
func (r ApplicationRecord) ClearEvents() ApplicationRecord {
	next := r
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}

func copyTrail(src []ReviewNote) []ReviewNote {
	if len(src) == 0 {
		return nil
	}
	dst := make([]ReviewNote, len(src))
	copy(dst, src)
	return dst
}
