package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// StepUpChallenge
// ---------------------------------------------------------------------------

// StepUpChallenge is the server-issued, single-use token gating a reviewer
// approval. It is created when the reviewer initiates an approve, stored with
// a TTL, and consumed exactly once by the passcode verification call. The
// pending note travels with the challenge so the transition that follows a
// successful passcode check uses exactly what the reviewer confirmed.
type StepUpChallenge struct {
	Token      string    `json:"token"`
	RecordID   string    `json:"record_id"`
	ProfileID  string    `json:"profile_id"`
	ReviewerID string    `json:"reviewer_id"`
	Note       string    `json:"note"`
	IssuedAt   time.Time `json:"issued_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// NewStepUpChallenge issues a challenge for the given record and reviewer.
func NewStepUpChallenge(recordID, profileID, reviewerID, note string, ttl time.Duration, now time.Time) (StepUpChallenge, error) {
	if recordID == "" {
		return StepUpChallenge{}, errors.New("record ID is required")
	}
	if reviewerID == "" {
		return StepUpChallenge{}, errors.New("reviewer ID is required")
	}
	if ttl <= 0 {
		return StepUpChallenge{}, errors.New("challenge TTL must be positive")
	}
	return StepUpChallenge{
		Token:      uuid.New().String(),
		RecordID:   recordID,
		ProfileID:  profileID,
		ReviewerID: reviewerID,
		Note:       note,
		IssuedAt:   now,
		ExpiresAt:  now.Add(ttl),
	}, nil
}

// Expired reports whether the challenge is past its TTL.
func (c StepUpChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
