package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microlend/lending-console/internal/domain/model"
	"github.com/microlend/lending-console/internal/domain/valueobject"
)

func newTestRecord(t *testing.T) model.ApplicationRecord {
	t.Helper()
	rec, err := model.NewApplicationRecord(
		"profile-1", "Ada Obi", "ACME LTD",
		decimal.NewFromInt(100_000), 12,
		decimal.NewFromFloat(5.0),
		decimal.NewFromFloat(13333.33),
		decimal.NewFromFloat(160000.00),
		time.Now(),
	)
	require.NoError(t, err)
	return rec
}

func TestNewApplicationRecord_StartsAtReviewerWithSubmittedEvent(t *testing.T) {
	rec := newTestRecord(t)

	assert.True(t, rec.Stage().Equal(valueobject.PipelineStageReviewer))
	require.Len(t, rec.DomainEvents(), 1)
	assert.Equal(t, "console.application.submitted", rec.DomainEvents()[0].EventType())
}

func TestApplicationRecord_FullApprovalPath(t *testing.T) {
	now := time.Now()
	rec := newTestRecord(t).ClearEvents()

	afterReview, err := rec.ReviewerApprove("reviewer-1", "documents in order", now)
	require.NoError(t, err)
	assert.True(t, afterReview.Stage().Equal(valueobject.PipelineStageAuthorizer))

	done, err := afterReview.AuthorizerApprove("authorizer-1", "final sign-off", now)
	require.NoError(t, err)
	assert.True(t, done.Stage().Equal(valueobject.PipelineStageCompleted))
	assert.True(t, done.Stage().IsTerminal())

	require.Len(t, done.ReviewTrail(), 2)
	assert.Equal(t, "reviewer-1", done.ReviewTrail()[0].ActorID)
	assert.Equal(t, "authorizer-1", done.ReviewTrail()[1].ActorID)
}

func TestApplicationRecord_TransitionsAreCopies(t *testing.T) {
	now := time.Now()
	rec := newTestRecord(t)

	next, err := rec.ReviewerApprove("reviewer-1", "ok", now)
	require.NoError(t, err)

	assert.True(t, rec.Stage().Equal(valueobject.PipelineStageReviewer), "original must be untouched")
	assert.True(t, next.Stage().Equal(valueobject.PipelineStageAuthorizer))
}

func TestApplicationRecord_EmptyNoteRejectedBeforeStageCheck(t *testing.T) {
	now := time.Now()
	rec := newTestRecord(t)

	for _, note := range []string{"", "   ", "\t"} {
		_, err := rec.ReviewerApprove("reviewer-1", note, now)
		assert.ErrorIs(t, err, valueobject.ErrNoteRequired)

		_, err = rec.ReviewerReject("reviewer-1", note, now)
		assert.ErrorIs(t, err, valueobject.ErrNoteRequired)
	}
}

func TestApplicationRecord_CloseOnlyFromAuthorizer(t *testing.T) {
	now := time.Now()
	rec := newTestRecord(t)

	_, err := rec.AuthorizerClose("authorizer-1", "duplicate request", now)
	assert.ErrorIs(t, err, valueobject.ErrInvalidStageTransition)

	atAuthorizer, err := rec.ReviewerApprove("reviewer-1", "ok", now)
	require.NoError(t, err)

	closed, err := atAuthorizer.AuthorizerClose("authorizer-1", "duplicate request", now)
	require.NoError(t, err)
	assert.True(t, closed.Stage().Equal(valueobject.PipelineStageClosed))
	assert.True(t, closed.Stage().IsTerminal())
}

func TestApplicationRecord_NoTransitionsFromTerminalStages(t *testing.T) {
	now := time.Now()
	rec := newTestRecord(t)

	atAuthorizer, err := rec.ReviewerApprove("reviewer-1", "ok", now)
	require.NoError(t, err)
	completed, err := atAuthorizer.AuthorizerApprove("authorizer-1", "ok", now)
	require.NoError(t, err)

	_, err = completed.ReviewerApprove("reviewer-1", "again", now)
	assert.ErrorIs(t, err, valueobject.ErrInvalidStageTransition)
	_, err = completed.AuthorizerReject("authorizer-1", "again", now)
	assert.ErrorIs(t, err, valueobject.ErrInvalidStageTransition)
	_, err = completed.AuthorizerClose("authorizer-1", "again", now)
	assert.ErrorIs(t, err, valueobject.ErrInvalidStageTransition)
}

func TestApplicationRecord_ResubmitReturnsRejectedToReviewer(t *testing.T) {
	now := time.Now()
	rec := newTestRecord(t)

	rejected, err := rec.ReviewerReject("reviewer-1", "net pay too low", now)
	require.NoError(t, err)
	assert.True(t, rejected.Stage().Equal(valueobject.PipelineStageRejected))

	resubmitted, err := rejected.Resubmit(
		decimal.NewFromInt(60_000), 6,
		decimal.NewFromFloat(5.0),
		decimal.NewFromFloat(13000),
		decimal.NewFromFloat(78000),
		now,
	)
	require.NoError(t, err)
	assert.True(t, resubmitted.Stage().Equal(valueobject.PipelineStageReviewer))
	assert.Equal(t, "60000", resubmitted.Principal().String())
	assert.Equal(t, 6, resubmitted.TenorMonths())
}

func TestApplicationRecord_ResubmitRequiresRejectedStage(t *testing.T) {
	rec := newTestRecord(t)

	_, err := rec.Resubmit(
		decimal.NewFromInt(60_000), 6,
		decimal.NewFromFloat(5.0), decimal.NewFromFloat(1), decimal.NewFromFloat(6),
		time.Now(),
	)
	assert.ErrorIs(t, err, valueobject.ErrInvalidStageTransition)
}

func TestApplicationRecord_RequireStage(t *testing.T) {
	rec := newTestRecord(t)

	assert.NoError(t, rec.RequireStage(valueobject.PipelineStageReviewer))
	assert.ErrorIs(t, rec.RequireStage(valueobject.PipelineStageAuthorizer), valueobject.ErrStageMismatch)
}
