package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// PipelineStage – immutable value object
// ---------------------------------------------------------------------------

// PipelineStage represents where a submitted application sits in the staff
// approval pipeline.
type PipelineStage struct {
	value string
}

const (
	pipelineStageReviewer   = "REVIEWER"
	pipelineStageAuthorizer = "AUTHORIZER"
	pipelineStageSupervisor = "SUPERVISOR"
	pipelineStageCompleted  = "COMPLETED"
	pipelineStageRejected   = "REJECTED"
	pipelineStageClosed     = "CLOSED"
)

var (
	PipelineStageReviewer   = PipelineStage{value: pipelineStageReviewer}
	PipelineStageAuthorizer = PipelineStage{value: pipelineStageAuthorizer}
	// PipelineStageSupervisor exists only so records written by the retired
	// supervisor flow still parse. No transition targets or leaves it.
	PipelineStageSupervisor = PipelineStage{value: pipelineStageSupervisor}
	PipelineStageCompleted  = PipelineStage{value: pipelineStageCompleted}
	PipelineStageRejected   = PipelineStage{value: pipelineStageRejected}
	PipelineStageClosed     = PipelineStage{value: pipelineStageClosed}
)

var validPipelineStages = map[string]PipelineStage{
	pipelineStageReviewer:   PipelineStageReviewer,
	pipelineStageAuthorizer: PipelineStageAuthorizer,
	pipelineStageSupervisor: PipelineStageSupervisor,
	pipelineStageCompleted:  PipelineStageCompleted,
	pipelineStageRejected:   PipelineStageRejected,
	pipelineStageClosed:     PipelineStageClosed,
}

// NewPipelineStage creates a PipelineStage from a raw string.
func NewPipelineStage(s string) (PipelineStage, error) {
	v, ok := validPipelineStages[s]
	if !ok {
		return PipelineStage{}, fmt.Errorf("invalid pipeline stage: %q", s)
	}
	return v, nil
}

// String returns the string representation of the stage.
func (s PipelineStage) String() string { return s.value }

// IsZero returns true if the stage has not been initialised.
func (s PipelineStage) IsZero() bool { return s.value == "" }

// Equal returns true when both stages carry the same value.
func (s PipelineStage) Equal(other PipelineStage) bool { return s.value == other.value }

// IsTerminal reports whether no further transitions are possible.
func (s PipelineStage) IsTerminal() bool {
	switch s.value {
	case pipelineStageCompleted, pipelineStageClosed:
		return true
	default:
		return false
	}
}

// ---------------------------------------------------------------------------
// ReviewDecision – immutable value object
// ---------------------------------------------------------------------------

// ReviewDecision is the action a staff member takes on a record at their stage.
type ReviewDecision struct {
	value string
}

const (
	decisionApprove = "APPROVE"
	decisionReject  = "REJECT"
	decisionClose   = "CLOSE"
)

var (
	ReviewDecisionApprove = ReviewDecision{value: decisionApprove}
	ReviewDecisionReject  = ReviewDecision{value: decisionReject}
	ReviewDecisionClose   = ReviewDecision{value: decisionClose}
)

// NewReviewDecision creates a ReviewDecision from a raw string.
func NewReviewDecision(s string) (ReviewDecision, error) {
	switch s {
	case decisionApprove:
		return ReviewDecisionApprove, nil
	case decisionReject:
		return ReviewDecisionReject, nil
	case decisionClose:
		return ReviewDecisionClose, nil
	default:
		return ReviewDecision{}, fmt.Errorf("invalid review decision: %q", s)
	}
}

// String returns the string representation of the decision.
func (d ReviewDecision) String() string { return d.value }

// Equal returns true when both decisions carry the same value.
func (d ReviewDecision) Equal(other ReviewDecision) bool { return d.value == other.value }

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	ErrInvalidStageTransition = errors.New("invalid stage transition")
	ErrNoteRequired           = errors.New("a non-empty note is required")
	ErrStageMismatch          = errors.New("record is not at the actor's permitted stage")
)
