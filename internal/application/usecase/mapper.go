package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/microlend/lending-console/internal/application/dto"
	"github.com/microlend/lending-console/internal/domain/model"
	"github.com/microlend/lending-console/internal/domain/port"
)

func toRecordResponse(rec model.ApplicationRecord) dto.ApplicationRecordResponse {
	trail := make([]dto.ReviewNoteResponse, 0, len(rec.ReviewTrail()))
	for _, n := range rec.ReviewTrail() {
		trail = append(trail, dto.ReviewNoteResponse{
			ActorID:  n.ActorID,
			Stage:    n.Stage.String(),
			Decision: n.Decision.String(),
			Note:     n.Note,
			At:       n.At,
		})
	}
	return dto.ApplicationRecordResponse{
		ID:               rec.ID(),
		ProfileID:        rec.ProfileID(),
		ApplicantName:    rec.ApplicantName(),
		Organization:     rec.Organization(),
		Principal:        rec.Principal(),
		TenorMonths:      rec.TenorMonths(),
		InterestRate:     rec.InterestRate(),
		MonthlyRepayment: rec.MonthlyRepayment(),
		TotalRepayment:   rec.TotalRepayment(),
		Stage:            rec.Stage().String(),
		ReviewTrail:      trail,
		CreatedAt:        rec.CreatedAt(),
		UpdatedAt:        rec.UpdatedAt(),
	}
}

// putDraftJSON marshals a value into one wizard key.
func putDraftJSON(ctx context.Context, store port.DraftStore, sessionID string, key port.DraftKey, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal draft key %s: %w", key, err)
	}
	if err := store.Put(ctx, sessionID, key, raw); err != nil {
		return fmt.Errorf("store draft key %s: %w", key, err)
	}
	return nil
}

// getDraftJSON unmarshals one wizard key into out. Returns found=false when
// the session holds no value for the key.
func getDraftJSON(ctx context.Context, store port.DraftStore, sessionID string, key port.DraftKey, out any) (bool, error) {
	raw, err := store.Get(ctx, sessionID, key)
	if errors.Is(err, port.ErrDraftKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load draft key %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode draft key %s: %w", key, err)
	}
	return true, nil
}
