package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/microlend/lending-console/internal/domain/model"
	"github.com/microlend/lending-console/internal/domain/port"
	"github.com/microlend/lending-console/internal/domain/valueobject"
)

// ApplicationRecordRepo implements port.ApplicationRecordRepository.
type ApplicationRecordRepo struct {
	pool *pgxpool.Pool
}

// NewApplicationRecordRepo creates a new repository backed by PostgreSQL.
func NewApplicationRecordRepo(pool *pgxpool.Pool) *ApplicationRecordRepo {
	return &ApplicationRecordRepo{pool: pool}
}

// trailEntry is the JSON shape of one review trail entry.
type trailEntry struct {
	ActorID  string    `json:"actor_id"`
	Stage    string    `json:"stage"`
	Decision string    `json:"decision"`
	Note     string    `json:"note"`
	At       time.Time `json:"at"`
}

// Save persists a record (upsert by ID with optimistic locking).
func (r *ApplicationRecordRepo) Save(ctx context.Context, rec model.ApplicationRecord) error {
	trail, err := marshalTrail(rec.ReviewTrail())
	if err != nil {
		return err
	}

	query := `
		INSERT INTO application_records (
			id, profile_id, applicant_name, organization, principal,
			tenor_months, interest_rate, monthly_repayment, total_repayment,
			stage, review_trail, version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		ON CONFLICT (id) DO UPDATE SET
			principal         = EXCLUDED.principal,
			tenor_months      = EXCLUDED.tenor_months,
			interest_rate     = EXCLUDED.interest_rate,
			monthly_repayment = EXCLUDED.monthly_repayment,
			total_repayment   = EXCLUDED.total_repayment,
			stage             = EXCLUDED.stage,
			review_trail      = EXCLUDED.review_trail,
			version           = application_records.version + 1,
			updated_at        = EXCLUDED.updated_at
		WHERE application_records.version = $12
	`
	tag, err := r.pool.Exec(ctx, query,
		rec.ID(), rec.ProfileID(), rec.ApplicantName(), rec.Organization(), rec.Principal(),
		rec.TenorMonths(), rec.InterestRate(), rec.MonthlyRepayment(), rec.TotalRepayment(),
		rec.Stage().String(), trail, rec.Version(), rec.CreatedAt(), rec.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save application record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on application record")
	}
	return nil
}

// FindByID retrieves a single record.
func (r *ApplicationRecordRepo) FindByID(ctx context.Context, id string) (model.ApplicationRecord, error) {
	query := selectRecords + ` WHERE id = $1`
	rec, err := scanRecord(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ApplicationRecord{}, port.ErrRecordNotFound
	}
	return rec, err
}

// FindByStage retrieves all records sitting at a pipeline stage.
func (r *ApplicationRecordRepo) FindByStage(ctx context.Context, stage valueobject.PipelineStage) ([]model.ApplicationRecord, error) {
	query := selectRecords + ` WHERE stage = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, stage.String())
	if err != nil {
		return nil, fmt.Errorf("query application records: %w", err)
	}
	defer rows.Close()

	var result []model.ApplicationRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

// ---------------------------------------------------------------------------
// scan helpers
// ---------------------------------------------------------------------------

const selectRecords = `
	SELECT id, profile_id, applicant_name, organization, principal,
	       tenor_months, interest_rate, monthly_repayment, total_repayment,
	       stage, review_trail, version, created_at, updated_at
	FROM application_records`

type scannable interface {
	Scan(dest ...any) error
}

func scanRecord(s scannable) (model.ApplicationRecord, error) {
	var (
		id, profileID, applicantName, organization  string
		principal, rate, monthly, total             decimal.Decimal
		tenorMonths, version                        int
		stageStr                                    string
		trailRaw                                    []byte
		createdAt, updatedAt                        time.Time
	)
	if err := s.Scan(
		&id, &profileID, &applicantName, &organization, &principal,
		&tenorMonths, &rate, &monthly, &total,
		&stageStr, &trailRaw, &version, &createdAt, &updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ApplicationRecord{}, err
		}
		return model.ApplicationRecord{}, fmt.Errorf("scan application record: %w", err)
	}

	stage, err := valueobject.NewPipelineStage(stageStr)
	if err != nil {
		return model.ApplicationRecord{}, fmt.Errorf("stored stage: %w", err)
	}
	trail, err := unmarshalTrail(trailRaw)
	if err != nil {
		return model.ApplicationRecord{}, err
	}

	return model.ReconstructApplicationRecord(
		id, profileID, applicantName, organization,
		principal, tenorMonths, rate, monthly, total,
		stage, trail, version, createdAt, updatedAt,
	), nil
}

func marshalTrail(trail []model.ReviewNote) ([]byte, error) {
	entries := make([]trailEntry, 0, len(trail))
	for _, n := range trail {
		entries = append(entries, trailEntry{
			ActorID:  n.ActorID,
			Stage:    n.Stage.String(),
			Decision: n.Decision.String(),
			Note:     n.Note,
			At:       n.At,
		})
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("marshal review trail: %w", err)
	}
	return raw, nil
}

func unmarshalTrail(raw []byte) ([]model.ReviewNote, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var entries []trailEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode review trail: %w", err)
	}
	trail := make([]model.ReviewNote, 0, len(entries))
	for _, e := range entries {
		stage, err := valueobject.NewPipelineStage(e.Stage)
		if err != nil {
			return nil, fmt.Errorf("stored trail stage: %w", err)
		}
		decision, err := valueobject.NewReviewDecision(e.Decision)
		if err != nil {
			return nil, fmt.Errorf("stored trail decision: %w", err)
		}
		trail = append(trail, model.ReviewNote{
			ActorID:  e.ActorID,
			Stage:    stage,
			Decision: decision,
			Note:     e.Note,
			At:       e.At,
		})
	}
	return trail, nil
}
