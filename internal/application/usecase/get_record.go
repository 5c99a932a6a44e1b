package usecase

import (
	"context"
	"fmt"

	"github.com/microlend/lending-console/internal/application/dto"
	"github.com/microlend/lending-console/internal/domain/port"
	"github.com/microlend/lending-console/internal/domain/valueobject"
)

// GetRecordUseCase retrieves a single pipeline record.
type GetRecordUseCase struct {
	records port.ApplicationRecordRepository
}

// NewGetRecordUseCase wires dependencies.
func NewGetRecordUseCase(records port.ApplicationRecordRepository) *GetRecordUseCase {
	return &GetRecordUseCase{records: records}
}

// Execute loads the record by ID.
func (uc *GetRecordUseCase) Execute(
	ctx context.Context,
	req dto.GetRecordRequest,
) (dto.ApplicationRecordResponse, error) {
	rec, err := uc.records.FindByID(ctx, req.RecordID)
	if err != nil {
		return dto.ApplicationRecordResponse{}, fmt.Errorf("load record: %w", err)
	}
	return toRecordResponse(rec), nil
}

// ListRecordsByStageUseCase lists the records sitting at a pipeline stage,
// backing the console's work queues.
type ListRecordsByStageUseCase struct {
	records port.ApplicationRecordRepository
}

// NewListRecordsByStageUseCase wires dependencies.
func NewListRecordsByStageUseCase(records port.ApplicationRecordRepository) *ListRecordsByStageUseCase {
	return &ListRecordsByStageUseCase{records: records}
}

// Execute lists records at the given stage.
func (uc *ListRecordsByStageUseCase) Execute(
	ctx context.Context,
	req dto.ListRecordsByStageRequest,
) ([]dto.ApplicationRecordResponse, error) {
	stage, err := valueobject.NewPipelineStage(req.Stage)
	if err != nil {
		return nil, err
	}
	recs, err := uc.records.FindByStage(ctx, stage)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	out := make([]dto.ApplicationRecordResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toRecordResponse(rec))
	}
	return out, nil
}
