package usecase

import (
	"context"
	"strings"

	"github.com/pixelforge/studio-api/internal/infra/sheets"
)

type UpdateStatusUseCase struct {
	Store LeadStore
}

func NewUpdateStatusUseCase(store LeadStore) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{Store: store}
}

// Execute writes the status cell of the matching row. Status is an open
// vocabulary; any non-empty string is accepted. Re-applying the current
// status is a no-op that still succeeds. No history is kept; notes are the
// only append log.
func (uc *UpdateStatusUseCase) Execute(ctx context.Context, id, status string) error {
	if strings.TrimSpace(status) == "" {
		return ValidationErrors{{Field: "status", Message: "is required"}}
	}

	rows, err := uc.Store.ReadAll(ctx)
	if err != nil {
		return &BackendError{Op: "read", Err: err}
	}

	rowPos, _, found := sheets.FindRowByID(rows, id)
	if !found {
		return &NotFoundError{ID: id}
	}

	if err := uc.Store.WriteCell(ctx, rowPos, sheets.ColStatus, status); err != nil {
		return &BackendError{Op: "update", Err: err}
	}

	return nil
}
