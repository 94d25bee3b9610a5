package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pixelforge/studio-api/internal/infra/sheets"
)

func statusFixture() [][]string {
	return [][]string{
		{"id", "submittedAt", "fullName", "email"},
		{"LEAD-1", "2026-08-01T10:00:00Z", "Ann", "ann@x.com", "", "", "", "", "", "", "New Lead"},
		{"LEAD-2", "2026-08-02T10:00:00Z", "Bob", "bob@x.com", "", "", "", "", "", "", "Contacted"},
	}
}

func TestUpdateStatusWritesStatusCellOnly(t *testing.T) {
	store := new(MockLeadStore)
	store.On("ReadAll", mock.Anything).Return(statusFixture(), nil)
	store.On("WriteCell", mock.Anything, 3, sheets.ColStatus, "Qualified").Return(nil)

	err := NewUpdateStatusUseCase(store).Execute(context.Background(), "LEAD-2", "Qualified")
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestUpdateStatusIdempotent(t *testing.T) {
	store := new(MockLeadStore)
	store.On("ReadAll", mock.Anything).Return(statusFixture(), nil)
	store.On("WriteCell", mock.Anything, 3, sheets.ColStatus, "Contacted").Return(nil)

	// Re-applying the current status still succeeds.
	err := NewUpdateStatusUseCase(store).Execute(context.Background(), "LEAD-2", "Contacted")
	assert.NoError(t, err)
}

func TestUpdateStatusNotFoundWritesNothing(t *testing.T) {
	store := new(MockLeadStore)
	store.On("ReadAll", mock.Anything).Return(statusFixture(), nil)

	err := NewUpdateStatusUseCase(store).Execute(context.Background(), "LEAD-404", "Contacted")
	assert.True(t, IsNotFound(err))
	store.AssertNotCalled(t, "WriteCell", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatusRejectsEmptyStatus(t *testing.T) {
	store := new(MockLeadStore)

	err := NewUpdateStatusUseCase(store).Execute(context.Background(), "LEAD-1", "  ")
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	store.AssertNotCalled(t, "ReadAll", mock.Anything)
}

func TestUpdateStatusBackendFailures(t *testing.T) {
	store := new(MockLeadStore)
	store.On("ReadAll", mock.Anything).Return(nil, errors.New("unreachable"))
	err := NewUpdateStatusUseCase(store).Execute(context.Background(), "LEAD-1", "Contacted")
	assert.True(t, IsBackendError(err))

	store = new(MockLeadStore)
	store.On("ReadAll", mock.Anything).Return(statusFixture(), nil)
	store.On("WriteCell", mock.Anything, 2, sheets.ColStatus, "Contacted").Return(errors.New("write denied"))
	err = NewUpdateStatusUseCase(store).Execute(context.Background(), "LEAD-1", "Contacted")
	assert.True(t, IsBackendError(err))
}
