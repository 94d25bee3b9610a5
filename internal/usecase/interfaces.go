package usecase

import (
	"context"

	"github.com/pixelforge/studio-api/internal/infra/queue"
)

// LeadStore is the row-store adapter surface every operation runs on: one
// full-range read, one narrow write. There is no transaction and no
// optimistic-concurrency token; each operation is a fresh read-decide-write
// cycle and the read-then-write window is unprotected. Two concurrent writes
// to the same lead race and the later one wins silently.
type LeadStore interface {
	ReadAll(ctx context.Context) ([][]string, error)
	AppendRow(ctx context.Context, values []string) error
	WriteCell(ctx context.Context, rowPos, col int, value string) error
}

// LeadEventPublisher pushes the lead-captured event that feeds the
// notification worker. Publishing is best-effort; the row is already written
// when it runs.
type LeadEventPublisher interface {
	PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error
}
