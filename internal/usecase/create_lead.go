package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/pixelforge/studio-api/internal/entity"
	"github.com/pixelforge/studio-api/internal/infra/queue"
	"github.com/pixelforge/studio-api/internal/infra/sheets"
)

type CreateLeadInput struct {
	FullName           string `json:"fullName"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	BusinessName       string `json:"businessName"`
	ServiceInterest    string `json:"serviceInterest"`
	Budget             string `json:"budget"`
	ProjectDescription string `json:"projectDescription"`
	ReferralSource     string `json:"referralSource"`
	SubmittedAt        string `json:"submittedAt"`
}

type CreateLeadUseCase struct {
	Store  LeadStore
	Events LeadEventPublisher // nil when the broker is not configured

	now func() time.Time
}

func NewCreateLeadUseCase(store LeadStore, events LeadEventPublisher) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		Store:  store,
		Events: events,
		now:    time.Now,
	}
}

// Execute validates, resolves form codes to display labels, appends one row
// and returns the new lead. Id generation does not depend on prior state, so
// unlike the other mutations there is no read before the write.
func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, errs
	}

	submittedAt := input.SubmittedAt
	if submittedAt == "" {
		submittedAt = uc.now().UTC().Format(time.RFC3339)
	}

	lead := &entity.Lead{
		ID:                 NewLeadID(),
		SubmittedAt:        submittedAt,
		FullName:           input.FullName,
		Email:              input.Email,
		Phone:              input.Phone,
		BusinessName:       input.BusinessName,
		ServiceInterest:    entity.ResolveLabel(entity.ServiceLabels, input.ServiceInterest),
		Budget:             entity.ResolveLabel(entity.BudgetLabels, input.Budget),
		ProjectDescription: input.ProjectDescription,
		ReferralSource:     entity.ResolveLabel(entity.ReferralLabels, input.ReferralSource),
		Status:             entity.StatusNew,
		Notes:              []string{},
	}

	if err := uc.Store.AppendRow(ctx, sheets.RowFromLead(lead)); err != nil {
		return nil, &BackendError{Op: "append", Err: err}
	}

	// The row is committed; a failed notification must not turn the response
	// into a failure.
	if uc.Events != nil {
		payload := queue.LeadCapturedPayload{
			EventID:         uuid.New().String(),
			LeadID:          lead.ID,
			FullName:        lead.FullName,
			Email:           lead.Email,
			Phone:           lead.Phone,
			ServiceInterest: lead.ServiceInterest,
			SubmittedAt:     lead.SubmittedAt,
		}
		if err := uc.Events.PublishLeadCaptured(ctx, payload); err != nil {
			log.Printf("lead %s captured but notification publish failed: %v", lead.ID, err)
		}
	}

	return lead, nil
}
