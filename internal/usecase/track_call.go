package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/santaan/crm-api/internal/entity"
)

type TrackCallInput struct {
	Intent      string `json:"intent"`
	Phone       string `json:"phone"`
	UTMSource   string `json:"utmSource"`
	UTMMedium   string `json:"utmMedium"`
	UTMCampaign string `json:"utmCampaign"`
}

type TrackCallOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PlaceholderPhone is stored when the caller supplied no number.
const PlaceholderPhone = "0000000000"

type TrackCallUseCase struct {
	Repo ContactRepositoryInterface

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

func NewTrackCallUseCase(repo ContactRepositoryInterface) *TrackCallUseCase {
	return &TrackCallUseCase{Repo: repo, now: time.Now}
}

// Execute records a call-button click. Nothing is required of the caller:
// the email is synthesized from the capture timestamp so the row carries a
// storable address without impersonating a real contact.
func (uc *TrackCallUseCase) Execute(ctx context.Context, input TrackCallInput) (*TrackCallOutput, error) {
	now := uc.now()
	millis := now.UnixMilli()

	intent := input.Intent
	if intent == "" {
		intent = "call_click"
	}
	phone := input.Phone
	if phone == "" {
		phone = PlaceholderPhone
	}

	contact := entity.NewContact("", fmt.Sprintf("caller+%d@placeholder.santaan.com", millis), phone)
	contact.Role = "CallIntent"
	contact.Message = fmt.Sprintf("Call intent tracked: %s", intent)
	contact.SubmittedAt = millis
	contact.UTM = entity.UTMParams{
		Source:   input.UTMSource,
		Medium:   input.UTMMedium,
		Campaign: input.UTMCampaign,
	}

	if err := uc.Repo.Create(ctx, contact); err != nil {
		return nil, err
	}

	return &TrackCallOutput{Success: true, Message: "Call intent recorded."}, nil
}
