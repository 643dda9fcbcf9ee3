package usecase

import (
	"context"
	"log"

	"github.com/santaan/crm-api/internal/entity"
	"github.com/santaan/crm-api/internal/infra/queue"
)

type RegisterSeminarInput struct {
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Phone    string           `json:"phone"`
	Question string           `json:"question"`
	Score    *int             `json:"score"`
	Signal   string           `json:"signal"`
	UTM      entity.UTMParams `json:"utm"`
}

type RegisterSeminarOutput struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Contact *entity.Contact `json:"contact"`
}

type RegisterSeminarUseCase struct {
	Repo     ContactRepositoryInterface
	Producer EventProducerInterface
}

func NewRegisterSeminarUseCase(repo ContactRepositoryInterface, producer EventProducerInterface) *RegisterSeminarUseCase {
	return &RegisterSeminarUseCase{Repo: repo, Producer: producer}
}

// Execute creates a row per submission. Seminar registrations are not
// deduplicated: the same person registering twice is two registrations.
// Only presence of name and email is validated; everything else is carried
// through verbatim.
func (uc *RegisterSeminarUseCase) Execute(ctx context.Context, input RegisterSeminarInput) (*RegisterSeminarOutput, error) {
	if isBlank(input.Name) {
		return nil, ValidationError{"name", "is required"}
	}
	if isBlank(input.Email) {
		return nil, ValidationError{"email", "is required"}
	}

	contact := entity.NewContact(input.Name, input.Email, input.Phone)
	contact.Role = "Lead"
	contact.SeminarRegistered = true
	contact.SeminarScore = input.Score
	contact.SeminarSignal = input.Signal
	contact.SeminarQuestion = input.Question
	contact.UTM = input.UTM

	if err := uc.Repo.Create(ctx, contact); err != nil {
		return nil, err
	}

	if uc.Producer != nil {
		payload := queue.ContactCapturedPayload{
			ContactID: contact.ID,
			Name:      contact.Name,
			Email:     contact.Email,
			Phone:     contact.Phone,
			Role:      contact.Role,
			Source:    "seminar",
			Question:  contact.SeminarQuestion,
		}
		if err := uc.Producer.PublishContactCaptured(ctx, payload); err != nil {
			log.Printf("[seminar] publish failed for contact %s: %v", contact.ID, err)
		}
	}

	return &RegisterSeminarOutput{
		Success: true,
		Message: "Registered! We will see you at the seminar.",
		Contact: contact,
	}, nil
}
