package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/santaan/crm-api/internal/entity"
	"github.com/santaan/crm-api/internal/infra/queue"
)

type SubscribeNewsletterInput struct {
	Email string           `json:"email"`
	UTM   entity.UTMParams `json:"utm"`
}

type SubscribeNewsletterOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SubscribeNewsletterUseCase struct {
	Repo     ContactRepositoryInterface
	Producer EventProducerInterface
}

func NewSubscribeNewsletterUseCase(repo ContactRepositoryInterface, producer EventProducerInterface) *SubscribeNewsletterUseCase {
	return &SubscribeNewsletterUseCase{Repo: repo, Producer: producer}
}

const msgAlreadySubscribed = "You are already subscribed to our newsletter."

// Execute is idempotent on email: resubmitting a known address performs no
// write and reports already-subscribed.
func (uc *SubscribeNewsletterUseCase) Execute(ctx context.Context, input SubscribeNewsletterInput) (*SubscribeNewsletterOutput, error) {
	if isBlank(input.Email) {
		return nil, ValidationError{"email", "is required"}
	}

	email := entity.NormalizeEmail(input.Email)

	existing, err := uc.Repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, entity.ErrContactNotFound) {
		return nil, err
	}
	if existing != nil {
		return &SubscribeNewsletterOutput{Success: true, Message: msgAlreadySubscribed}, nil
	}

	contact := entity.NewContact("", email, "")
	contact.Role = "Newsletter"
	contact.NewsletterSubscribed = true
	contact.SeminarRegistered = false
	contact.UTM = input.UTM

	if err := uc.Repo.Create(ctx, contact); err != nil {
		// Two concurrent subscribes can both pass the existence check; the
		// unique index on email turns the loser into the duplicate case.
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return &SubscribeNewsletterOutput{Success: true, Message: msgAlreadySubscribed}, nil
		}
		return nil, err
	}

	uc.publishCaptured(ctx, contact)

	return &SubscribeNewsletterOutput{Success: true, Message: "Subscribed! Welcome to the Santaan newsletter."}, nil
}

func (uc *SubscribeNewsletterUseCase) publishCaptured(ctx context.Context, c *entity.Contact) {
	if uc.Producer == nil {
		return
	}
	payload := queue.ContactCapturedPayload{
		ContactID: c.ID,
		Email:     c.Email,
		Role:      c.Role,
		Source:    "newsletter",
	}
	if err := uc.Producer.PublishContactCaptured(ctx, payload); err != nil {
		// The event feeds the notifier; the subscription itself is already
		// persisted, so never fail the request over it.
		log.Printf("[newsletter] publish failed for contact %s: %v", c.ID, err)
	}
}
