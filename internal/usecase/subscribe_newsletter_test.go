package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/santaan/crm-api/internal/entity"
)

func TestSubscribeNewsletterNewEmail(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("FindByEmail", mock.Anything, "a@foo.com").Return(nil, entity.ErrContactNotFound)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Contact) bool {
		return c.Email == "a@foo.com" &&
			c.Role == "Newsletter" &&
			c.Status == "New" &&
			c.NewsletterSubscribed &&
			!c.SeminarRegistered
	})).Return(nil)

	uc := NewSubscribeNewsletterUseCase(mockRepo, nil)

	output, err := uc.Execute(context.Background(), SubscribeNewsletterInput{
		Email: "A@Foo.com",
		UTM:   entity.UTMParams{Source: "google", Campaign: "ivf-awareness"},
	})

	assert.NoError(t, err)
	assert.True(t, output.Success)
	mockRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestSubscribeNewsletterDuplicateEmailIsIdempotent(t *testing.T) {
	existing := entity.NewContact("", "a@foo.com", "")
	existing.Role = "Newsletter"

	mockRepo := new(MockContactRepository)
	mockRepo.On("FindByEmail", mock.Anything, "a@foo.com").Return(existing, nil)

	uc := NewSubscribeNewsletterUseCase(mockRepo, nil)

	// Whitespace and case differences still hit the same row.
	output, err := uc.Execute(context.Background(), SubscribeNewsletterInput{Email: "a@foo.com "})

	assert.NoError(t, err)
	assert.True(t, output.Success)
	assert.Equal(t, msgAlreadySubscribed, output.Message)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestSubscribeNewsletterBlankEmail(t *testing.T) {
	mockRepo := new(MockContactRepository)
	uc := NewSubscribeNewsletterUseCase(mockRepo, nil)

	_, err := uc.Execute(context.Background(), SubscribeNewsletterInput{Email: "   "})

	assert.Error(t, err)
	assert.True(t, IsValidationError(err))
	mockRepo.AssertNotCalled(t, "FindByEmail")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestSubscribeNewsletterLostInsertRaceReadsAsDuplicate(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("FindByEmail", mock.Anything, "a@foo.com").Return(nil, entity.ErrContactNotFound)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(entity.ErrEmailAlreadyExists)

	uc := NewSubscribeNewsletterUseCase(mockRepo, nil)

	output, err := uc.Execute(context.Background(), SubscribeNewsletterInput{Email: "a@foo.com"})

	assert.NoError(t, err)
	assert.True(t, output.Success)
	assert.Equal(t, msgAlreadySubscribed, output.Message)
}

func TestSubscribeNewsletterRepoFailure(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("FindByEmail", mock.Anything, "a@foo.com").Return(nil, errors.New("connection refused"))

	uc := NewSubscribeNewsletterUseCase(mockRepo, nil)

	_, err := uc.Execute(context.Background(), SubscribeNewsletterInput{Email: "a@foo.com"})

	assert.Error(t, err)
	assert.False(t, IsValidationError(err))
}

func TestSubscribeNewsletterPublishFailureDoesNotFailRequest(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("FindByEmail", mock.Anything, "a@foo.com").Return(nil, entity.ErrContactNotFound)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	mockProducer := new(MockEventProducer)
	mockProducer.On("PublishContactCaptured", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	uc := NewSubscribeNewsletterUseCase(mockRepo, mockProducer)

	output, err := uc.Execute(context.Background(), SubscribeNewsletterInput{Email: "a@foo.com"})

	assert.NoError(t, err)
	assert.True(t, output.Success)
}
