package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/santaan/crm-api/internal/entity"
	"github.com/santaan/crm-api/internal/usecase"
)

func newsletterRequest(body string) (*httptest.ResponseRecorder, *http.Request) {
	req := httptest.NewRequest("POST", "/newsletter/subscribe", bytes.NewReader([]byte(body)))
	return httptest.NewRecorder(), req
}

func TestNewsletterSubscribeSuccess(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("FindByEmail", mock.Anything, "a@foo.com").Return(nil, entity.ErrContactNotFound)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Contact) bool {
		return c.Email == "a@foo.com" && c.Role == "Newsletter"
	})).Return(nil)

	uc := usecase.NewSubscribeNewsletterUseCase(mockRepo, nil)
	handler := NewNewsletterHandler(uc, NewRateLimiter(100, time.Minute))

	w, req := newsletterRequest(`{"email":"A@Foo.com","utm":{"source":"google"}}`)
	handler.Subscribe(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response usecase.SubscribeNewsletterOutput
	json.NewDecoder(w.Body).Decode(&response)
	assert.True(t, response.Success)
	mockRepo.AssertExpectations(t)
}

func TestNewsletterSubscribeDuplicate(t *testing.T) {
	existing := entity.NewContact("", "a@foo.com", "")

	mockRepo := new(MockContactRepository)
	mockRepo.On("FindByEmail", mock.Anything, "a@foo.com").Return(existing, nil)

	uc := usecase.NewSubscribeNewsletterUseCase(mockRepo, nil)
	handler := NewNewsletterHandler(uc, NewRateLimiter(100, time.Minute))

	w, req := newsletterRequest(`{"email":"a@foo.com "}`)
	handler.Subscribe(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response usecase.SubscribeNewsletterOutput
	json.NewDecoder(w.Body).Decode(&response)
	assert.True(t, response.Success)
	assert.Contains(t, response.Message, "already subscribed")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestNewsletterSubscribeInvalidJSON(t *testing.T) {
	uc := usecase.NewSubscribeNewsletterUseCase(new(MockContactRepository), nil)
	handler := NewNewsletterHandler(uc, NewRateLimiter(100, time.Minute))

	w, req := newsletterRequest(`not json`)
	handler.Subscribe(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNewsletterSubscribeBlankEmail(t *testing.T) {
	mockRepo := new(MockContactRepository)
	uc := usecase.NewSubscribeNewsletterUseCase(mockRepo, nil)
	handler := NewNewsletterHandler(uc, NewRateLimiter(100, time.Minute))

	w, req := newsletterRequest(`{"email":""}`)
	handler.Subscribe(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestNewsletterSubscribePersistenceFailure(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, entity.ErrContactNotFound)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("pq: deadlock detected"))

	uc := usecase.NewSubscribeNewsletterUseCase(mockRepo, nil)
	handler := NewNewsletterHandler(uc, NewRateLimiter(100, time.Minute))

	w, req := newsletterRequest(`{"email":"a@foo.com"}`)
	handler.Subscribe(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// Internal detail stays server-side.
	var errResponse map[string]string
	json.NewDecoder(w.Body).Decode(&errResponse)
	assert.NotContains(t, errResponse["error"], "pq:")
}

func TestNewsletterSubscribeRateLimited(t *testing.T) {
	uc := usecase.NewSubscribeNewsletterUseCase(new(MockContactRepository), nil)
	handler := NewNewsletterHandler(uc, NewRateLimiter(0, time.Minute))

	w, req := newsletterRequest(`{"email":"a@foo.com"}`)
	req.Header.Set("X-Forwarded-For", "10.0.0.1")
	handler.Subscribe(w, req)
	w, req = newsletterRequest(`{"email":"a@foo.com"}`)
	req.Header.Set("X-Forwarded-For", "10.0.0.1")
	handler.Subscribe(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
