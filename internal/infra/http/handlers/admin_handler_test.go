package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/santaan/crm-api/internal/entity"
)

func TestAdminListContacts(t *testing.T) {
	contacts := []*entity.Contact{
		entity.NewContact("Asha Rao", "asha@example.com", "9876543210"),
		entity.NewContact("", "b@foo.com", ""),
	}

	mockRepo := new(MockContactRepository)
	mockRepo.On("List", mock.Anything, 25, 0).Return(contacts, nil)

	handler := NewAdminHandler(mockRepo)

	req := httptest.NewRequest("GET", "/admin/contacts?limit=25", nil)
	w := httptest.NewRecorder()

	handler.ListContacts(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Contacts []*entity.Contact `json:"contacts"`
		Limit    int               `json:"limit"`
	}
	json.NewDecoder(w.Body).Decode(&response)
	assert.Len(t, response.Contacts, 2)
	assert.Equal(t, 25, response.Limit)
}

func TestAdminListContactsClampsLimit(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("List", mock.Anything, 200, 0).Return([]*entity.Contact{}, nil)

	handler := NewAdminHandler(mockRepo)

	req := httptest.NewRequest("GET", "/admin/contacts?limit=9999", nil)
	w := httptest.NewRecorder()

	handler.ListContacts(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestAdminStats(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("CountByRole", mock.Anything).Return(map[string]int{
		"Newsletter": 12,
		"Lead":       5,
		"CallIntent": 3,
	}, nil)

	handler := NewAdminHandler(mockRepo)

	req := httptest.NewRequest("GET", "/admin/stats", nil)
	w := httptest.NewRecorder()

	handler.Stats(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Total  int            `json:"total"`
		ByRole map[string]int `json:"by_role"`
	}
	json.NewDecoder(w.Body).Decode(&response)
	assert.Equal(t, 20, response.Total)
	assert.Equal(t, 12, response.ByRole["Newsletter"])
}
