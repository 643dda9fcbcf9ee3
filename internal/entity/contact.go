package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Value Object: UTM campaign parameters captured at submission time.
type UTMParams struct {
	Source      string `json:"source,omitempty"`
	Medium      string `json:"medium,omitempty"`
	Campaign    string `json:"campaign,omitempty"`
	Term        string `json:"term,omitempty"`
	Content     string `json:"content,omitempty"`
	LandingPath string `json:"landing_path,omitempty"`
}

// Contact is a lead or subscriber captured by one of the intake endpoints.
type Contact struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`

	Role      string `json:"role"`   // Lead, Newsletter, CallIntent
	Status    string `json:"status"` // New, Contacted, Converted
	LeadScore *int   `json:"lead_score,omitempty"`

	UTM UTMParams `json:"utm"`

	NewsletterSubscribed bool `json:"newsletter_subscribed"`
	SeminarRegistered    bool `json:"seminar_registered"`
	AtHomeTest           bool `json:"at_home_test"`

	SeminarScore    *int   `json:"seminar_score,omitempty"`
	SeminarSignal   string `json:"seminar_signal,omitempty"`
	SeminarQuestion string `json:"seminar_question,omitempty"`

	Message string `json:"message,omitempty"`

	// SubmittedAt is the client-facing capture time in Unix milliseconds.
	// Both timestamps are set once at creation and never mutated.
	SubmittedAt int64     `json:"submitted_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewContact builds a Contact with a fresh id, normalized email and both
// audit timestamps set to now.
func NewContact(name, email, phone string) *Contact {
	now := time.Now()
	return &Contact{
		ID:          uuid.New().String(),
		Name:        name,
		Email:       NormalizeEmail(email),
		Phone:       phone,
		Status:      "New",
		SubmittedAt: now.UnixMilli(),
		CreatedAt:   now,
	}
}

// NormalizeEmail is applied before every comparison and before storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
