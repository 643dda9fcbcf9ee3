package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@foo.com", NormalizeEmail(" A@Foo.com "))
	assert.Equal(t, "a@foo.com", NormalizeEmail("a@foo.com"))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestNewContact(t *testing.T) {
	c := NewContact("Asha Rao", " Asha@Example.COM", "9876543210")

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "asha@example.com", c.Email)
	assert.Equal(t, "New", c.Status)
	assert.False(t, c.CreatedAt.IsZero())
	assert.Equal(t, c.CreatedAt.UnixMilli(), c.SubmittedAt)
}
