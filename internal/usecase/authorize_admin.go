package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/santaan/crm-api/internal/entity"
)

// AuthorizeAdminUseCase decides administrative access for an email. Membership
// is the union of the startup allow-list and admin_users rows with role
// "admin". It is called on every gated request, so it must be side-effect
// free and the allow-list path must not touch the database.
type AuthorizeAdminUseCase struct {
	allowlist map[string]bool
	AdminRepo AdminUserRepositoryInterface
}

func NewAuthorizeAdminUseCase(allowlist []string, adminRepo AdminUserRepositoryInterface) *AuthorizeAdminUseCase {
	set := make(map[string]bool, len(allowlist))
	for _, email := range allowlist {
		if normalized := entity.NormalizeEmail(email); normalized != "" {
			set[normalized] = true
		}
	}
	return &AuthorizeAdminUseCase{allowlist: set, AdminRepo: adminRepo}
}

// Execute returns whether the email may access admin routes. Any lookup
// failure is treated as not-authorized.
func (uc *AuthorizeAdminUseCase) Execute(ctx context.Context, email string) bool {
	if isBlank(email) {
		return false
	}

	normalized := entity.NormalizeEmail(email)
	if uc.allowlist[normalized] {
		return true
	}

	user, err := uc.AdminRepo.FindByEmail(ctx, normalized)
	if err != nil {
		if !errors.Is(err, entity.ErrAdminUserNotFound) {
			log.Printf("[authorize] admin lookup failed for %s: %v", normalized, err)
		}
		return false
	}

	return user.Role == entity.RoleAdmin
}
