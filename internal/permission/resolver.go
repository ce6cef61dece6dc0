// File: internal/permission/resolver.go
package permission

import (
	"errors"

	"backoffice_backend/internal/common"

	"github.com/go-playground/validator/v10"
)

// AuthUser is the identity shape the resolver validates before delegating
// to the rule set.
type AuthUser struct {
	ID   string `validate:"required"`
	Role Role   `validate:"required,oneof=ADMIN MEMBER BILLING"`
}

// Resolver validates a (user identifier, role) pair and delegates to a
// Definer for the actual decision policy. It holds no rule logic itself
// and is safe for concurrent use.
type Resolver struct {
	definer  Definer
	validate *validator.Validate
}

// NewResolver creates a permission resolver backed by the given rule set.
func NewResolver(definer Definer) *Resolver {
	return &Resolver{
		definer:  definer,
		validate: validator.New(),
	}
}

// Resolve returns the decision object for the pair, or a validation error
// when the identifier is empty or the role is outside the enumeration.
func (r *Resolver) Resolve(userID string, role Role) (Ability, error) {
	authUser := AuthUser{ID: userID, Role: role}
	if err := r.validate.Struct(authUser); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return Ability{}, common.NewValidationAPIError(common.FormatValidationErrors(ve))
		}
		return Ability{}, err
	}
	return r.definer.DefineAbilityFor(authUser), nil
}
