// File: internal/permission/rules.go
package permission

// Definer maps a validated auth user to a concrete decision policy.
// It is the pluggable strategy behind the resolver, so the rule set can be
// swapped or stubbed in tests.
type Definer interface {
	DefineAbilityFor(user AuthUser) Ability
}

// DefinerFunc adapts a plain function to the Definer interface.
type DefinerFunc func(user AuthUser) Ability

func (f DefinerFunc) DefineAbilityFor(user AuthUser) Ability {
	return f(user)
}

// DefaultDefiner holds the role-keyed rule set of the back office.
type DefaultDefiner struct{}

// NewDefaultDefiner creates the default rule set.
func NewDefaultDefiner() *DefaultDefiner {
	return &DefaultDefiner{}
}

func ownsResource(user AuthUser, resource Ownable) bool {
	return resource.OwnerIdentifier() == user.ID
}

// DefineAbilityFor returns the decision policy for the user's role.
// Unknown roles yield an empty ability, which denies everything.
func (d *DefaultDefiner) DefineAbilityFor(user AuthUser) Ability {
	var rules []Rule

	switch user.Role {
	case RoleAdmin:
		rules = []Rule{
			{Action: ActionManage, Subject: SubjectAll},
		}
	case RoleMember:
		rules = []Rule{
			{Action: ActionGet, Subject: SubjectUser},
			{Action: ActionGet, Subject: SubjectOrganization},
			{Action: ActionGet, Subject: SubjectProject},
			{Action: ActionCreate, Subject: SubjectProject},
			{Action: ActionUpdate, Subject: SubjectProject, Condition: ownsResource},
			{Action: ActionDelete, Subject: SubjectProject, Condition: ownsResource},
		}
	case RoleBilling:
		rules = []Rule{
			{Action: ActionGet, Subject: SubjectOrganization},
			{Action: ActionManage, Subject: SubjectBilling},
		}
	}

	return NewAbility(user, rules)
}
