// File: internal/permission/ability_test.go
package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeProject struct {
	ownerID string
}

func (p fakeProject) OwnerIdentifier() string { return p.ownerID }

func TestAbility_ZeroValueDeniesEverything(t *testing.T) {
	var ability Ability

	assert.False(t, ability.Can(ActionGet, SubjectProject))
	assert.True(t, ability.Cannot(ActionManage, SubjectAll))
}

func TestAbility_ManageAllGrantsEverything(t *testing.T) {
	user := AuthUser{ID: "admin-1", Role: RoleAdmin}
	ability := NewAbility(user, []Rule{
		{Action: ActionManage, Subject: SubjectAll},
	})

	assert.True(t, ability.Can(ActionGet, SubjectProject))
	assert.True(t, ability.Can(ActionDelete, SubjectOrganization))
	assert.True(t, ability.Can(ActionCreate, SubjectInvite))
	assert.False(t, ability.Cannot(ActionUpdate, SubjectBilling))
}

func TestAbility_LaterRulesWin(t *testing.T) {
	user := AuthUser{ID: "u-1", Role: RoleMember}
	ability := NewAbility(user, []Rule{
		{Action: ActionManage, Subject: SubjectAll},
		{Action: ActionDelete, Subject: SubjectProject, Inverted: true},
	})

	assert.True(t, ability.Can(ActionGet, SubjectProject))
	assert.True(t, ability.Cannot(ActionDelete, SubjectProject))
}

func TestAbility_ConditionedRuleSkippedWithoutResource(t *testing.T) {
	user := AuthUser{ID: "u-1", Role: RoleMember}
	owns := func(u AuthUser, resource Ownable) bool {
		return resource != nil && resource.OwnerIdentifier() == u.ID
	}
	ability := NewAbility(user, []Rule{
		{Action: ActionUpdate, Subject: SubjectProject, Condition: owns},
	})

	// Class-level checks cannot evaluate an ownership condition.
	assert.False(t, ability.Can(ActionUpdate, SubjectProject))

	assert.True(t, ability.CanResource(ActionUpdate, SubjectProject, fakeProject{ownerID: "u-1"}))
	assert.False(t, ability.CanResource(ActionUpdate, SubjectProject, fakeProject{ownerID: "someone-else"}))
}

func TestDefaultDefiner_Admin(t *testing.T) {
	definer := NewDefaultDefiner()
	ability := definer.DefineAbilityFor(AuthUser{ID: "admin-1", Role: RoleAdmin})

	assert.True(t, ability.Can(ActionManage, SubjectAll))
	assert.True(t, ability.Can(ActionDelete, SubjectProject))
	assert.True(t, ability.Can(ActionCreate, SubjectInvite))
}

func TestDefaultDefiner_Member(t *testing.T) {
	definer := NewDefaultDefiner()
	ability := definer.DefineAbilityFor(AuthUser{ID: "member-1", Role: RoleMember})

	assert.True(t, ability.Can(ActionGet, SubjectUser))
	assert.True(t, ability.Can(ActionGet, SubjectOrganization))
	assert.True(t, ability.Can(ActionCreate, SubjectProject))
	assert.True(t, ability.Cannot(ActionCreate, SubjectInvite))
	assert.True(t, ability.Cannot(ActionManage, SubjectBilling))

	// Members may only touch projects they own.
	owned := fakeProject{ownerID: "member-1"}
	foreign := fakeProject{ownerID: "member-2"}
	assert.True(t, ability.CanResource(ActionDelete, SubjectProject, owned))
	assert.False(t, ability.CanResource(ActionDelete, SubjectProject, foreign))
	assert.True(t, ability.CanResource(ActionUpdate, SubjectProject, owned))
	assert.False(t, ability.CanResource(ActionUpdate, SubjectProject, foreign))
}

func TestDefaultDefiner_Billing(t *testing.T) {
	definer := NewDefaultDefiner()
	ability := definer.DefineAbilityFor(AuthUser{ID: "billing-1", Role: RoleBilling})

	assert.True(t, ability.Can(ActionManage, SubjectBilling))
	assert.True(t, ability.Can(ActionGet, SubjectOrganization))
	assert.True(t, ability.Cannot(ActionCreate, SubjectProject))
	assert.True(t, ability.Cannot(ActionGet, SubjectProject))
}
