// File: internal/permission/ability.go
package permission

// Action is a verb an actor may perform on a subject.
type Action string

const (
	ActionManage Action = "manage" // matches every action
	ActionGet    Action = "get"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Subject is a resource kind permissions are expressed against.
type Subject string

const (
	SubjectAll          Subject = "all" // matches every subject
	SubjectUser         Subject = "User"
	SubjectOrganization Subject = "Organization"
	SubjectProject      Subject = "Project"
	SubjectBilling      Subject = "Billing"
	SubjectInvite       Subject = "Invite"
)

// Ownable is implemented by resources that carry an owner, so rules can be
// conditioned on ownership.
type Ownable interface {
	OwnerIdentifier() string
}

// Condition restricts a rule to resources for which it returns true.
type Condition func(user AuthUser, resource Ownable) bool

// Rule grants (or, when Inverted, revokes) an action on a subject.
// Rules are evaluated in order; later rules win over earlier ones.
type Rule struct {
	Action    Action
	Subject   Subject
	Inverted  bool
	Condition Condition
}

func (r Rule) matches(action Action, subject Subject) bool {
	actionOK := r.Action == ActionManage || r.Action == action
	subjectOK := r.Subject == SubjectAll || r.Subject == subject
	return actionOK && subjectOK
}

// Ability is a request-scoped decision object answering whether its user may
// perform an action on a subject. The zero value denies everything.
type Ability struct {
	user  AuthUser
	rules []Rule
}

// NewAbility builds an ability for a user from an ordered rule list.
func NewAbility(user AuthUser, rules []Rule) Ability {
	return Ability{user: user, rules: rules}
}

// Can reports whether the action is allowed on the subject kind.
// Rules carrying a condition are skipped because there is no concrete
// resource to evaluate them against.
func (a Ability) Can(action Action, subject Subject) bool {
	return a.decide(action, subject, nil)
}

// Cannot is the negation of Can.
func (a Ability) Cannot(action Action, subject Subject) bool {
	return !a.Can(action, subject)
}

// CanResource reports whether the action is allowed on a concrete resource,
// evaluating ownership conditions against it.
func (a Ability) CanResource(action Action, subject Subject, resource Ownable) bool {
	return a.decide(action, subject, resource)
}

func (a Ability) decide(action Action, subject Subject, resource Ownable) bool {
	allowed := false
	for _, r := range a.rules {
		if !r.matches(action, subject) {
			continue
		}
		if r.Condition != nil {
			if resource == nil || !r.Condition(a.user, resource) {
				continue
			}
		}
		allowed = !r.Inverted
	}
	return allowed
}
