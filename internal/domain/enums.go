package domain

// UserRole determines which review steps a user may perform.
type UserRole string

const (
	UserRoleTeacher            UserRole = "TEACHER"
	UserRoleDepartmentReviewer UserRole = "DEPARTMENT_REVIEWER"
	UserRoleSchoolReviewer     UserRole = "SCHOOL_REVIEWER"
	UserRoleAdmin              UserRole = "ADMIN"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleTeacher, UserRoleDepartmentReviewer, UserRoleSchoolReviewer, UserRoleAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether the role has unrestricted access.
func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }

// IsReviewer reports whether the role takes part in record review.
func (r UserRole) IsReviewer() bool {
	return r == UserRoleDepartmentReviewer || r == UserRoleSchoolReviewer || r == UserRoleAdmin
}

// RecordStatus is the review state of a training record.
type RecordStatus string

const (
	RecordStatusSubmitted          RecordStatus = "SUBMITTED"
	RecordStatusDepartmentReviewed RecordStatus = "DEPARTMENT_REVIEWED"
	RecordStatusSchoolReviewed     RecordStatus = "SCHOOL_REVIEWED"
)

func (s RecordStatus) String() string { return string(s) }

func (s RecordStatus) IsValid() bool {
	switch s {
	case RecordStatusSubmitted, RecordStatusDepartmentReviewed, RecordStatusSchoolReviewed:
		return true
	}
	return false
}

// transitions lists the only legal move out of each status.
// SCHOOL_REVIEWED is terminal.
var transitions = map[RecordStatus]RecordStatus{
	RecordStatusSubmitted:          RecordStatusDepartmentReviewed,
	RecordStatusDepartmentReviewed: RecordStatusSchoolReviewed,
}

// Next returns the successor status, or false when s is terminal or unknown.
func (s RecordStatus) Next() (RecordStatus, bool) {
	next, ok := transitions[s]
	return next, ok
}

// IsTerminal reports whether no further transition is possible.
func (s RecordStatus) IsTerminal() bool {
	_, ok := transitions[s]
	return s.IsValid() && !ok
}

// CanTransition reports whether moving from one status to another is a
// forward, adjacent step.
func CanTransition(from, to RecordStatus) bool {
	next, ok := transitions[from]
	return ok && next == to
}

// CheckTransition returns a *TransitionError when from -> to is not allowed.
func CheckTransition(from, to RecordStatus) error {
	if !CanTransition(from, to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}

// RequiredRoles returns the roles allowed to move a record into status s.
func RequiredRoles(s RecordStatus) []UserRole {
	switch s {
	case RecordStatusDepartmentReviewed:
		return []UserRole{UserRoleDepartmentReviewer, UserRoleAdmin}
	case RecordStatusSchoolReviewed:
		return []UserRole{UserRoleSchoolReviewer, UserRoleAdmin}
	}
	return nil
}
