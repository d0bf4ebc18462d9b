package entities

// Partial-update payloads. Nil fields keep the persisted value; only supplied
// fields overwrite.

// UserUpdate carries optional profile fields. Password changes are not part
// of the profile update path.
type UserUpdate struct {
	Email     *string
	FirstName *string
	LastName  *string
	Role      *Role
}

// TeamUpdate carries optional team fields and association id lists.
type TeamUpdate struct {
	Name        *string
	Description *string
	Members     *[]string
	Tasks       *[]string
}

// ProjectUpdate carries optional project fields.
type ProjectUpdate struct {
	Name        *string
	Description *string
	TaskIDs     *[]string
}

// TaskUpdate carries the fixed allow-list of updatable task fields. Stage is
// deliberately not part of it.
type TaskUpdate struct {
	Name        *string
	Description *string
	Status      *TaskStatus
	Priority    *TaskPriority
	Owners      *[]string
	Accountable *[]string
	Subscribers *[]string
}
