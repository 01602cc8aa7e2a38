package booking

// Status is closed: every switch over it lists all members.
type Status string

const (
	StatusPending     Status = "pending"
	StatusApproved    Status = "approved"
	StatusDenied      Status = "denied"
	StatusBumped      Status = "bumped"
	StatusRescheduled Status = "rescheduled"
	StatusCancelled   Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDenied, StatusBumped, StatusRescheduled, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether a booking in this status occupies its resources.
func (s Status) IsActive() bool {
	switch s {
	case StatusPending, StatusApproved:
		return true
	case StatusDenied, StatusBumped, StatusRescheduled, StatusCancelled:
		return false
	default:
		return false
	}
}

func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusApproved}
}

// Action is a lifecycle operation applied to a single booking.
type Action string

const (
	ActionApprove         Action = "approve"
	ActionAutoApprove     Action = "auto_approve"
	ActionDeny            Action = "deny"
	ActionOverrideApprove Action = "override_approve"
	ActionOverrideBump    Action = "override_bump"
	ActionBump            Action = "bump"
	ActionReschedule      Action = "reschedule"
	ActionCancel          Action = "cancel"
)

func (a Action) String() string {
	return string(a)
}

// permits is the transition table's "From" column.
func (a Action) permits(from Status) bool {
	switch a {
	case ActionApprove, ActionAutoApprove, ActionDeny, ActionOverrideApprove, ActionOverrideBump:
		return from == StatusPending
	case ActionBump:
		return from == StatusApproved
	case ActionReschedule, ActionCancel:
		switch from {
		case StatusPending, StatusApproved, StatusRescheduled:
			return true
		case StatusDenied, StatusBumped, StatusCancelled:
			return false
		}
		return false
	default:
		return false
	}
}

// target is the transition table's "To" column.
func (a Action) target() Status {
	switch a {
	case ActionApprove, ActionAutoApprove, ActionOverrideApprove, ActionOverrideBump:
		return StatusApproved
	case ActionDeny:
		return StatusDenied
	case ActionBump:
		return StatusBumped
	case ActionReschedule:
		return StatusRescheduled
	case ActionCancel:
		return StatusCancelled
	default:
		return ""
	}
}

// ApprovalAction is the decision recorded on an Approval.
type ApprovalAction string

const (
	ApprovalApprove         ApprovalAction = "approve"
	ApprovalDeny            ApprovalAction = "deny"
	ApprovalOverrideApprove ApprovalAction = "override_approve"
	ApprovalOverrideBump    ApprovalAction = "override_bump"
)

func (a ApprovalAction) IsValid() bool {
	switch a {
	case ApprovalApprove, ApprovalDeny, ApprovalOverrideApprove, ApprovalOverrideBump:
		return true
	default:
		return false
	}
}

// ApprovalActionFor maps lifecycle actions that produce an Approval record.
func ApprovalActionFor(a Action) (ApprovalAction, bool) {
	switch a {
	case ActionApprove, ActionAutoApprove:
		return ApprovalApprove, true
	case ActionDeny:
		return ApprovalDeny, true
	case ActionOverrideApprove:
		return ApprovalOverrideApprove, true
	case ActionOverrideBump:
		return ApprovalOverrideBump, true
	case ActionBump, ActionReschedule, ActionCancel:
		return "", false
	default:
		return "", false
	}
}
