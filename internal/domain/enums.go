package domain

// StanzaStatus is the moderation state of a stanza.
// Pending is the only non-terminal state.
type StanzaStatus string

const (
	StanzaStatusPending  StanzaStatus = "pending"
	StanzaStatusApproved StanzaStatus = "approved"
	StanzaStatusRejected StanzaStatus = "rejected"
)

func (s StanzaStatus) String() string { return string(s) }

func (s StanzaStatus) IsValid() bool {
	switch s {
	case StanzaStatusPending, StanzaStatusApproved, StanzaStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed.
func (s StanzaStatus) IsTerminal() bool {
	return s == StanzaStatusApproved || s == StanzaStatusRejected
}

// IsDecision reports whether s is a valid moderation outcome.
func (s StanzaStatus) IsDecision() bool {
	return s.IsTerminal()
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether the role grants moderation privileges.
func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }

// DenyReason explains why the quota ledger refused a submission.
type DenyReason string

const (
	DenyNone             DenyReason = ""
	DenyDailyCapExceeded DenyReason = "daily_cap_exceeded"
	DenyConsecutiveTheme DenyReason = "consecutive_theme"
)

func (d DenyReason) String() string { return string(d) }

// Err returns the domain error matching the reason, or nil for DenyNone.
func (d DenyReason) Err() error {
	switch d {
	case DenyDailyCapExceeded:
		return ErrDailyCapExceeded
	case DenyConsecutiveTheme:
		return ErrConsecutiveTheme
	}
	return nil
}
