// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Role represents the type of role an account can have in the marketplace.
type Role string

const (
	// RoleBuyer indicates a regular buyer account.
	RoleBuyer Role = "buyer"
	// RoleManager indicates a manager account that owns products and reviews orders.
	RoleManager Role = "manager"
	// RoleAdmin indicates an administrator account with unrestricted access.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// AccountStatus represents the administrative standing of an account.
type AccountStatus string

const (
	// AccountStatusPending indicates an account awaiting administrative approval.
	AccountStatusPending AccountStatus = "pending"
	// AccountStatusApproved indicates an account in good standing.
	AccountStatusApproved AccountStatus = "approved"
	// AccountStatusSuspended indicates an account blocked by an administrator.
	AccountStatusSuspended AccountStatus = "suspended"
)

// String returns the string representation of the AccountStatus.
func (s AccountStatus) String() string {
	return string(s)
}

// IsValid checks if the AccountStatus is a valid value.
func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusPending, AccountStatusApproved, AccountStatusSuspended:
		return true
	default:
		return false
	}
}

// Account is the persisted record of a marketplace user. The email is the
// unique business key; the ID is the storage identifier. SuspendReason is
// present if and only if Status is suspended.
type Account struct {
	ID            string        // Storage identifier (ObjectID hex).
	Email         string        // Unique login identifier, taken from the verified credential.
	Name          string        // Display name.
	PhotoURL      string        // Optional avatar URL supplied at registration.
	Role          Role          // buyer, manager or admin.
	Status        AccountStatus // pending, approved or suspended.
	SuspendReason *string       // Set only while Status is suspended.
	CreatedAt     time.Time     // Timestamp of account creation.
	UpdatedAt     time.Time     // Timestamp of the last modification.
	LastLoginAt   time.Time     // Timestamp of the most recent login sync.
}

// ApplyStatus sets the account status and keeps the suspend-reason invariant:
// a reason is retained only while the account is suspended.
func (a *Account) ApplyStatus(status AccountStatus, reason *string) {
	a.Status = status
	if status == AccountStatusSuspended {
		a.SuspendReason = reason

		return
	}

	a.SuspendReason = nil
}
