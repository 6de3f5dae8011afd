package auth

import "errors"

// Typed policy violations. Handlers translate these into 403 responses
// with the error text as the reason; unlike the generic permission
// denial these carry a specific human-readable message.
var (
	// ErrSuperuserProtected covers every protected mutation of a
	// superuser target: modification by a non-superuser actor, and
	// deactivation, deletion or demotion by anyone.
	ErrSuperuserProtected = errors.New("superuser accounts cannot be modified this way")

	// ErrSelfElevation is returned when a non-superuser tries to raise
	// the privilege level of their own account.
	ErrSelfElevation = errors.New("cannot elevate your own role; only a superuser can promote users")
)

// UserMutation describes an attempted change to a user account, checked
// by CheckUserMutation before any write happens. Nil fields mean "not
// being changed".
type UserMutation struct {
	ActorID    uint64
	ActorRole  string
	TargetID   uint64
	TargetRole string
	NewRole    *string
	NewActive  *bool
	Delete     bool
}

// CheckUserMutation enforces the account-protection rules layered above
// permission grants:
//
//   - a superuser target can never be deleted or deactivated, by anyone;
//   - a superuser target's role can never change away from superuser;
//   - a non-superuser actor cannot modify a superuser target at all;
//   - a non-superuser actor changing their own role may only keep or
//     lower their privilege level.
//
// It returns nil when the mutation is allowed.
func CheckUserMutation(m UserMutation) error {
	if m.TargetRole == RoleSuperuser {
		if m.Delete {
			return ErrSuperuserProtected
		}
		if m.NewActive != nil && !*m.NewActive {
			return ErrSuperuserProtected
		}
		if m.NewRole != nil && *m.NewRole != RoleSuperuser {
			return ErrSuperuserProtected
		}
		if m.ActorRole != RoleSuperuser {
			return ErrSuperuserProtected
		}
	}
	if m.NewRole != nil && m.ActorID == m.TargetID && m.ActorRole != RoleSuperuser {
		if Level(*m.NewRole) > Level(m.ActorRole) {
			return ErrSelfElevation
		}
	}
	return nil
}
