package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

func TestSuperuserCannotBeDeleted(t *testing.T) {
	err := CheckUserMutation(UserMutation{
		ActorID: 1, ActorRole: RoleSuperuser,
		TargetID: 2, TargetRole: RoleSuperuser,
		Delete: true,
	})
	assert.ErrorIs(t, err, ErrSuperuserProtected)
}

func TestSuperuserCannotBeDeactivated(t *testing.T) {
	err := CheckUserMutation(UserMutation{
		ActorID: 1, ActorRole: RoleSuperuser,
		TargetID: 2, TargetRole: RoleSuperuser,
		NewActive: boolptr(false),
	})
	assert.ErrorIs(t, err, ErrSuperuserProtected)
}

func TestSuperuserCannotBeDemoted(t *testing.T) {
	err := CheckUserMutation(UserMutation{
		ActorID: 1, ActorRole: RoleSuperuser,
		TargetID: 2, TargetRole: RoleSuperuser,
		NewRole: strptr(RoleAdmin),
	})
	assert.ErrorIs(t, err, ErrSuperuserProtected)
}

func TestNonSuperuserCannotTouchSuperuser(t *testing.T) {
	err := CheckUserMutation(UserMutation{
		ActorID: 5, ActorRole: RoleAdmin,
		TargetID: 2, TargetRole: RoleSuperuser,
	})
	assert.ErrorIs(t, err, ErrSuperuserProtected)
}

func TestSuperuserMayEditSuperuserProfile(t *testing.T) {
	// No role/active/delete change: allowed for a superuser actor.
	err := CheckUserMutation(UserMutation{
		ActorID: 1, ActorRole: RoleSuperuser,
		TargetID: 2, TargetRole: RoleSuperuser,
	})
	assert.NoError(t, err)
}

func TestAdminCannotPromoteSelf(t *testing.T) {
	err := CheckUserMutation(UserMutation{
		ActorID: 3, ActorRole: RoleAdmin,
		TargetID: 3, TargetRole: RoleAdmin,
		NewRole: strptr(RoleSuperuser),
	})
	assert.ErrorIs(t, err, ErrSelfElevation)
}

func TestEditorCannotPromoteSelfToAdmin(t *testing.T) {
	err := CheckUserMutation(UserMutation{
		ActorID: 4, ActorRole: RoleEditor,
		TargetID: 4, TargetRole: RoleEditor,
		NewRole: strptr(RoleAdmin),
	})
	assert.ErrorIs(t, err, ErrSelfElevation)
}

func TestSelfDemotionAllowed(t *testing.T) {
	err := CheckUserMutation(UserMutation{
		ActorID: 3, ActorRole: RoleAdmin,
		TargetID: 3, TargetRole: RoleAdmin,
		NewRole: strptr(RoleEditor),
	})
	assert.NoError(t, err)
}

func TestAdminMayPromoteOthers(t *testing.T) {
	err := CheckUserMutation(UserMutation{
		ActorID: 3, ActorRole: RoleAdmin,
		TargetID: 9, TargetRole: RoleViewer,
		NewRole: strptr(RoleEditor),
	})
	assert.NoError(t, err)
}

func TestSuperuserMayPromoteSelfNoOp(t *testing.T) {
	err := CheckUserMutation(UserMutation{
		ActorID: 1, ActorRole: RoleSuperuser,
		TargetID: 1, TargetRole: RoleSuperuser,
		NewRole: strptr(RoleSuperuser),
	})
	assert.NoError(t, err)
}
