package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelOrdering(t *testing.T) {
	assert.Less(t, Level(RoleViewer), Level(RoleEditor))
	assert.Less(t, Level(RoleEditor), Level(RoleAdmin))
	assert.Less(t, Level(RoleAdmin), Level(RoleSuperuser))
}

func TestLevelUnknownRole(t *testing.T) {
	assert.Equal(t, 0, Level("wizard"))
	assert.Equal(t, 0, Level(""))
}

func TestIsValidRole(t *testing.T) {
	for _, r := range []string{RoleViewer, RoleEditor, RoleAdmin, RoleSuperuser} {
		assert.True(t, IsValidRole(r), r)
	}
	assert.False(t, IsValidRole("root"))
}

func TestHasAtLeastPrivilege(t *testing.T) {
	assert.True(t, HasAtLeastPrivilege(RoleSuperuser, RoleAdmin))
	assert.True(t, HasAtLeastPrivilege(RoleAdmin, RoleAdmin))
	assert.False(t, HasAtLeastPrivilege(RoleEditor, RoleAdmin))

	// Unknown roles always lose.
	assert.False(t, HasAtLeastPrivilege("wizard", RoleViewer))
	assert.False(t, HasAtLeastPrivilege("", RoleViewer))
}
