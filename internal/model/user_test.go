package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissionAllows(t *testing.T) {
	p := Permission{CanRead: true, CanDelete: true}

	assert.True(t, p.Allows(ActionRead))
	assert.False(t, p.Allows(ActionWrite))
	assert.False(t, p.Allows(ActionCreate))
	assert.True(t, p.Allows(ActionDelete))
}

func TestPermissionUnknownActionDenied(t *testing.T) {
	p := Permission{CanRead: true, CanWrite: true, CanCreate: true, CanDelete: true}
	assert.False(t, p.Allows(Action("admin")))
	assert.False(t, p.Allows(Action("")))
}
