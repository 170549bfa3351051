package role_test

import (
	"testing"

	"github.com/joboneact/mentor/pkg/chats/role"
	"github.com/stretchr/testify/assert"
)

func TestValid_KnownRoles(t *testing.T) {
	assert.True(t, role.System.Valid())
	assert.True(t, role.User.Valid())
	assert.True(t, role.Assistant.Valid())
}

func TestValid_UnknownRole(t *testing.T) {
	assert.False(t, role.Role("tool").Valid())
	assert.False(t, role.Role("").Valid())
}

func TestString(t *testing.T) {
	assert.Equal(t, "system", role.System.String())
	assert.Equal(t, "user", role.User.String())
	assert.Equal(t, "assistant", role.Assistant.String())
}
