package message_test

import (
	"testing"

	"github.com/joboneact/mentor/pkg/chats/message"
	"github.com/joboneact/mentor/pkg/chats/role"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	m := message.New(role.User, "hello")

	assert.Equal(t, role.User, m.Role)
	assert.Equal(t, "hello", m.Content)
}

func TestConvenienceConstructors(t *testing.T) {
	assert.Equal(t, message.Message{Role: role.System, Content: "be brief"}, message.System("be brief"))
	assert.Equal(t, message.Message{Role: role.User, Content: "hi"}, message.User("hi"))
	assert.Equal(t, message.Message{Role: role.Assistant, Content: "hey"}, message.Assistant("hey"))
}

func TestStructuralEquality(t *testing.T) {
	a := message.New(role.User, "same")
	b := message.New(role.User, "same")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, message.New(role.Assistant, "same"))
}
