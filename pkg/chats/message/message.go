// Package message defines the Message type used in LLM conversations.
package message

import "github.com/joboneact/mentor/pkg/chats/role"

// Message represents a single role-tagged message in a conversation.
// It is a value type that copies cheaply and is never mutated after creation.
type Message struct {
	Role    role.Role
	Content string
}

// New creates a message with the given role and content.
func New(r role.Role, content string) Message {
	return Message{Role: r, Content: content}
}

// System creates a system message.
func System(content string) Message {
	return New(role.System, content)
}

// User creates a user message.
func User(content string) Message {
	return New(role.User, content)
}

// Assistant creates an assistant message.
func Assistant(content string) Message {
	return New(role.Assistant, content)
}
