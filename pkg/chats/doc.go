// Package chats provides a provider-agnostic data model for LLM chat interactions.
//
// It is organized into sub-packages:
//   - [github.com/joboneact/mentor/pkg/chats/role] — conversation roles (system, user, assistant)
//   - [github.com/joboneact/mentor/pkg/chats/message] — immutable role-tagged text messages
//
// No provider or API code is included — chats is a foundation layer
// that adapters can build on.
package chats
