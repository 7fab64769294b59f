package shared

import (
	"fmt"
	"strings"
)

// AgentID is a value object identifying a trading agent (the human player or
// an autonomous trader). The engine never owns agent state; the ID only tags
// trades and history entries.
type AgentID struct {
	value string
}

// NewAgentID creates a new AgentID value object
func NewAgentID(id string) (AgentID, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return AgentID{}, fmt.Errorf("agent id must not be empty")
	}
	return AgentID{value: id}, nil
}

// MustNewAgentID creates a new AgentID value object, panicking if invalid.
// Use this only when you're certain the ID is valid (e.g., from config).
func MustNewAgentID(id string) AgentID {
	agentID, err := NewAgentID(id)
	if err != nil {
		panic(err)
	}
	return agentID
}

// Value returns the string value of the AgentID
func (a AgentID) Value() string {
	return a.value
}

// String returns a string representation of the AgentID
func (a AgentID) String() string {
	return a.value
}

// Equals checks if two AgentIDs are equal
func (a AgentID) Equals(other AgentID) bool {
	return a.value == other.value
}

// IsZero checks if the AgentID is the zero value (uninitialized)
func (a AgentID) IsZero() bool {
	return a.value == ""
}
