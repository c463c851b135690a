package model

import "Go2FreqSpectra/internal/config"

// Task defines a single, self-contained frequency-tracking task backed by
// its own sketch. This is the interface for the "execution layer".
type Task interface {
	ProcessEvent(ev *Event)
	Snapshot() interface{}
	Reset()
	Name() string

	// AlerterMsg evaluates the given rules against the task's current state
	// and returns an HTML fragment describing the triggered ones, or "".
	AlerterMsg(rules []config.AlerterRule) string
}
