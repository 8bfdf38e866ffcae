package testutil

import "github.com/AntonioJCosta/adbkey/internal/core/ports"

// LogEntry is one message captured by MockLogger.
type LogEntry struct {
	Level         string
	Message       string
	KeysAndValues []interface{}
}

// MockLogger records every message instead of writing it anywhere.
type MockLogger struct {
	Entries []LogEntry
}

func (m *MockLogger) Debug(msg string, keysAndValues ...interface{}) {
	m.record("debug", msg, keysAndValues)
}

func (m *MockLogger) Info(msg string, keysAndValues ...interface{}) {
	m.record("info", msg, keysAndValues)
}

func (m *MockLogger) Warn(msg string, keysAndValues ...interface{}) {
	m.record("warn", msg, keysAndValues)
}

func (m *MockLogger) Error(msg string, keysAndValues ...interface{}) {
	m.record("error", msg, keysAndValues)
}

// Messages returns the logged messages at level, in order.
func (m *MockLogger) Messages(level string) []string {
	var out []string
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

func (m *MockLogger) record(level, msg string, keysAndValues []interface{}) {
	m.Entries = append(m.Entries, LogEntry{Level: level, Message: msg, KeysAndValues: keysAndValues})
}

var _ ports.Logger = (*MockLogger)(nil)
