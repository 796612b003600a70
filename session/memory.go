package session

import (
	"strings"
	"sync"
)

// Memory is a process-local Store. It backs tests and `kino serve --ephemeral`.
type Memory struct {
	mu        sync.RWMutex
	cookie    string
	userAgent string
}

// NewMemory returns a Memory preloaded with cookie (which may be empty).
func NewMemory(cookie string) *Memory {
	return &Memory{cookie: strings.TrimSpace(cookie)}
}

func (m *Memory) Cookie() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cookie, m.cookie != ""
}

func (m *Memory) UserAgent() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.userAgent, m.userAgent != ""
}

func (m *Memory) SetCookie(cookie string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cookie = strings.TrimSpace(cookie)
	return nil
}

func (m *Memory) SetUserAgent(ua string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userAgent = strings.TrimSpace(ua)
	return nil
}

func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cookie = ""
	m.userAgent = ""
}
