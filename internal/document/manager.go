package document

import (
	"fmt"
	"sync"
)

// Manager tracks the open documents the LSP server is syncing.
type Manager struct {
	docs map[string]*MemoryBuffer
	mu   sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{docs: make(map[string]*MemoryBuffer)}
}

func (m *Manager) Open(uri string, content string) (*MemoryBuffer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.docs[uri]; exists {
		return nil, fmt.Errorf("document already open: %s", uri)
	}

	buf := NewMemoryBuffer(content)
	m.docs[uri] = buf
	return buf, nil
}

func (m *Manager) Get(uri string) (*MemoryBuffer, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	buf, exists := m.docs[uri]
	return buf, exists
}

func (m *Manager) Close(uri string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.docs[uri]; !exists {
		return fmt.Errorf("document not found: %s", uri)
	}
	delete(m.docs, uri)
	return nil
}

func (m *Manager) URIs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	uris := make([]string, 0, len(m.docs))
	for uri := range m.docs {
		uris = append(uris, uri)
	}
	return uris
}
