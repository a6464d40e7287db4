// internal/sheets/memory.go
package sheets

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-memory Store used by tests and local development.
// Same contract as ExcelStore, minus the workbook.
type MemoryStore struct {
	mu     sync.Mutex
	sheets map[string][][]string
}

func NewMemoryStore() *MemoryStore {
	m := &MemoryStore{sheets: make(map[string][][]string)}
	for name := range Headers {
		m.sheets[name] = nil
	}
	return m
}

func (m *MemoryStore) ReadRange(ctx context.Context, sheet string) ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows, ok := m.sheets[sheet]
	if !ok {
		return nil, fmt.Errorf("sheets: unknown sheet %q", sheet)
	}
	out := make([][]string, len(rows))
	copy(out, rows)
	return out, nil
}

func (m *MemoryStore) WriteRange(ctx context.Context, sheet string, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sheets[sheet]; !ok {
		return fmt.Errorf("sheets: unknown sheet %q", sheet)
	}
	cp := make([][]string, len(rows))
	copy(cp, rows)
	m.sheets[sheet] = cp
	return nil
}

func (m *MemoryStore) AppendRows(ctx context.Context, sheet string, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sheets[sheet]; !ok {
		return fmt.Errorf("sheets: unknown sheet %q", sheet)
	}
	m.sheets[sheet] = append(m.sheets[sheet], rows...)
	return nil
}

func (m *MemoryStore) ClearRange(ctx context.Context, sheet string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sheets[sheet]; !ok {
		return fmt.Errorf("sheets: unknown sheet %q", sheet)
	}
	m.sheets[sheet] = nil
	return nil
}
