// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sync"

	"github.com/xAlexMGGx/LinkGames/models"
)

// Memory keeps encoded documents in a map. Used by tests and by
// "-store memory" for throwaway servers.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

func (m *Memory) Get(ctx context.Context, name string) (models.Document, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, unavailable("get", name, err)
	}

	m.mu.RLock()
	data, ok := m.docs[name]
	m.mu.RUnlock()

	if !ok {
		return models.Document{}, nil
	}
	return Decode(data)
}

func (m *Memory) Put(ctx context.Context, name string, doc models.Document) error {
	return m.PutMany(ctx, []Named{{Name: name, Document: doc}})
}

func (m *Memory) PutMany(ctx context.Context, docs []Named) error {
	encoded := make(map[string][]byte, len(docs))
	for _, d := range docs {
		if err := checkName(d.Name); err != nil {
			return err
		}
		data, err := Encode(d.Document)
		if err != nil {
			return err
		}
		encoded[d.Name] = data
	}
	if err := ctx.Err(); err != nil {
		return unavailable("put", "batch", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for name, data := range encoded {
		m.docs[name] = data
	}
	return nil
}

// SetRaw stores bytes as-is, bypassing the encoder.
func (m *Memory) SetRaw(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[name] = data
}

func (m *Memory) Close() error {
	return nil
}
