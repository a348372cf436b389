package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Persister is the small key/value surface the auth slice saves its session to.
// Keys are "token" and "user".
type Persister interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// MemoryPersister keeps values for the life of the process.
type MemoryPersister struct {
	mu sync.Mutex
	m  map[string]string
}

func NewMemoryPersister() *MemoryPersister { return &MemoryPersister{m: map[string]string{}} }

func (p *MemoryPersister) Get(key string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.m[key]
	return v, ok
}

func (p *MemoryPersister) Set(key, value string) error {
	p.mu.Lock()
	p.m[key] = value
	p.mu.Unlock()
	return nil
}

func (p *MemoryPersister) Remove(key string) error {
	p.mu.Lock()
	delete(p.m, key)
	p.mu.Unlock()
	return nil
}

// FilePersister stores all keys in one JSON file, rewritten on every change.
type FilePersister struct {
	mu   sync.Mutex
	path string
}

func NewFilePersister(path string) *FilePersister { return &FilePersister{path: path} }

func (p *FilePersister) Get(key string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	m, err := p.load()
	if err != nil {
		return "", false
	}
	v, ok := m[key]
	return v, ok
}

func (p *FilePersister) Set(key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	m, err := p.load()
	if err != nil {
		return err
	}
	m[key] = value
	return p.save(m)
}

func (p *FilePersister) Remove(key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	m, err := p.load()
	if err != nil {
		return err
	}
	delete(m, key)
	return p.save(m)
}

func (p *FilePersister) load() (map[string]string, error) {
	m := map[string]string{}
	b, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return m, nil
	}
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (p *FilePersister) save(m map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return err
	}
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(p.path, b, 0o600)
}
