package session

import (
	"fmt"
	"sync"

	"github.com/gin-contrib/sessions"

	"github.com/yukikurage/freelance-marketplace-api/internal/constants"
)

// Persister keeps the encoded current user between store lifetimes.
// Load returns nil data when nothing has been saved.
type Persister interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Clear() error
}

// GinPersister stores the record in a gin-contrib session under the
// currentUser key, so it works with both the cookie and the redis backends.
type GinPersister struct {
	session sessions.Session
}

func NewGinPersister(s sessions.Session) *GinPersister {
	return &GinPersister{session: s}
}

func (p *GinPersister) Load() ([]byte, error) {
	switch v := p.session.Get(constants.SessionUserKey).(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return nil, fmt.Errorf("unexpected %T under %s", v, constants.SessionUserKey)
	}
}

func (p *GinPersister) Save(data []byte) error {
	p.session.Set(constants.SessionUserKey, string(data))
	return p.session.Save()
}

func (p *GinPersister) Clear() error {
	p.session.Delete(constants.SessionUserKey)
	return p.session.Save()
}

// MemoryPersister keeps the record in process memory.
type MemoryPersister struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryPersister(initial []byte) *MemoryPersister {
	return &MemoryPersister{data: initial}
}

func (p *MemoryPersister) Load() ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.data == nil {
		return nil, nil
	}
	return append([]byte(nil), p.data...), nil
}

func (p *MemoryPersister) Save(data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data = append([]byte(nil), data...)
	return nil
}

func (p *MemoryPersister) Clear() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data = nil
	return nil
}
