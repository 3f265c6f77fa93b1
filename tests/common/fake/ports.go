package fake

import (
	"context"
	"slices"
	"sync"

	"campus-booking/internal/domain/session"
	"campus-booking/internal/pkg/errs"
	"campus-booking/internal/usecase/shared"
)

var ErrBadCredentials = errs.Reject(errs.KindUnauthenticated, "invalid login id or password")

// Publisher records published events. Err, when set, is returned from every Publish.
type Publisher struct {
	mu     sync.Mutex
	events []shared.Event
	Err    error
}

func (p *Publisher) Publish(_ context.Context, e shared.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.events = append(p.events, e)
	return nil
}

func (p *Publisher) Events() []shared.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.events)
}

func (p *Publisher) Types() []shared.EventType {
	var out []shared.EventType
	for _, e := range p.Events() {
		out = append(out, e.Type)
	}
	return out
}

// Authenticator accepts the login ids in Members when the password matches.
type Authenticator struct {
	Members  map[string]session.Identity
	Password string
}

func (a Authenticator) Authenticate(_ context.Context, creds session.Credentials) (session.Identity, error) {
	id, ok := a.Members[creds.LoginID()]
	if !ok || creds.Password() != a.Password {
		return session.Anonymous, ErrBadCredentials
	}
	return id, nil
}
