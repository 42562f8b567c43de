package kvstore

import "context"

// Instrumented decorates a Store with an operation observer, keeping the
// metrics dependency out of this package.
type Instrumented struct {
	next    Store
	observe func(op, key string)
}

// NewInstrumented wraps next; observe may be nil.
func NewInstrumented(next Store, observe func(op, key string)) *Instrumented {
	return &Instrumented{next: next, observe: observe}
}

func (s *Instrumented) Read(ctx context.Context, key string) ([]byte, error) {
	if s.observe != nil {
		s.observe("read", key)
	}
	return s.next.Read(ctx, key)
}

func (s *Instrumented) Write(ctx context.Context, key string, value []byte) error {
	if s.observe != nil {
		s.observe("write", key)
	}
	return s.next.Write(ctx, key, value)
}

func (s *Instrumented) Remove(ctx context.Context, key string) error {
	if s.observe != nil {
		s.observe("remove", key)
	}
	return s.next.Remove(ctx, key)
}
