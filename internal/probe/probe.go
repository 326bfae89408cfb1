// Package probe answers "is this tool installed" with a process-wide
// memoizing cache, so repeated alias resolutions don't pay for PATH
// lookups more than once per session.
package probe

import (
	"os/exec"
	"sync"
)

// LookupFunc resolves an executable name to a path, returning an error
// when the executable cannot be found.
type LookupFunc func(name string) (string, error)

// Prober caches command existence results for the lifetime of the process.
// A cache entry, once populated, is never invalidated within a session.
type Prober struct {
	mu     sync.Mutex
	known  map[string]bool
	lookup LookupFunc
}

// NewProber creates a Prober backed by exec.LookPath.
func NewProber() *Prober {
	return NewProberWithLookup(exec.LookPath)
}

// NewProberWithLookup creates a Prober with a custom lookup function.
// This is primarily used for testing purposes.
func NewProberWithLookup(lookup LookupFunc) *Prober {
	return &Prober{
		known:  make(map[string]bool),
		lookup: lookup,
	}
}

// Exists reports whether the named command is available, consulting the
// cache first and probing PATH on a miss.
func (p *Prober) Exists(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if present, ok := p.known[name]; ok {
		return present
	}

	_, err := p.lookup(name)
	present := err == nil
	p.known[name] = present
	return present
}

// Seen reports whether the named command has already been probed, without
// triggering a lookup.
func (p *Prober) Seen(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.known[name]
	return ok
}
