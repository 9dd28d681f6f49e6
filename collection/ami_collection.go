package collection

import (
	"sync"

	"ami-builder/resources"
)

// Ami collects the per-region results of fan-out. Safe for concurrent use:
// copy goroutines append while the orchestrator later reads.
type Ami struct {
	sync.Mutex
	amis []resources.Ami
}

func (a *Ami) Add(ami resources.Ami) {
	a.Lock()
	defer a.Unlock()

	a.amis = append(a.amis, ami)
}

// GetAll returns a copy of the collected AMIs.
func (a *Ami) GetAll() []resources.Ami {
	a.Lock()
	defer a.Unlock()

	all := make([]resources.Ami, len(a.amis))
	copy(all, a.amis)
	return all
}
