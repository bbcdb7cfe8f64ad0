package checker

import "github.com/funvibe/lyra/internal/typesystem"

// Supply hands out globally unique type variable ids.
//
// A Supply is threaded sequentially through every declaration of a module so
// ids never collide across declarations; the driver returns the final Supply
// for the caller to pass into the next check. Ids are never reused or reset
// mid-run, which keeps substitution keys unambiguous.
type Supply struct {
	counter int
}

// NewSupply starts a supply at the given counter, typically the value
// returned by the previous declaration's check.
func NewSupply(counter int) Supply {
	return Supply{counter: counter}
}

// Fresh returns a new anonymous type variable with a strictly increasing id.
func (s *Supply) Fresh() typesystem.TVar {
	id := s.counter
	s.counter++
	return typesystem.TVar{ID: id}
}

// Counter exposes the next id, mainly so tests can assert that an operation
// did or did not consume fresh variables.
func (s Supply) Counter() int {
	return s.counter
}
