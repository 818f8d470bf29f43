package museum

import (
	"github.com/tellsim/tellsim-go/internal/domain/artifact"
	"github.com/tellsim/tellsim-go/internal/domain/shared"
)

// Exhibition is the museum floor: a bounded set of displayed artifacts.
//
// A displayed artifact is owned by its slot. Placing moves the artifact out
// of the caller's hands and removing moves it back; there is never a second
// live copy to reconcile. Readers only ever see display snapshots.
type Exhibition struct {
	capacity int
	slots    []*artifact.Artefact
	byID     map[string]int
}

// NewExhibition creates an empty exhibition with a display capacity
func NewExhibition(capacity int) *Exhibition {
	return &Exhibition{
		capacity: capacity,
		byID:     make(map[string]int),
	}
}

func (e *Exhibition) Capacity() int { return e.capacity }
func (e *Exhibition) Count() int    { return len(e.slots) }

// Contains reports whether an artifact is on display
func (e *Exhibition) Contains(artifactID string) bool {
	_, ok := e.byID[artifactID]
	return ok
}

// Place takes ownership of an artifact and puts it on display
func (e *Exhibition) Place(a *artifact.Artefact) error {
	if len(e.slots) >= e.capacity {
		return shared.NewCapacityError("exhibition", e.capacity)
	}
	if _, ok := e.byID[a.ID()]; ok {
		return shared.NewDomainError("artifact " + a.ID() + " is already on display")
	}
	e.byID[a.ID()] = len(e.slots)
	e.slots = append(e.slots, a)
	return nil
}

// Remove takes an artifact off display, returning ownership to the caller
func (e *Exhibition) Remove(artifactID string) (*artifact.Artefact, error) {
	idx, ok := e.byID[artifactID]
	if !ok {
		return nil, shared.NewNotFoundError("exhibited artifact", artifactID)
	}

	removed := e.slots[idx]
	e.slots = append(e.slots[:idx], e.slots[idx+1:]...)
	delete(e.byID, artifactID)
	for i := idx; i < len(e.slots); i++ {
		e.byID[e.slots[i].ID()] = i
	}
	return removed, nil
}

// Displays returns snapshots of the exhibited artifacts in placement order
func (e *Exhibition) Displays() []*artifact.Artefact {
	displays := make([]*artifact.Artefact, 0, len(e.slots))
	for _, a := range e.slots {
		displays = append(displays, a.Clone())
	}
	return displays
}

// TotalValue sums the appraised value of everything on display
func (e *Exhibition) TotalValue() int {
	total := 0
	for _, a := range e.slots {
		total += a.Value()
	}
	return total
}
