// Package domain defines the business logic for the activities service.
package domain

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrActivityNotFound is returned when the activity name is not in the catalog.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyEnrolled indicates the student is already on the roster.
	ErrAlreadyEnrolled = errors.New("student already enrolled")
	// ErrNotEnrolled indicates a withdrawal for a student not on the roster.
	ErrNotEnrolled = errors.New("student not enrolled")
	// ErrActivityFull indicates the roster is at capacity.
	ErrActivityFull = errors.New("activity full")
)

// roster holds the mutable state of one activity. Its mutex covers the
// whole check-and-mutate sequence of an enroll or withdraw, so two
// concurrent operations on the same activity can never both pass the
// same precondition.
type roster struct {
	mu           sync.Mutex
	description  string
	schedule     string
	maxSize      int
	participants []string
}

// Catalog is the in-memory registry of activities. The key set is fixed
// at construction; only rosters mutate afterwards, so the maps need no
// lock of their own. Operations on different activities never contend.
type Catalog struct {
	rosters map[string]*roster
	names   []string // seed order, for deterministic listing
}

// NewCatalog validates the seed definitions and builds a catalog.
func NewCatalog(defs []Definition) (*Catalog, error) {
	c := &Catalog{rosters: make(map[string]*roster, len(defs))}
	for _, def := range defs {
		if def.Name == "" {
			return nil, errors.New("activity name must not be empty")
		}
		if _, exists := c.rosters[def.Name]; exists {
			return nil, fmt.Errorf("duplicate activity name %q", def.Name)
		}
		if def.MaxParticipants < 0 {
			return nil, fmt.Errorf("activity %q: max participants must not be negative", def.Name)
		}
		if len(def.Participants) > def.MaxParticipants {
			return nil, fmt.Errorf("activity %q: %d participants exceed capacity %d",
				def.Name, len(def.Participants), def.MaxParticipants)
		}
		seen := make(map[string]struct{}, len(def.Participants))
		participants := make([]string, 0, len(def.Participants))
		for _, email := range def.Participants {
			if email == "" {
				return nil, fmt.Errorf("activity %q: empty participant email", def.Name)
			}
			if _, dup := seen[email]; dup {
				return nil, fmt.Errorf("activity %q: duplicate participant %q", def.Name, email)
			}
			seen[email] = struct{}{}
			participants = append(participants, email)
		}
		c.rosters[def.Name] = &roster{
			description:  def.Description,
			schedule:     def.Schedule,
			maxSize:      def.MaxParticipants,
			participants: participants,
		}
		c.names = append(c.names, def.Name)
	}
	return c, nil
}

// List returns a snapshot of every activity in seed order. Each roster
// is copied under its own lock, so no entry is ever half-mutated; the
// slice as a whole is not a point-in-time view across activities.
func (c *Catalog) List() []Activity {
	out := make([]Activity, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.rosters[name].snapshot(name))
	}
	return out
}

// Get returns a snapshot of a single activity.
func (c *Catalog) Get(name string) (Activity, error) {
	r, ok := c.rosters[name]
	if !ok {
		return Activity{}, ErrActivityNotFound
	}
	return r.snapshot(name), nil
}

// Enroll adds email to the activity's roster. Preconditions are checked
// in order: the activity must exist, the student must not already be
// enrolled, and the roster must have a spot left. The first failing
// check decides the error and the roster is left untouched.
func (c *Catalog) Enroll(name, email string) error {
	r, ok := c.rosters[name]
	if !ok {
		return ErrActivityNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.contains(email) {
		return ErrAlreadyEnrolled
	}
	if len(r.participants) >= r.maxSize {
		return ErrActivityFull
	}
	r.participants = append(r.participants, email)
	return nil
}

// Withdraw removes email from the activity's roster, preserving the
// relative order of the remaining participants.
func (c *Catalog) Withdraw(name, email string) error {
	r, ok := c.rosters[name]
	if !ok {
		return ErrActivityNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.participants {
		if existing == email {
			r.participants = append(r.participants[:i], r.participants[i+1:]...)
			return nil
		}
	}
	return ErrNotEnrolled
}

// Len reports the number of activities in the catalog.
func (c *Catalog) Len() int {
	return len(c.names)
}

func (r *roster) snapshot(name string) Activity {
	r.mu.Lock()
	defer r.mu.Unlock()

	participants := make([]string, len(r.participants))
	copy(participants, r.participants)
	return Activity{
		Name:            name,
		Description:     r.description,
		Schedule:        r.schedule,
		MaxParticipants: r.maxSize,
		Participants:    participants,
	}
}

// contains assumes r.mu is held.
func (r *roster) contains(email string) bool {
	for _, existing := range r.participants {
		if existing == email {
			return true
		}
	}
	return false
}
