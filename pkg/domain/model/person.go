package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/muster/pkg/domain/types"
)

// PersonRef refers to a directory user
type PersonRef struct {
	DisplayName string            `json:"display_name" yaml:"display_name" firestore:"display_name"`
	Email       string            `json:"email" yaml:"email" firestore:"email"`
	ID          types.DirectoryID `json:"id" yaml:"id" firestore:"id"`
}

// NewPersonRef creates a PersonRef, normalizing the raw directory id
func NewPersonRef(rawID, displayName, email string) PersonRef {
	return PersonRef{
		DisplayName: displayName,
		Email:       email,
		ID:          types.NewDirectoryID(rawID),
	}
}

// Is reports whether both references point to the same directory user
func (p PersonRef) Is(other PersonRef) bool {
	return p.ID != "" && p.ID == other.ID
}

// IsZero reports whether the reference is empty
func (p PersonRef) IsZero() bool {
	return p.ID == ""
}

// Validate checks the reference carries a directory id
func (p PersonRef) Validate() error {
	if p.ID == "" {
		return goerr.New("person ID is required", goerr.V("display_name", p.DisplayName))
	}
	return nil
}

// personSet keeps insertion order while deduplicating by directory id
type personSet struct {
	order []PersonRef
	index map[types.DirectoryID]struct{}
}

func newPersonSet() *personSet {
	return &personSet{index: make(map[types.DirectoryID]struct{})}
}

func (s *personSet) add(p PersonRef) {
	if p.ID == "" {
		return
	}
	if _, ok := s.index[p.ID]; ok {
		return
	}
	s.index[p.ID] = struct{}{}
	s.order = append(s.order, p)
}

func (s *personSet) list() []PersonRef {
	return s.order
}

// UniquePersons returns persons deduplicated by directory id, keeping the
// first occurrence and dropping references without an id.
func UniquePersons(persons ...[]PersonRef) []PersonRef {
	set := newPersonSet()
	for _, group := range persons {
		for _, p := range group {
			set.add(p)
		}
	}
	return set.list()
}
