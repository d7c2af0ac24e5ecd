package model

import (
	"fmt"
	"iter"
	"maps"
)

// Answer is either a ground term or Absent.
// The zero value is Absent.
type Answer struct {
	value  string
	ground bool
}

// Absent is the "not yet known" or declined answer. It acts as a wildcard.
var Absent = Answer{}

// Ground returns a known answer value
func Ground(value string) Answer {
	return Answer{value: value, ground: true}
}

// IsGround reports whether the answer carries a concrete value
func (a Answer) IsGround() bool {
	return a.ground
}

// Value returns the ground value and whether there is one
func (a Answer) Value() (string, bool) {
	return a.value, a.ground
}

func (a Answer) String() string {
	if !a.ground {
		return "?"
	}
	return fmt.Sprintf("%q", a.value)
}

// Key maps question ids to answers. Unmentioned ids are Absent.
type Key map[QuestionID]Answer

// Get returns the answer for id. A missing entry reads as Absent.
func (k Key) Get(id QuestionID) Answer {
	a, ok := k[id]
	if !ok {
		return Absent
	}
	return a
}

// Set records an answer for id
func (k Key) Set(id QuestionID, a Answer) {
	k[id] = a
}

// Len returns the number of entries, explicit Absent included
func (k Key) Len() int {
	return len(k)
}

// Entries iterates the explicit entries of the key in no particular order
func (k Key) Entries() iter.Seq2[QuestionID, Answer] {
	return maps.All(k)
}

// Clone returns an independent copy of the key
func (k Key) Clone() Key {
	if k == nil {
		return Key{}
	}
	return maps.Clone(k)
}

// GroundCount returns the number of ground answers in the key
func (k Key) GroundCount() int {
	n := 0
	for _, a := range k {
		if a.IsGround() {
			n++
		}
	}
	return n
}

// KeyReader is a read-only view of a partial key
type KeyReader interface {
	Get(id QuestionID) Answer
	Len() int
	Entries() iter.Seq2[QuestionID, Answer]
}
