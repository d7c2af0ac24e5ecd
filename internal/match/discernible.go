// Package match implements the discernibility relation between partial keys.
//
// Two keys are discernible when some question is answered with a ground term
// in both and the terms differ. Absent, explicit or omitted, never discerns.
package match

import "github.com/ppiankov/triage/internal/model"

// Discernible reports whether a and b must be treated as distinct cases.
// It walks the smaller key and reads the other through Get, so an omitted
// entry and an explicit Absent behave the same.
func Discernible(a, b model.KeyReader) bool {
	if a.Len() > b.Len() {
		a, b = b, a
	}
	for id, left := range a.Entries() {
		lv, ok := left.Value()
		if !ok {
			continue
		}
		if rv, ok := b.Get(id).Value(); ok && rv != lv {
			return true
		}
	}
	return false
}

// Matches reports whether a stored case is compatible with a query key
func Matches(set model.AnswerSet, key model.KeyReader) bool {
	return !Discernible(set, key)
}
