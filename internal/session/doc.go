// Package session drives the triage resolve/learn cycle.
//
// A cycle collects answers to every known question, presents the outcomes
// whose stored cases are not discernible from those answers, and resolves
// the operator's choice: either counting a known outcome or learning a new
// outcome, optionally with a new discriminating question.
package session
