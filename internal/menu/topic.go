package menu

import (
	"strconv"
	"strings"
)

// Topic is the closed set of demonstration topics. The numeric value is the
// menu token and also fixes the order of "run all".
type Topic int

const (
	Basics Topic = iota + 1
	Ownership
	StructsEnums
	PatternMatching
	ErrorHandling
	Generics
	Collections
	Closures
	Lifetimes

	topicEnd // sentinel; keep last
)

var topicNames = [...]string{
	Basics:          "basics",
	Ownership:       "ownership",
	StructsEnums:    "structs",
	PatternMatching: "patterns",
	ErrorHandling:   "errors",
	Generics:        "generics",
	Collections:     "collections",
	Closures:        "closures",
	Lifetimes:       "lifetimes",
}

var topicLabels = [...]string{
	Basics:          "Basics (variables, types, functions, control flow)",
	Ownership:       "Ownership (values, pointers, sharing)",
	StructsEnums:    "Structs and enums",
	PatternMatching: "Pattern matching",
	ErrorHandling:   "Error handling",
	Generics:        "Interfaces and generics",
	Collections:     "Collections",
	Closures:        "Iterators and closures",
	Lifetimes:       "Lifetimes (scope, escape analysis, GC)",
}

// Topics returns every topic in registered order.
func Topics() []Topic {
	out := make([]Topic, 0, topicEnd-1)
	for t := Basics; t < topicEnd; t++ {
		out = append(out, t)
	}
	return out
}

// Valid reports whether t is a member of the closed set.
func (t Topic) Valid() bool { return t >= Basics && t < topicEnd }

// Token is the single-character menu selection for t.
func (t Topic) Token() string { return strconv.Itoa(int(t)) }

// String returns the short name used on the command line.
func (t Topic) String() string {
	if !t.Valid() {
		return "Topic(" + strconv.Itoa(int(t)) + ")"
	}
	return topicNames[t]
}

// Label is the human description shown in the menu.
func (t Topic) Label() string {
	if !t.Valid() {
		return t.String()
	}
	return topicLabels[t]
}

// ParseTopic accepts either a token ("7") or a short name ("collections"),
// case-insensitively.
func ParseTopic(s string) (Topic, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range Topics() {
		if s == t.Token() || s == t.String() {
			return t, true
		}
	}
	return 0, false
}
