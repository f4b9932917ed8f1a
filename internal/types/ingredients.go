package types

import "strings"

// IngredientList is the client-side list of ingredients a user has entered.
// Entries are trimmed and kept unique by exact, case-sensitive match.
type IngredientList struct {
	items []string
}

// NewIngredientList builds a list by adding each value in order
func NewIngredientList(values ...string) *IngredientList {
	l := &IngredientList{}
	for _, v := range values {
		l.Add(v)
	}
	return l
}

// Add appends value unless it is blank or already present
func (l *IngredientList) Add(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" || l.Contains(value) {
		return false
	}
	l.items = append(l.items, value)
	return true
}

// Remove deletes value from the list
func (l *IngredientList) Remove(value string) bool {
	for i, item := range l.items {
		if item == value {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

func (l *IngredientList) Contains(value string) bool {
	for _, item := range l.items {
		if item == value {
			return true
		}
	}
	return false
}

func (l *IngredientList) Len() int {
	return len(l.items)
}

// Items returns a copy of the entries in insertion order
func (l *IngredientList) Items() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

// Dedupe returns values with later exact duplicates removed, preserving the
// order of first occurrence.
func Dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
