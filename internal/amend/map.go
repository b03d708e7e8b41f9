// Package amend collects replacement targets from a law and renders the
// amendment-by-replacement statement (타법개정문) for it.
package amend

import "github.com/Alfex4936/kolaw/internal/josa"

// Key identifies one occurrence shape: for a fixed find/replace pair only
// Particle varies. Distinct keys may still render to the same clause.
type Key struct {
	Orig     string
	Repl     string
	Particle josa.Particle
}

// Map groups locations by Key. Keys and their locations keep first-seen order;
// repeated keys merge and repeated locations under one key are dropped.
type Map struct {
	keys  []Key
	locs  map[Key][]string
	seen  map[Key]map[string]struct{}
	order []entry // every distinct (key, location) pair in the order added
}

type entry struct {
	key Key
	loc string
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{
		locs: make(map[Key][]string),
		seen: make(map[Key]map[string]struct{}),
	}
}

// Add records loc under k.
func (m *Map) Add(k Key, loc string) {
	s, ok := m.seen[k]
	if !ok {
		s = make(map[string]struct{})
		m.seen[k] = s
		m.keys = append(m.keys, k)
	}
	if _, dup := s[loc]; dup {
		return
	}
	s[loc] = struct{}{}
	m.locs[k] = append(m.locs[k], loc)
	m.order = append(m.order, entry{key: k, loc: loc})
}

// Len returns the number of distinct keys.
func (m *Map) Len() int { return len(m.keys) }

// Keys returns the keys in first-seen order.
func (m *Map) Keys() []Key { return m.keys }

// Locations returns the locations recorded for k in first-seen order.
func (m *Map) Locations(k Key) []string { return m.locs[k] }
