package amend

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Alfex4936/kolaw/internal/josa"
)

// NoTargets is returned in place of an empty batch so callers can tell
// "ran, found nothing" from "did not run".
const NoTargets = "⚠️ 개정 대상 조문이 없습니다."

// Ordinal prefixes the index-th statement: ①..⑳ for 0..19, then (21), (22)...
// Circled glyphs beyond ⑳ are not used.
func Ordinal(index int) string {
	if index >= 0 && index < 20 {
		return string(rune('①' + index))
	}
	return "(" + strconv.Itoa(index+1) + ")"
}

// GroupLocations joins locations as "A", "A 및 B" or "A·B 및 C".
func GroupLocations(locs []string) string {
	switch len(locs) {
	case 0:
		return ""
	case 1:
		return locs[0]
	}
	return strings.Join(locs[:len(locs)-1], "·") + " 및 " + locs[len(locs)-1]
}

// Build renders the statement for one law: a header line followed by one
// "<locations> 중 <clause>" line per distinct clause. Keys that resolve to
// the same clause share a line; its locations keep the order they were
// found in, without repeats.
//
// A key whose clause cannot be resolved is left out and reported in the
// returned error; the statement is still returned when at least one line
// was rendered.
func Build(lawName string, m *Map, index int) (string, error) {
	var errs []error
	clauses := make(map[Key]string, m.Len())
	for _, k := range m.Keys() {
		clause, err := josa.ResolveClause(k.Orig, k.Repl, k.Particle)
		if err != nil {
			errs = append(errs, fmt.Errorf("amend: %s %q: %w", lawName, k.Orig, err))
			continue
		}
		clauses[k] = clause
	}

	var order []string
	locs := make(map[string][]string)
	seen := make(map[string]map[string]struct{})
	for _, e := range m.order {
		clause, ok := clauses[e.key]
		if !ok {
			continue
		}
		s, ok := seen[clause]
		if !ok {
			s = make(map[string]struct{})
			seen[clause] = s
			order = append(order, clause)
		}
		if _, dup := s[e.loc]; dup {
			continue
		}
		s[e.loc] = struct{}{}
		locs[clause] = append(locs[clause], e.loc)
	}
	if len(order) == 0 {
		return "", errors.Join(errs...)
	}

	var b strings.Builder
	b.WriteString(Ordinal(index))
	b.WriteString(" ")
	b.WriteString(lawName)
	b.WriteString(" 일부를 다음과 같이 개정한다.")
	for _, clause := range order {
		b.WriteString("\n")
		b.WriteString(GroupLocations(locs[clause]))
		b.WriteString(" 중 ")
		b.WriteString(clause)
	}
	return b.String(), errors.Join(errs...)
}
