package josa

import (
	"strings"

	"github.com/Alfex4936/kolaw/internal/hangul"
)

// keepFunc reports whether a replacement word of the given class takes the
// same particle the original carried. When it does not, the particle has to
// alternate and the clause quotes both particle-bearing tokens.
type keepFunc func(batchim, rieul bool) bool

// rules is the particle table, one entry per particle. 으로/로 splits on ㄹ
// as well as on batchim.
var rules = map[Particle]keepFunc{
	Eul:  func(batchim, rieul bool) bool { return batchim },
	Reul: func(batchim, rieul bool) bool { return !batchim },
	Gwa:  func(batchim, rieul bool) bool { return batchim },
	Wa:   func(batchim, rieul bool) bool { return !batchim },
	I:    func(batchim, rieul bool) bool { return batchim },
	Ga:   func(batchim, rieul bool) bool { return !batchim },
	Ina:  func(batchim, rieul bool) bool { return batchim },
	Na:   func(batchim, rieul bool) bool { return !batchim },
	Euro: func(batchim, rieul bool) bool { return batchim && !rieul },
	Ro:   func(batchim, rieul bool) bool { return !batchim || rieul },
	Eun:  func(batchim, rieul bool) bool { return batchim },
	Neun: func(batchim, rieul bool) bool { return !batchim },
}

// ResolveClause phrases the substitution of orig by repl as
//
//	“<orig>”을/를 “<repl>”으로/로 한다.
//
// p is the particle orig carried in the source text. Unsupported particles
// fall back to the plain clause. The only error is hangul.ErrInvalidInput.
func ResolveClause(orig, repl string, p Particle) (string, error) {
	rc, err := hangul.Classify(repl)
	if err != nil {
		return "", err
	}

	keep, ok := rules[p]
	if !ok || keep(rc.Batchim, rc.Rieul) {
		return clause(orig, repl)
	}
	return clause(orig+string(p), repl+string(p.Pair()))
}

func clause(from, to string) (string, error) {
	fc, err := hangul.Classify(from)
	if err != nil {
		return "", err
	}
	tc, err := hangul.Classify(to)
	if err != nil {
		return "", err
	}

	obj, dir := "를", "로"
	if fc.Batchim {
		obj = "을"
	}
	if !tc.TakesRo() {
		dir = "으로"
	}

	var b strings.Builder
	b.Grow(len(from) + len(to) + 32)
	b.WriteString("“")
	b.WriteString(from)
	b.WriteString("”")
	b.WriteString(obj)
	b.WriteString(" “")
	b.WriteString(to)
	b.WriteString("”")
	b.WriteString(dir)
	b.WriteString(" 한다.")
	return b.String(), nil
}
