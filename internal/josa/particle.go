// Package josa resolves Korean particle (조사) agreement for
// amendment-by-replacement clauses and splits particles off matched tokens.
package josa

// Particle is a grammatical marker attached directly to a noun.
type Particle string

// None marks a token with no recognised particle.
const None Particle = ""

const (
	Eul  Particle = "을"
	Reul Particle = "를"
	Gwa  Particle = "과"
	Wa   Particle = "와"
	I    Particle = "이"
	Ga   Particle = "가"
	Ina  Particle = "이나"
	Na   Particle = "나"
	Euro Particle = "으로"
	Ro   Particle = "로"
	Neun Particle = "는"
	Eun  Particle = "은"
)

// Particles lists the supported set, longest first so 으로/이나 win over 로/나.
var Particles = []Particle{Euro, Ina, Eul, Reul, Gwa, Wa, I, Ga, Na, Ro, Neun, Eun}

var pairs = map[Particle]Particle{
	Eul: Reul, Reul: Eul,
	Gwa: Wa, Wa: Gwa,
	I: Ga, Ga: I,
	Ina: Na, Na: Ina,
	Euro: Ro, Ro: Euro,
	Neun: Eun, Eun: Neun,
}

// Pair returns the euphonic partner of p, or None when p is unsupported.
func (p Particle) Pair() Particle { return pairs[p] }

// Supported reports whether p is one of the twelve known particles.
func (p Particle) Supported() bool {
	_, ok := pairs[p]
	return ok
}

func (p Particle) String() string {
	if p == None {
		return "none"
	}
	return string(p)
}
