package josa

import "strings"

// ExtractChunkAndParticle splits a token found in article text into the
// matched chunk and the particle glued to its end.
//
// The token must end in searchWord followed by exactly one known particle
// (or nothing) for the particle to be recognised. Anything else keeps the
// whole token as the chunk with no particle.
func ExtractChunkAndParticle(token, searchWord string) (string, Particle) {
	if searchWord == "" || !strings.Contains(token, searchWord) {
		return token, None
	}
	for _, p := range Particles {
		if strings.HasSuffix(token, searchWord+string(p)) {
			return strings.TrimSuffix(token, string(p)), p
		}
	}
	return token, None
}
