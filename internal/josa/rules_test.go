package josa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alfex4936/kolaw/internal/hangul"
)

func TestResolveClauseTable(t *testing.T) {
	cases := []struct {
		name       string
		orig, repl string
		p          Particle
		want       string
	}{
		{"none/plain", "위원회", "협의회", None, "“위원회”를 “협의회”로 한다."},
		{"none/rieul", "위원회", "달걀", None, "“위원회”를 “달걀”로 한다."},
		{"none/batchim", "위원회", "법원", None, "“위원회”를 “법원”으로 한다."},
		{"none/orig batchim", "법원", "위원회", None, "“법원”을 “위원회”로 한다."},

		{"을 keep", "법원", "법관", Eul, "“법원”을 “법관”으로 한다."},
		{"을 rewrite", "법원", "위원회", Eul, "“법원을”을 “위원회를”로 한다."},
		{"를 keep", "위원회", "협의회", Reul, "“위원회”를 “협의회”로 한다."},
		{"를 rewrite", "위원회", "법원", Reul, "“위원회를”을 “법원을”로 한다."},

		{"과 keep", "법원", "법관", Gwa, "“법원”을 “법관”으로 한다."},
		{"과 rewrite", "법원", "위원회", Gwa, "“법원과”를 “위원회와”로 한다."},
		{"와 keep", "위원회", "협의회", Wa, "“위원회”를 “협의회”로 한다."},
		{"와 rewrite", "위원회", "법원", Wa, "“위원회와”를 “법원과”로 한다."},

		{"이 keep", "법원", "법관", I, "“법원”을 “법관”으로 한다."},
		{"이 rewrite", "법원", "위원회", I, "“법원이”를 “위원회가”로 한다."},
		{"가 keep", "위원회", "협의회", Ga, "“위원회”를 “협의회”로 한다."},
		{"가 rewrite", "위원회", "법원", Ga, "“위원회가”를 “법원이”로 한다."},

		{"이나 keep", "법원", "법관", Ina, "“법원”을 “법관”으로 한다."},
		{"이나 rewrite", "법원", "위원회", Ina, "“법원이나”를 “위원회나”로 한다."},
		{"나 keep", "위원회", "협의회", Na, "“위원회”를 “협의회”로 한다."},
		{"나 rewrite", "위원회", "법원", Na, "“위원회나”를 “법원이나”로 한다."},

		{"으로 keep", "법원", "법관", Euro, "“법원”을 “법관”으로 한다."},
		{"으로 rewrite/plain", "법원", "위원회", Euro, "“법원으로”를 “위원회로”로 한다."},
		{"으로 rewrite/rieul", "법원", "달걀", Euro, "“법원으로”를 “달걀로”로 한다."},
		{"로 keep/plain", "위원회", "협의회", Ro, "“위원회”를 “협의회”로 한다."},
		{"로 keep/rieul", "위원회", "달걀", Ro, "“위원회”를 “달걀”로 한다."},
		{"로 rewrite", "위원회", "법원", Ro, "“위원회로”를 “법원으로”로 한다."},

		{"은 keep", "법원", "법관", Eun, "“법원”을 “법관”으로 한다."},
		{"은 rewrite", "법원", "위원회", Eun, "“법원은”을 “위원회는”으로 한다."},
		{"는 keep", "위원회", "협의회", Neun, "“위원회”를 “협의회”로 한다."},
		{"는 rewrite", "위원회", "달걀", Neun, "“위원회는”을 “달걀은”으로 한다."},

		{"unsupported", "위원회", "법원", Particle("에서"), "“위원회”를 “법원”으로 한다."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveClause(tc.orig, tc.repl, tc.p)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveClauseCoversEveryParticle(t *testing.T) {
	for _, p := range Particles {
		_, ok := rules[p]
		assert.True(t, ok, "no rule for %s", p)
		assert.Equal(t, p, p.Pair().Pair(), "pair of %s is not symmetric", p)
	}
	assert.Len(t, rules, 12)
}

func TestResolveClauseIdempotent(t *testing.T) {
	for _, p := range append([]Particle{None}, Particles...) {
		a, err := ResolveClause("위원회", "달걀", p)
		require.NoError(t, err)
		b, err := ResolveClause("위원회", "달걀", p)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestResolveClauseInvalidInput(t *testing.T) {
	_, err := ResolveClause("위원회", "OECD", None)
	assert.True(t, errors.Is(err, hangul.ErrInvalidInput))

	_, err = ResolveClause("OECD", "위원회", Neun)
	assert.True(t, errors.Is(err, hangul.ErrInvalidInput))
}

func TestParticle(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "으로", Euro.String())
	assert.True(t, Ina.Supported())
	assert.False(t, Particle("에게").Supported())
	assert.Equal(t, None, Particle("에게").Pair())
}
