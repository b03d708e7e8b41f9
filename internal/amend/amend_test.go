package amend

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alfex4936/kolaw/internal/hangul"
	"github.com/Alfex4936/kolaw/internal/josa"
	"github.com/Alfex4936/kolaw/internal/model"
)

func sampleLaw() *model.Law {
	return &model.Law{
		Name: "식품위생법",
		MST:  "123",
		Articles: []model.Article{
			{Number: "1", Kind: "전문", Text: "제1장 위원회"},
			{Number: "58", Kind: "조문", Text: "제58조(위원회의 설치)",
				Paragraphs: []model.Paragraph{
					{Number: "①", Text: "① 위원회는 심의한다."},
					{Number: "②", Text: "② 위원회는 위원회를 둔다.",
						Items: []model.Item{
							{Number: "1.", Text: "1. 위원회가 정하는 사항",
								SubItems: []model.SubItem{
									{Number: "가.", Text: "가. 위원회는\n나. 기타"},
								}},
						}},
				}},
			{Number: "58", Branch: "2", Kind: "조문", Text: "제58조의2(준용) 위원회는 준용한다."},
		},
	}
}

func TestCollectGroupsByKey(t *testing.T) {
	m := Collect(sampleLaw(), "위원회", "협의회")

	want := []Key{
		{"위원회의", "협의회의", josa.None},
		{"위원회", "협의회", josa.Neun},
		{"위원회", "협의회", josa.Reul},
		{"위원회", "협의회", josa.Ga},
	}
	require.Equal(t, want, m.Keys())

	assert.Equal(t, []string{"제58조"}, m.Locations(want[0]))
	assert.Equal(t,
		[]string{"제58조제1항", "제58조제2항", "제58조제2항제1호가목", "제58조의2"},
		m.Locations(want[1]))
	assert.Equal(t, []string{"제58조제2항"}, m.Locations(want[2]))
	assert.Equal(t, []string{"제58조제2항제1호"}, m.Locations(want[3]))
}

func TestCollectNothing(t *testing.T) {
	assert.Equal(t, 0, Collect(sampleLaw(), "달걀", "계란").Len())
	assert.Equal(t, 0, Collect(nil, "위원회", "협의회").Len())
	assert.Equal(t, 0, Collect(sampleLaw(), "", "협의회").Len())
}

func TestMapMergesDuplicates(t *testing.T) {
	m := NewMap()
	k := Key{"위원회", "협의회", josa.Neun}
	m.Add(k, "제1조")
	m.Add(k, "제2조")
	m.Add(k, "제1조")
	m.Add(Key{"위원회", "협의회", josa.Neun}, "제3조")

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, []string{"제1조", "제2조", "제3조"}, m.Locations(k))
}

func TestGroupLocations(t *testing.T) {
	assert.Equal(t, "", GroupLocations(nil))
	assert.Equal(t, "제58조제1항", GroupLocations([]string{"제58조제1항"}))
	assert.Equal(t, "제58조제1항 및 제58조제2항",
		GroupLocations([]string{"제58조제1항", "제58조제2항"}))
	assert.Equal(t, "A·B 및 C", GroupLocations([]string{"A", "B", "C"}))
}

func TestOrdinal(t *testing.T) {
	assert.Equal(t, "①", Ordinal(0))
	assert.Equal(t, "⑩", Ordinal(9))
	assert.Equal(t, "⑳", Ordinal(19))
	assert.Equal(t, "(21)", Ordinal(20))
	assert.Equal(t, "(100)", Ordinal(99))
}

func TestBuild(t *testing.T) {
	m := Collect(sampleLaw(), "위원회", "협의회")
	got, err := Build("식품위생법", m, 1)
	require.NoError(t, err)

	want := strings.Join([]string{
		"② 식품위생법 일부를 다음과 같이 개정한다.",
		"제58조 중 “위원회의”를 “협의회의”로 한다.",
		"제58조제1항·제58조제2항·제58조제2항제1호·제58조제2항제1호가목 및 제58조의2 중 “위원회”를 “협의회”로 한다.",
	}, "\n")
	assert.Equal(t, want, got)
}

func oneArticle(text string) *model.Law {
	return &model.Law{Articles: []model.Article{{Number: "1", Kind: "조문", Text: text}}}
}

func TestBuildMergesKeysWithSameClause(t *testing.T) {
	m := Collect(oneArticle("제1조 위원회는 위원회를 둔다."), "위원회", "협의회")
	require.Equal(t, 2, m.Len())

	got, err := Build("법", m, 0)
	require.NoError(t, err)
	assert.Equal(t, "① 법 일부를 다음과 같이 개정한다.\n제1조 중 “위원회”를 “협의회”로 한다.", got)
}

func TestBuildKeepsDistinctClauses(t *testing.T) {
	m := Collect(oneArticle("제1조 위원회는 위원회를 둔다."), "위원회", "달걀")

	got, err := Build("법", m, 0)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"① 법 일부를 다음과 같이 개정한다.",
		"제1조 중 “위원회는”을 “달걀은”으로 한다.",
		"제1조 중 “위원회를”을 “달걀을”로 한다.",
	}, "\n"), got)
}

func TestBuildMergedLocationsFollowDocumentOrder(t *testing.T) {
	m := NewMap()
	m.Add(Key{"위원회", "협의회", josa.Neun}, "제1조")
	m.Add(Key{"위원회", "협의회", josa.Reul}, "제2조")
	m.Add(Key{"위원회", "협의회", josa.Neun}, "제3조")
	m.Add(Key{"위원회", "협의회", josa.Reul}, "제1조")

	got, err := Build("법", m, 0)
	require.NoError(t, err)
	assert.Equal(t, "① 법 일부를 다음과 같이 개정한다.\n제1조·제2조 및 제3조 중 “위원회”를 “협의회”로 한다.", got)
}

func TestBuildOneLinePerKey(t *testing.T) {
	m := NewMap()
	k := Key{"위원회", "달걀", josa.Neun}
	for _, loc := range []string{"제1조", "제2조", "제3조"} {
		m.Add(k, loc)
	}
	got, err := Build("달걀법", m, 20)
	require.NoError(t, err)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "(21) 달걀법 일부를 다음과 같이 개정한다.", lines[0])
	assert.Equal(t, "제1조·제2조 및 제3조 중 “위원회는”을 “달걀은”으로 한다.", lines[1])
}

func TestBuildInvalidInput(t *testing.T) {
	m := NewMap()
	m.Add(Key{"위원회", "OECD", josa.None}, "제1조")
	got, err := Build("법", m, 0)
	assert.True(t, errors.Is(err, hangul.ErrInvalidInput))
	assert.Equal(t, "", got)
}

func TestBuildSkipsOnlyTheBadClause(t *testing.T) {
	m := NewMap()
	m.Add(Key{"위원회2", "협의회2", josa.None}, "제1조")
	m.Add(Key{"위원회", "협의회", josa.Neun}, "제2조")

	got, err := Build("법", m, 0)
	assert.True(t, errors.Is(err, hangul.ErrInvalidInput))
	assert.Equal(t, "① 법 일부를 다음과 같이 개정한다.\n제2조 중 “위원회”를 “협의회”로 한다.", got)
}

func TestBuildEmpty(t *testing.T) {
	got, err := Build("법", NewMap(), 0)
	assert.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestIDs(t *testing.T) {
	assert.Equal(t, "제58조", ArticleID("58", ""))
	assert.Equal(t, "제58조", ArticleID(" 58 ", "0"))
	assert.Equal(t, "제58조의2", ArticleID("58", "2"))
	assert.Equal(t, "제3항", ParagraphID("③"))
	assert.Equal(t, "제3항", ParagraphID("3"))
	assert.Equal(t, "", ParagraphID(""))
	assert.Equal(t, "제2호", ItemID("2."))
	assert.Equal(t, "제2호의3", ItemID("2의3."))
	assert.Equal(t, "가목", SubItemID("가."))
	assert.Equal(t, "21", NormalizeNumber("㉑"))
	assert.Equal(t, "50", NormalizeNumber("㊿"))
	assert.Equal(t, "20", NormalizeNumber("⑳"))
}
