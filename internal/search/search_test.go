package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/Alfex4936/kolaw/internal/model"
)

const (
	hl    = "<span style='color:red'>달걀</span>"
	sub4  = "&nbsp;&nbsp;&nbsp;&nbsp;"
	block = "<div style='margin:0;padding:0'>"
)

func TestSubItemOnlyKeepsParagraphContext(t *testing.T) {
	a := model.Article{
		Number: "10",
		Text:   "제10조(허가)",
		Paragraphs: []model.Paragraph{{
			Number: "①",
			Text:   "① 영업을 하려면 허가를 받아야 한다.",
			Items: []model.Item{{
				Number: "1.",
				Text:   "1. 식품 제조업",
				SubItems: []model.SubItem{
					{Number: "가.", Text: "가. 달걀 가공업"},
					{Number: "나.", Text: "나. 달 걀 수입업"},
					{Number: "다.", Text: "다. 기타"},
				},
			}},
		}},
	}

	got := New("달걀").Article(a)
	want := "제10조(허가) ① 영업을 하려면 허가를 받아야 한다." +
		"<br>" + block + sub4 + "가. " + hl + " 가공업</div>" +
		"<br>" + block + sub4 + "나. <span style='color:red'>달 걀</span> 수입업</div>"
	assert.Equal(t, want, got)
	assert.Equal(t, 1, strings.Count(got, "제10조"))
}

func TestFirstParagraphCarriesArticle(t *testing.T) {
	a := model.Article{
		Text: "제3조(정의)",
		Paragraphs: []model.Paragraph{
			{Number: "①", Text: "① 달걀이란 알을 말한다."},
			{Number: "②", Text: "② 다른 것"},
			{Number: "③", Text: "③ 달걀 가공품"},
		},
	}
	got := strings.Split(New("달걀").Article(a), "<br>")
	require.Len(t, got, 2)
	assert.Equal(t, "제3조(정의) ① "+hl+"이란 알을 말한다.", got[0])
	assert.Equal(t, "③ "+hl+" 가공품", got[1])
}

func TestArticleMatchEmitsParagraphsStandalone(t *testing.T) {
	a := model.Article{
		Text: "제4조(달걀) 달걀은 신선하여야 한다.",
		Paragraphs: []model.Paragraph{
			{Number: "①", Text: "① 달걀 보관"},
		},
	}
	got := strings.Split(New("달걀").Article(a), "<br>")
	require.Len(t, got, 2)
	assert.Equal(t, "제4조("+hl+") "+hl+"은 신선하여야 한다.", got[0])
	assert.Equal(t, "① "+hl+" 보관", got[1])
}

func TestItemIndent(t *testing.T) {
	a := model.Article{
		Text: "제5조(금지)",
		Paragraphs: []model.Paragraph{{
			Text: "",
			Items: []model.Item{
				{Number: "1.", Text: "1. 썩은 달걀"},
				{Number: "2.", Text: "2. 상한 우유"},
			},
		}},
	}
	got := New("달걀").Article(a)
	assert.Equal(t, "제5조(금지)<br>&nbsp;&nbsp;1. 썩은 "+hl, got)
}

func TestLaterEmptyParagraphAddsNoBlankLine(t *testing.T) {
	a := model.Article{
		Text: "제6조(금지)",
		Paragraphs: []model.Paragraph{
			{Number: "①", Text: "① 달걀 판매"},
			{Items: []model.Item{{Number: "1.", Text: "1. 깨진 달걀"}}},
		},
	}
	got := New("달걀").Article(a)
	assert.Equal(t, "제6조(금지) ① "+hl+" 판매<br>&nbsp;&nbsp;1. 깨진 "+hl, got)
	assert.NotContains(t, got, "<br><br>")
}

func TestHighlightUnicodeSpaces(t *testing.T) {
	for _, sp := range []string{"\u3000", "\u00a0", "\u2003", "\v", "\u0085"} {
		text := "제1조 식품" + sp + "위생"
		got := Document(&model.Law{Articles: []model.Article{{Text: text}}}, "식품위생")
		require.Len(t, got, 1, "%q", sp)
		assert.Equal(t, "제1조 <span style='color:red'>식품"+sp+"위생</span>", got[0], "%q", sp)
	}
}

func TestSubItemMatchAcrossLines(t *testing.T) {
	a := model.Article{
		Text: "제8조(범위)",
		Paragraphs: []model.Paragraph{{
			Text: "① 다음 각 호",
			Items: []model.Item{{
				Text:     "1. 영업",
				SubItems: []model.SubItem{{Text: "가. 식품\n위생 업무\n나. 기타"}},
			}},
		}},
	}
	got := New("식품위생").Article(a)
	assert.Equal(t, "제8조(범위) ① 다음 각 호<br>"+block+
		sub4+"가. <span style='color:red'>식품</span><br>"+
		sub4+"<span style='color:red'>위생</span> 업무<br>"+
		sub4+"나. 기타</div>", got)
}

func TestNoMatch(t *testing.T) {
	a := model.Article{Text: "제1조(목적) 이 법은 식품에 관한 법이다."}
	assert.Equal(t, "", New("달걀").Article(a))
	assert.Nil(t, Document(&model.Law{Articles: []model.Article{a}}, "달걀"))
	assert.Nil(t, Document(&model.Law{Articles: []model.Article{a}}, "  "))
	assert.Nil(t, Document(nil, "달걀"))
}

func TestDocumentSkipsHeadingsAndKeepsOrder(t *testing.T) {
	law := &model.Law{Articles: []model.Article{
		{Kind: "전문", Text: "제1장 달걀"},
		{Kind: "조문", Text: "제2조 달걀"},
		{Kind: "조문", Text: "제3조 우유"},
		{Kind: "조문", Text: "제4조 달걀"},
	}}
	got := Document(law, "달 걀")
	assert.Equal(t, []string{"제2조 " + hl, "제4조 " + hl}, got)
}

func TestMatchesIgnoresWhitespace(t *testing.T) {
	r := New("식품 위생")
	assert.True(t, r.Matches("식품위생법"))
	assert.True(t, r.Matches("식 품\n위생"))
	assert.False(t, r.Matches("식품 안전"))
	assert.False(t, New("").Matches("아무거나"))
}

func TestHighlightEscapes(t *testing.T) {
	r := New("A&B")
	got := r.Highlight(`<p> A & B "인용"`)
	assert.Equal(t, `&lt;p&gt; <span style='color:red'>A &amp; B</span> &#34;인용&#34;`, got)
	assert.Equal(t, "a&lt;b", New("").Highlight("a<b"))
}

// Fragments must parse as HTML without losing the highlighted text.
func TestFragmentsAreWellFormed(t *testing.T) {
	law := &model.Law{Articles: []model.Article{{
		Text: "제7조(표시)",
		Paragraphs: []model.Paragraph{{
			Text: "① <달걀> 표시",
			Items: []model.Item{{
				Text:     "1. 달걀",
				SubItems: []model.SubItem{{Text: "가. 달걀\n  나. 달걀껍데기  \n"}},
			}},
		}},
	}}}
	frags := Document(law, "달걀")
	require.Len(t, frags, 1)

	doc, err := html.Parse(strings.NewReader(frags[0]))
	require.NoError(t, err)

	var spans int
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "span" {
			spans++
			require.NotNil(t, n.FirstChild)
			assert.Equal(t, "달걀", n.FirstChild.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	assert.Equal(t, 4, spans)
}
