package amend

import (
	"strconv"
	"strings"

	"github.com/Alfex4936/kolaw/internal/chunk"
	"github.com/Alfex4936/kolaw/internal/josa"
	"github.com/Alfex4936/kolaw/internal/model"
)

// Collect scans every article, paragraph, item and sub-item of law in
// document order and records each token containing find.
// Headings (전문) are not articles and are skipped.
func Collect(law *model.Law, find, replace string) *Map {
	m := NewMap()
	if law == nil || find == "" {
		return m
	}
	for _, a := range law.Articles {
		if a.Heading() {
			continue
		}
		art := ArticleID(a.Number, a.Branch)
		scan(m, a.Text, art, find, replace)

		for _, p := range a.Paragraphs {
			para := art + ParagraphID(p.Number)
			scan(m, p.Text, para, find, replace)

			for _, it := range p.Items {
				item := para + ItemID(it.Number)
				scan(m, it.Text, item, find, replace)

				for _, s := range it.SubItems {
					scan(m, s.Text, item+SubItemID(s.Number), find, replace)
				}
			}
		}
	}
	return m
}

func scan(m *Map, text, loc, find, replace string) {
	for _, tok := range chunk.Containing(text, find) {
		c, p := josa.ExtractChunkAndParticle(tok, find)
		m.Add(Key{
			Orig:     c,
			Repl:     strings.ReplaceAll(c, find, replace),
			Particle: p,
		}, loc)
	}
}

// ArticleID renders 제58조 or 제58조의2.
func ArticleID(number, branch string) string {
	number = strings.TrimSpace(number)
	branch = strings.TrimSpace(branch)
	if branch == "" || branch == "0" {
		return "제" + number + "조"
	}
	return "제" + number + "조의" + branch
}

// ParagraphID renders 제3항 from "③" or "3"; empty for unnumbered paragraphs.
func ParagraphID(number string) string {
	n := NormalizeNumber(number)
	if n == "" {
		return ""
	}
	return "제" + n + "항"
}

// ItemID renders 제2호 from "2." (or 제2호의3 from "2의3.").
func ItemID(number string) string {
	n := trimNumber(number)
	if n == "" {
		return ""
	}
	if i := strings.Index(n, "의"); i > 0 {
		return "제" + n[:i] + "호" + n[i:]
	}
	return "제" + n + "호"
}

// SubItemID renders 가목 from "가.".
func SubItemID(number string) string {
	n := trimNumber(number)
	if n == "" {
		return ""
	}
	return n + "목"
}

// NormalizeNumber turns circled numerals (①..㊿) into Arabic digits and
// trims everything else.
func NormalizeNumber(s string) string {
	s = trimNumber(s)
	r := []rune(s)
	if len(r) != 1 {
		return s
	}
	switch c := r[0]; {
	case c >= '①' && c <= '⑳':
		return strconv.Itoa(int(c-'①') + 1)
	case c >= '㉑' && c <= '㉟':
		return strconv.Itoa(int(c-'㉑') + 21)
	case c >= '㊱' && c <= '㊿':
		return strconv.Itoa(int(c-'㊱') + 36)
	}
	return s
}

func trimNumber(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ".")
}
