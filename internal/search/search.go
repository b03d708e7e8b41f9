// Package search reduces a law to the minimal highlighted context around a
// keyword: one HTML fragment per matching article.
package search

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"

	"github.com/Alfex4936/kolaw/internal/model"
)

const (
	markOpen  = "<span style='color:red'>"
	markClose = "</span>"

	itemIndent    = "&nbsp;&nbsp;"
	subItemIndent = "&nbsp;&nbsp;&nbsp;&nbsp;"
	lineBreak     = "<br>"
	blockOpen     = "<div style='margin:0;padding:0'>"
	blockClose    = "</div>"

	// every rune unicode.IsSpace accepts, so Highlight agrees with Matches
	gap = `[\s\v\x{85}\p{Z}]*`
)

// Reducer matches one query against law text, ignoring whitespace.
type Reducer struct {
	clean string
	re    *regexp.Regexp
}

// New compiles query. Whitespace in query is ignored for matching; an
// occurrence in the text may itself contain whitespace between runes.
func New(query string) *Reducer {
	clean := Clean(query)
	r := &Reducer{clean: clean}
	if clean == "" {
		return r
	}

	runes := []rune(clean)
	var b strings.Builder
	for i, c := range runes {
		b.WriteString(regexp.QuoteMeta(string(c)))
		if i != len(runes)-1 {
			b.WriteString(gap)
		}
	}
	r.re = regexp.MustCompile(b.String())
	return r
}

// Document returns one fragment per article of law that mentions query.
func Document(law *model.Law, query string) []string {
	return New(query).Law(law)
}

// Clean strips every whitespace rune from s.
func Clean(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// Matches reports whether text contains the query once whitespace is removed.
func (r *Reducer) Matches(text string) bool {
	return r.clean != "" && strings.Contains(Clean(text), r.clean)
}

// Highlight HTML-escapes text and wraps every occurrence of the query.
func (r *Reducer) Highlight(text string) string {
	return mark(text, 0, len(text), r.find(text))
}

func (r *Reducer) find(text string) [][]int {
	if r.re == nil {
		return nil
	}
	return r.re.FindAllStringIndex(text, -1)
}

// mark escapes text[lo:hi] and wraps the parts of it covered by locs.
// Occurrences reaching outside [lo, hi) are clipped.
func mark(text string, lo, hi int, locs [][]int) string {
	var b strings.Builder
	prev := lo
	for _, loc := range locs {
		start, end := max(loc[0], lo), min(loc[1], hi)
		if start >= end {
			continue
		}
		b.WriteString(html.EscapeString(text[prev:start]))
		b.WriteString(markOpen)
		b.WriteString(html.EscapeString(text[start:end]))
		b.WriteString(markClose)
		prev = end
	}
	b.WriteString(html.EscapeString(text[prev:hi]))
	return b.String()
}

// Law reduces every article of law. Headings (전문) are skipped.
func (r *Reducer) Law(law *model.Law) []string {
	if law == nil || r.clean == "" {
		return nil
	}
	var out []string
	for _, a := range law.Articles {
		if a.Heading() {
			continue
		}
		if frag := r.Article(a); frag != "" {
			out = append(out, frag)
		}
	}
	return out
}

// Article renders the matching parts of a, or "" when nothing matches.
//
// The article text is emitted when it matches. A paragraph is emitted when
// it or any of its items/sub-items matches; the first such paragraph of an
// article whose own text did not match carries the article text in front of
// it, later ones stand alone.
func (r *Reducer) Article(a model.Article) string {
	var parts []string

	articleHit := r.Matches(a.Text)
	if articleHit {
		parts = append(parts, r.Highlight(a.Text))
	}

	firstParagraph := false
	for _, p := range a.Paragraphs {
		below := r.children(p)
		if !r.Matches(p.Text) && len(below) == 0 {
			continue
		}
		switch {
		case !articleHit && !firstParagraph:
			head := r.Highlight(a.Text)
			if p.Text != "" {
				head += " " + r.Highlight(p.Text)
			}
			parts = append(parts, head)
		case p.Text != "":
			parts = append(parts, r.Highlight(p.Text))
		}
		firstParagraph = true
		parts = append(parts, below...)
	}
	return strings.Join(parts, lineBreak)
}

// children renders the matching items and sub-items of p.
func (r *Reducer) children(p model.Paragraph) []string {
	var out []string
	for _, it := range p.Items {
		if r.Matches(it.Text) {
			out = append(out, itemIndent+r.Highlight(it.Text))
		}
		for _, s := range it.SubItems {
			if block := r.subItem(s.Text); block != "" {
				out = append(out, block)
			}
		}
	}
	return out
}

// subItem highlights the whole text before splitting it into lines, so an
// occurrence broken across a line is marked on both lines.
func (r *Reducer) subItem(text string) string {
	if !r.Matches(text) {
		return ""
	}
	locs := r.find(text)

	var lines []string
	for start := 0; start <= len(text); {
		end := strings.IndexByte(text[start:], '\n')
		if end < 0 {
			end = len(text)
		} else {
			end += start
		}
		line := text[start:end]
		lo := start + len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))
		hi := start + len(strings.TrimRightFunc(line, unicode.IsSpace))
		if lo < hi {
			lines = append(lines, subItemIndent+mark(text, lo, hi, locs))
		}
		start = end + 1
	}
	if len(lines) == 0 {
		return ""
	}
	return blockOpen + strings.Join(lines, lineBreak) + blockClose
}
