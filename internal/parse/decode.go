// Package parse decodes law.go.kr DRF XML into internal/model.
package parse

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/Alfex4936/kolaw/internal/model"
)

var (
	// ErrParse signals unexpected XML structure from upstream.
	ErrParse = errors.New("parse: could not decode registry response")
	// ErrNotFound signals that the registry has no matching law.
	ErrNotFound = errors.New("parse: no matching law")
)

// --- lawSearch.do ---

type searchXML struct {
	TotalCnt int `xml:"totalCnt"`
	Page     int `xml:"page"`
	Laws     []struct {
		ID   string `xml:"법령ID"`
		MST  string `xml:"법령일련번호"`
		Name string `xml:"법령명한글"`
	} `xml:"law"`
}

// SearchPage is one page of lawSearch.do results.
type SearchPage struct {
	Total int
	Page  int
	Laws  []model.LawRef
}

// DecodeSearch converts one lawSearch.do page. A page with no rows is not an
// error; the caller stops paging on a short page.
func DecodeSearch(raw []byte) (*SearchPage, error) {
	if IsHTML(raw) {
		return nil, ErrParse
	}
	var s searchXML
	if err := decode(raw, &s); err != nil {
		return nil, err
	}
	page := &SearchPage{Total: s.TotalCnt, Page: s.Page, Laws: make([]model.LawRef, 0, len(s.Laws))}
	for _, l := range s.Laws {
		name := strings.TrimSpace(l.Name)
		mst := strings.TrimSpace(l.MST)
		if name == "" || mst == "" {
			continue
		}
		page.Laws = append(page.Laws, model.LawRef{Name: name, MST: mst, ID: strings.TrimSpace(l.ID)})
	}
	return page, nil
}

// --- lawService.do ---

type lawXML struct {
	Name     string       `xml:"기본정보>법령명_한글"`
	Articles []articleXML `xml:"조문>조문단위"`
}

type articleXML struct {
	Number     string         `xml:"조문번호"`
	Branch     string         `xml:"조문가지번호"`
	Kind       string         `xml:"조문여부"`
	Title      string         `xml:"조문제목"`
	Text       string         `xml:"조문내용"`
	Paragraphs []paragraphXML `xml:"항"`
}

type paragraphXML struct {
	Number string    `xml:"항번호"`
	Text   string    `xml:"항내용"`
	Items  []itemXML `xml:"호"`
}

type itemXML struct {
	Number   string       `xml:"호번호"`
	Text     string       `xml:"호내용"`
	SubItems []subItemXML `xml:"목"`
}

type subItemXML struct {
	Number string   `xml:"목번호"`
	Text   []string `xml:"목내용"` // may repeat
}

// DecodeLaw converts a lawService.do document into a model.Law.
func DecodeLaw(raw []byte) (*model.Law, error) {
	if NoMatch(raw) {
		return nil, ErrNotFound
	}
	if IsHTML(raw) {
		return nil, ErrParse
	}
	var l lawXML
	if err := decode(raw, &l); err != nil {
		return nil, err
	}
	if l.Name == "" && len(l.Articles) == 0 {
		return nil, ErrParse
	}

	law := &model.Law{
		Name:     strings.TrimSpace(l.Name),
		Articles: make([]model.Article, 0, len(l.Articles)),
	}
	for _, a := range l.Articles {
		art := model.Article{
			Number: strings.TrimSpace(a.Number),
			Branch: strings.TrimSpace(a.Branch),
			Kind:   strings.TrimSpace(a.Kind),
			Title:  strings.TrimSpace(a.Title),
			Text:   strings.TrimSpace(a.Text),
		}
		for _, p := range a.Paragraphs {
			para := model.Paragraph{
				Number: strings.TrimSpace(p.Number),
				Text:   strings.TrimSpace(p.Text),
			}
			for _, it := range p.Items {
				item := model.Item{
					Number: strings.TrimSpace(it.Number),
					Text:   strings.TrimSpace(it.Text),
				}
				for _, s := range it.SubItems {
					item.SubItems = append(item.SubItems, model.SubItem{
						Number: strings.TrimSpace(s.Number),
						Text:   strings.Join(s.Text, "\n"),
					})
				}
				para.Items = append(para.Items, item)
			}
			art.Paragraphs = append(art.Paragraphs, para)
		}
		law.Articles = append(law.Articles, art)
	}
	return law, nil
}

func decode(raw []byte, v any) error {
	d := xml.NewDecoder(bytes.NewReader(raw))
	d.CharsetReader = charset.NewReaderLabel
	if err := d.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	return nil
}
