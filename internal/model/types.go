package model

// LawRef is one candidate returned by the registry search.
type LawRef struct {
	Name string `json:"name" yaml:"name"` // 법령명한글
	MST  string `json:"mst" yaml:"mst"`   // 법령일련번호
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
}

// Law is a structured legal document: Law → Article → Paragraph → Item → SubItem.
// It is built fresh per retrieval and treated as read-only afterwards.
type Law struct {
	Name     string    `json:"name"`
	MST      string    `json:"mst"`
	Articles []Article `json:"articles"`
}

// Article is one 조문단위.
type Article struct {
	Number     string      `json:"number"`           // 조문번호, e.g. "58"
	Branch     string      `json:"branch,omitempty"` // 조문가지번호, e.g. "2" for 제58조의2
	Kind       string      `json:"kind,omitempty"`   // 조문여부: "조문" | "전문"
	Title      string      `json:"title,omitempty"`  // 조문제목
	Text       string      `json:"text"`             // 조문내용
	Paragraphs []Paragraph `json:"paragraphs,omitempty"`
}

// Heading reports whether the unit is a chapter/section heading (전문)
// rather than an article.
func (a Article) Heading() bool { return a.Kind == "전문" }

// Paragraph is one 항. Number may be empty when the article is unnumbered.
type Paragraph struct {
	Number string `json:"number,omitempty"` // 항번호, e.g. "①"
	Text   string `json:"text"`             // 항내용
	Items  []Item `json:"items,omitempty"`
}

// Item is one 호.
type Item struct {
	Number   string    `json:"number"` // 호번호, e.g. "1."
	Text     string    `json:"text"`   // 호내용
	SubItems []SubItem `json:"subItems,omitempty"`
}

// SubItem is one 목. Text may span several lines.
type SubItem struct {
	Number string `json:"number"` // 목번호, e.g. "가."
	Text   string `json:"text"`   // 목내용
}

// Omission records a law skipped during a batch.
type Omission struct {
	Law    string `json:"law" yaml:"law"`
	MST    string `json:"mst" yaml:"mst"`
	Reason string `json:"reason" yaml:"reason"`
}

// AmendResult is JSON-serialisable as-is.
type AmendResult struct {
	Find       string     `json:"find" yaml:"find"`
	Replace    string     `json:"replace" yaml:"replace"`
	Statements []string   `json:"statements" yaml:"statements"`                   // one per law, or the no-targets sentinel
	Empty      bool       `json:"empty" yaml:"empty"`                             // true when Statements holds only the sentinel
	Omissions  []Omission `json:"omissions,omitempty" yaml:"omissions,omitempty"` // skipped laws
}

// LawHits holds the highlighted fragments of one law, one per matching article.
type LawHits struct {
	Law       string   `json:"law" yaml:"law"`
	Fragments []string `json:"fragments" yaml:"fragments"`
}

// SearchResult keeps laws in candidate order.
type SearchResult struct {
	Query     string     `json:"query" yaml:"query"`
	Found     int        `json:"found" yaml:"found"` // number of laws with at least one fragment
	Laws      []LawHits  `json:"laws" yaml:"laws"`
	Message   string     `json:"message,omitempty" yaml:"message,omitempty"` // no-results sentinel when Found == 0
	Omissions []Omission `json:"omissions,omitempty" yaml:"omissions,omitempty"`
}
