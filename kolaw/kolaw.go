// Package kolaw drafts Korean amendment-by-replacement statements (타법개정문)
// and searches statutes for a keyword.
//
// Both entry points walk the candidate laws one at a time. A law that cannot
// be retrieved is skipped and reported as an omission; it never aborts the
// batch.
package kolaw

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Alfex4936/kolaw/internal/amend"
	"github.com/Alfex4936/kolaw/internal/hangul"
	"github.com/Alfex4936/kolaw/internal/model"
	"github.com/Alfex4936/kolaw/internal/search"
)

// NoTargets is the single statement returned when no law needs amending.
const NoTargets = amend.NoTargets

// NoResults is the message returned when no law matches a search.
const NoResults = "⚠️ 검색 결과가 없습니다."

// Registry supplies candidate laws and their structured text.
type Registry interface {
	Candidates(ctx context.Context, query string) ([]model.LawRef, error)
	Fetch(ctx context.Context, ref model.LawRef) (*model.Law, error)
}

// Option configures Amend and Search.
type Option func(*options)

type options struct {
	log     *zap.Logger
	metrics *Metrics
}

// WithLogger sets the logger used to report omissions.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithMetrics records batch counters into m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func newOptions(opts []Option) *options {
	o := &options{log: zap.NewNop()}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

func (o *options) omit(op string, ref model.LawRef, err error) model.Omission {
	o.log.Warn("law skipped",
		zap.String("op", op),
		zap.String("law", ref.Name),
		zap.String("mst", ref.MST),
		zap.Error(err))
	o.metrics.omission(op)
	return model.Omission{Law: ref.Name, MST: ref.MST, Reason: err.Error()}
}

// Amend builds one statement per candidate law that contains find, replacing
// it with replace. When no law yields a target, Statements holds NoTargets
// alone and Empty is set.
//
// replace must end in a Hangul syllable; otherwise ErrInvalidInput is
// returned before any retrieval.
func Amend(ctx context.Context, reg Registry, find, replace string, opts ...Option) (*model.AmendResult, error) {
	find, replace = strings.TrimSpace(find), strings.TrimSpace(replace)
	if find == "" || replace == "" {
		return nil, ErrEmptyQuery
	}
	if _, err := hangul.Classify(replace); err != nil {
		return nil, fmt.Errorf("kolaw: replacement %q: %w", replace, err)
	}

	o := newOptions(opts)
	o.metrics.request(opAmend)

	refs, err := reg.Candidates(ctx, find)
	if err != nil {
		return nil, fmt.Errorf("kolaw: list candidates: %w", err)
	}
	o.log.Info("amend", zap.String("find", find), zap.String("replace", replace), zap.Int("candidates", len(refs)))

	res := &model.AmendResult{Find: find, Replace: replace}
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		law, err := fetch(ctx, reg, ref)
		if err != nil {
			res.Omissions = append(res.Omissions, o.omit(opAmend, ref, err))
			continue
		}
		o.metrics.law(opAmend)

		m := amend.Collect(law, find, replace)
		if m.Len() == 0 {
			continue
		}
		stmt, err := amend.Build(lawName(law, ref), m, len(res.Statements))
		if err != nil {
			res.Omissions = append(res.Omissions, o.omit(opAmend, ref, err))
		}
		if stmt != "" {
			res.Statements = append(res.Statements, stmt)
		}
	}

	if len(res.Statements) == 0 {
		res.Statements = []string{NoTargets}
		res.Empty = true
	}
	return res, nil
}

// Search returns, per candidate law in registry order, one highlighted HTML
// fragment for each article mentioning query. Whitespace is ignored when
// matching.
func Search(ctx context.Context, reg Registry, query string, opts ...Option) (*model.SearchResult, error) {
	query = strings.TrimSpace(query)
	if search.Clean(query) == "" {
		return nil, ErrEmptyQuery
	}

	o := newOptions(opts)
	o.metrics.request(opSearch)

	refs, err := reg.Candidates(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("kolaw: list candidates: %w", err)
	}
	o.log.Info("search", zap.String("query", query), zap.Int("candidates", len(refs)))

	r := search.New(query)
	res := &model.SearchResult{Query: query, Laws: []model.LawHits{}}
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		law, err := fetch(ctx, reg, ref)
		if err != nil {
			res.Omissions = append(res.Omissions, o.omit(opSearch, ref, err))
			continue
		}
		o.metrics.law(opSearch)

		if frags := r.Law(law); len(frags) > 0 {
			res.Laws = append(res.Laws, model.LawHits{Law: lawName(law, ref), Fragments: frags})
		}
	}

	res.Found = len(res.Laws)
	if res.Found == 0 {
		res.Message = NoResults
	}
	return res, nil
}

func fetch(ctx context.Context, reg Registry, ref model.LawRef) (*model.Law, error) {
	law, err := reg.Fetch(ctx, ref)
	if err != nil {
		return nil, err
	}
	if law == nil {
		return nil, ErrEmptyDocument
	}
	return law, nil
}

func lawName(law *model.Law, ref model.LawRef) string {
	if ref.Name != "" {
		return ref.Name
	}
	return law.Name
}
