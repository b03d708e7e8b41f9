// Package net talks to the law.go.kr DRF Open API.
package net

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Alfex4936/kolaw/internal/model"
	"github.com/Alfex4936/kolaw/internal/parse"
)

const (
	DefaultBaseURL = "https://www.law.go.kr"
	DefaultDisplay = 100
	DefaultTimeout = 10 * time.Second
	DefaultRate    = 5.0
	DefaultRetries = 3

	searchPath  = "/DRF/lawSearch.do"
	servicePath = "/DRF/lawService.do"

	// safety stop for runaway paging
	maxPages = 50
)

// ErrStatus signals a non-200 answer from the registry.
var ErrStatus = errors.New("net: unexpected status")

// Doer is the transport the client sends requests through.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config is passed explicitly; there is no package-level registry state.
type Config struct {
	OC            string        // Open API user id (law.go.kr "OC")
	BaseURL       string        // default https://www.law.go.kr
	Display       int           // rows per search page (max 100)
	Timeout       time.Duration // per request
	RatePerSecond float64       // request pacing; <= 0 disables
	Retries       uint          // attempts per request
	RetryDelay    time.Duration
	Logger        *zap.Logger
	Doer          Doer // nil → browser-profile tls-client
}

// Client fetches candidate laws and their full text.
type Client struct {
	cfg     Config
	doer    Doer
	limiter *rate.Limiter
	log     *zap.Logger
}

// New builds a Client. Unset fields fall back to their defaults.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.OC) == "" {
		return nil, errors.New("net: OC (Open API user id) is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Display <= 0 || cfg.Display > DefaultDisplay {
		cfg.Display = DefaultDisplay
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Retries == 0 {
		cfg.Retries = DefaultRetries
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 500 * time.Millisecond
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	c := &Client{cfg: cfg, doer: cfg.Doer, log: cfg.Logger.Named("registry")}
	if cfg.RatePerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1)
	}
	if c.doer == nil {
		hc, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(),
			tls_client.WithTimeoutSeconds(int(cfg.Timeout/time.Second)),
			tls_client.WithClientProfile(profiles.DefaultClientProfile),
			tls_client.WithCookieJar(tls_client.NewCookieJar()),
		)
		if err != nil {
			return nil, fmt.Errorf("net: tls client: %w", err)
		}
		c.doer = hc
	}
	return c, nil
}

// Candidates lists 법률 whose body text contains query, paging until a short
// page. The query is sent as an exact phrase.
func (c *Client) Candidates(ctx context.Context, query string) ([]model.LawRef, error) {
	var out []model.LawRef
	seen := make(map[string]struct{})
	for page := 1; page <= maxPages; page++ {
		raw, err := c.get(ctx, c.SearchURL(query, page))
		if err != nil {
			return nil, err
		}
		p, err := parse.DecodeSearch(raw)
		if err != nil {
			return nil, err
		}
		for _, l := range p.Laws {
			if _, dup := seen[l.MST]; dup {
				continue
			}
			seen[l.MST] = struct{}{}
			out = append(out, l)
		}
		c.log.Debug("search page", zap.Int("page", page), zap.Int("rows", len(p.Laws)), zap.Int("total", p.Total))
		if len(p.Laws) < c.cfg.Display {
			break
		}
	}
	return out, nil
}

// Fetch returns the full structured text of ref.
func (c *Client) Fetch(ctx context.Context, ref model.LawRef) (*model.Law, error) {
	raw, err := c.get(ctx, c.LawURL(ref.MST))
	if err != nil {
		return nil, err
	}
	law, err := parse.DecodeLaw(raw)
	if err != nil {
		return nil, err
	}
	law.MST = ref.MST
	if law.Name == "" {
		law.Name = ref.Name
	}
	return law, nil
}

// SearchURL builds the lawSearch.do URL for one page.
func (c *Client) SearchURL(query string, page int) string {
	q := url.Values{
		"OC":      {c.cfg.OC},
		"target":  {"law"},
		"type":    {"XML"},
		"display": {strconv.Itoa(c.cfg.Display)},
		"page":    {strconv.Itoa(page)},
		"search":  {"2"},     // 본문검색
		"knd":     {"A0002"}, // 법률
		"query":   {`"` + query + `"`},
	}
	return c.cfg.BaseURL + searchPath + "?" + q.Encode()
}

// LawURL builds the lawService.do URL for one law serial number.
func (c *Client) LawURL(mst string) string {
	q := url.Values{
		"OC":     {c.cfg.OC},
		"target": {"law"},
		"type":   {"XML"},
		"MST":    {mst},
	}
	return c.cfg.BaseURL + servicePath + "?" + q.Encode()
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	var body []byte
	err := retry.Do(
		func() error {
			if c.limiter != nil {
				if err := c.limiter.Wait(ctx); err != nil {
					return retry.Unrecoverable(err)
				}
			}
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("User-Agent", ua)
			req.Header.Set("Accept", "application/xml, text/xml")

			resp, err := c.doer.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				err := fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
				if resp.StatusCode < http.StatusInternalServerError && resp.StatusCode != http.StatusTooManyRequests {
					return retry.Unrecoverable(err)
				}
				return err
			}
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			body = b
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.cfg.Retries),
		retry.Delay(c.cfg.RetryDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			c.log.Debug("retrying registry request", zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("net: GET %s: %w", redact(u), err)
	}
	return body, nil
}

// redact hides the OC user id in logged URLs.
func redact(u string) string {
	p, err := url.Parse(u)
	if err != nil {
		return u
	}
	q := p.Query()
	if q.Has("OC") {
		q.Set("OC", "***")
	}
	p.RawQuery = q.Encode()
	return p.String()
}

const ua = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36"
