package kolaw

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Alfex4936/kolaw/internal/util"
)

// AmendRequest is the HTTP request body for POST /v1/amend
type AmendRequest struct {
	Find    string `json:"find"`              // 찾을 단어 (필수)
	Replace string `json:"replace"`           // 바꿀 단어 (필수)
	Timeout int    `json:"timeout,omitempty"` // 타임아웃 (초)
}

// SearchRequest is the HTTP request body for POST /v1/search
type SearchRequest struct {
	Query   string `json:"query"`             // 검색어 (필수)
	Timeout int    `json:"timeout,omitempty"` // 타임아웃 (초)
}

// Server exposes Amend and Search over HTTP.
type Server struct {
	mu      sync.RWMutex
	reg     Registry
	log     *zap.Logger
	metrics *Metrics
	timeout time.Duration
}

// NewServer wires handlers to reg. timeout is the default per-request budget.
func NewServer(reg Registry, log *zap.Logger, metrics *Metrics, timeout time.Duration) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 3 * time.Minute
	}
	return &Server{reg: reg, log: log, metrics: metrics, timeout: timeout}
}

// SetRegistry swaps the registry, e.g. after a config reload.
func (s *Server) SetRegistry(reg Registry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reg = reg
}

func (s *Server) registry() Registry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/amend", s.AmendHandler)
	mux.HandleFunc("/v1/search", s.SearchHandler)
	mux.HandleFunc("/health", HealthHandler)
	mux.HandleFunc("/openapi.json", OpenAPIHandler)
	if s.metrics != nil {
		mux.Handle("/metrics", s.metrics.Handler())
	}
	mux.HandleFunc("/", DocsHandler)
	return mux
}

// AmendHandler handles POST /v1/amend requests
func (s *Server) AmendHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req AmendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	ctx, cancel, log := s.begin(r, req.Timeout)
	defer cancel()

	res, err := Amend(ctx, s.registry(), req.Find, req.Replace, WithLogger(log), WithMetrics(s.metrics))
	if err != nil {
		s.fail(w, log, err)
		return
	}
	writeJSON(w, res)
}

// SearchHandler handles POST /v1/search requests
func (s *Server) SearchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	ctx, cancel, log := s.begin(r, req.Timeout)
	defer cancel()

	res, err := Search(ctx, s.registry(), req.Query, WithLogger(log), WithMetrics(s.metrics))
	if err != nil {
		s.fail(w, log, err)
		return
	}
	writeJSON(w, res)
}

func (s *Server) begin(r *http.Request, timeoutSec int) (context.Context, context.CancelFunc, *zap.Logger) {
	timeout := s.timeout
	if timeoutSec > 0 {
		timeout = time.Duration(timeoutSec) * time.Second
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	id := uuid.NewString()
	return ctx, cancel, s.log.With(zap.String("request_id", id), zap.String("path", r.URL.Path))
}

func (s *Server) fail(w http.ResponseWriter, log *zap.Logger, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, ErrEmptyQuery), errors.Is(err, ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	}
	log.Warn("request failed", zap.Int("status", status), zap.Error(err))
	http.Error(w, err.Error(), status)
}

// writeJSON keeps fragment markup unescaped.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	out, _ := util.MarshalNoEscape(v, true)
	fmt.Fprint(w, string(out))
}

// HealthHandler handles GET /health requests
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "kolaw",
	})
}

// OpenAPIHandler serves the OpenAPI 3.0 document at GET /openapi.json
func OpenAPIHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, openAPISpec)
}

// DocsHandler serves the Redoc UI at GET /
func DocsHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, redocHTML)
}

const openAPISpec = `{
  "openapi": "3.0.3",
  "info": {
    "title": "kolaw API",
    "description": "타법개정문 생성 및 법률 본문 검색 REST API (국가법령정보 공동활용 기반)",
    "version": "1.0.0"
  },
  "paths": {
    "/v1/amend": {
      "post": {
        "summary": "Amend",
        "description": "찾을 단어가 들어 있는 모든 법률에 대해 조사를 맞춘 타법개정문을 생성합니다. 21번째 법률부터는 원문자 대신 (21)과 같은 번호가 붙습니다.",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/AmendRequest" },
              "examples": {
                "기본": { "value": { "find": "위원회", "replace": "협의회" } },
                "타임아웃 지정": { "value": { "find": "위원회", "replace": "협의회", "timeout": 300 } }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "개정문",
            "content": {
              "application/json": {
                "schema": { "$ref": "#/components/schemas/AmendResult" },
                "example": {
                  "find": "위원회",
                  "replace": "달걀",
                  "statements": [
                    "① 식품위생법 일부를 다음과 같이 개정한다.\n제58조제1항 및 제58조제2항 중 “위원회는”을 “달걀은”으로 한다."
                  ],
                  "empty": false
                }
              }
            }
          },
          "400": { "description": "빈 입력 또는 한글로 끝나지 않는 바꿀 단어" },
          "502": { "description": "법령 목록 조회 실패" },
          "504": { "description": "타임아웃" }
        }
      }
    },
    "/v1/search": {
      "post": {
        "summary": "Search",
        "description": "검색어가 포함된 법률 조문을 공백을 무시하고 찾아, 조문별로 강조 표시된 HTML 조각을 반환합니다. 단일 검색어만 지원합니다.",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/SearchRequest" },
              "examples": { "기본": { "value": { "query": "식품 위생" } } }
            }
          }
        },
        "responses": {
          "200": {
            "description": "검색 결과",
            "content": { "application/json": { "schema": { "$ref": "#/components/schemas/SearchResult" } } }
          },
          "400": { "description": "빈 검색어" },
          "502": { "description": "법령 목록 조회 실패" },
          "504": { "description": "타임아웃" }
        }
      }
    },
    "/health": {
      "get": {
        "summary": "Health",
        "responses": {
          "200": {
            "description": "서비스 정상",
            "content": { "application/json": { "example": { "status": "ok", "service": "kolaw" } } }
          }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "AmendRequest": {
        "type": "object",
        "required": ["find", "replace"],
        "properties": {
          "find":    { "type": "string", "description": "찾을 단어", "example": "위원회" },
          "replace": { "type": "string", "description": "바꿀 단어 (한글로 끝나야 함)", "example": "협의회" },
          "timeout": { "type": "integer", "description": "타임아웃 (초, 기본 180)" }
        }
      },
      "SearchRequest": {
        "type": "object",
        "required": ["query"],
        "properties": {
          "query":   { "type": "string", "description": "검색어", "example": "식품 위생" },
          "timeout": { "type": "integer", "description": "타임아웃 (초, 기본 180)" }
        }
      },
      "Omission": {
        "type": "object",
        "properties": {
          "law":    { "type": "string" },
          "mst":    { "type": "string" },
          "reason": { "type": "string" }
        }
      },
      "AmendResult": {
        "type": "object",
        "properties": {
          "find":       { "type": "string" },
          "replace":    { "type": "string" },
          "statements": { "type": "array", "items": { "type": "string" }, "description": "법률별 개정문, 대상이 없으면 안내 문구 하나" },
          "empty":      { "type": "boolean", "description": "개정 대상이 하나도 없으면 true" },
          "omissions":  { "type": "array", "items": { "$ref": "#/components/schemas/Omission" } }
        }
      },
      "SearchResult": {
        "type": "object",
        "properties": {
          "query":     { "type": "string" },
          "found":     { "type": "integer", "description": "검색된 법률 수" },
          "laws":      { "type": "array", "items": { "$ref": "#/components/schemas/LawHits" } },
          "message":   { "type": "string", "description": "검색 결과가 없을 때의 안내 문구" },
          "omissions": { "type": "array", "items": { "$ref": "#/components/schemas/Omission" } }
        }
      },
      "LawHits": {
        "type": "object",
        "properties": {
          "law":       { "type": "string" },
          "fragments": { "type": "array", "items": { "type": "string" }, "description": "조문별 HTML 조각" }
        }
      }
    }
  }
}`

const redocHTML = `<!DOCTYPE html>
<html>
<head>
  <title>kolaw API Docs</title>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <link href="https://fonts.googleapis.com/css?family=Montserrat:300,400,700|Roboto:300,400,700" rel="stylesheet">
  <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
  <redoc spec-url="/openapi.json" expand-responses="200" hide-download-button></redoc>
  <script src="https://cdn.jsdelivr.net/npm/redoc@latest/bundles/redoc.standalone.js"></script>
</body>
</html>`
