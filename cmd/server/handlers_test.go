package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hebrew-lexicon/oshb/internal/batch"
	"github.com/hebrew-lexicon/oshb/internal/config"
)

func newTestHandler(t *testing.T) (http.Handler, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&logs, nil))
	runner := batch.New(config.BatchConfig{Workers: 2, ChunkSize: 2, TopErrors: 3, ErrorRateWarn: 0.5}, log)
	cors := config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST", AllowedHeaders: "Content-Type"}
	return newHandler(runner, cors, log), &logs
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func TestDecodeGet(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/api/decode?code=HC/Vqw3ms", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	m := decodeBody(t, rec)
	assert.Equal(t, "verb", m["part_of_speech"])
	assert.Equal(t, "Qal", m["binyan"])
	assert.Equal(t, "sequential_imperfect", m["conjugation"])
	assert.Equal(t, []any{"conjunction"}, m["prefix_pos_list"])
	assert.Equal(t, []any{}, m["parse_errors"])
}

func TestDecodeGetMissingCode(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/api/decode", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing 'code' query parameter", decodeBody(t, rec)["error"])
}

func TestDecodePost(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/decode", `{"codes":["HNp","XNcmsa","HNczsa","HNczsa"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Results []map[string]any `json:"results"`
		Report  struct {
			Total      int     `json:"total"`
			WithErrors int     `json:"with_errors"`
			ErrorRate  float64 `json:"error_rate"`
			TopErrors  []struct {
				Message string `json:"message"`
				Count   int    `json:"count"`
			} `json:"top_errors"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Results, 4)
	assert.Equal(t, "HNp", resp.Results[0]["raw_code"])
	assert.Equal(t, "definite", resp.Results[0]["definiteness"])
	assert.Equal(t, 4, resp.Report.Total)
	assert.Equal(t, 3, resp.Report.WithErrors)
	assert.InDelta(t, 0.75, resp.Report.ErrorRate, 1e-9)
	require.Len(t, resp.Report.TopErrors, 2)
	assert.Equal(t, "unknown gender: z", resp.Report.TopErrors[0].Message)
	assert.Equal(t, 2, resp.Report.TopErrors[0].Count)
}

func TestDecodePostBadBody(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, body := range []string{"", "not json", `{"codes":[]}`} {
		rec := do(t, h, http.MethodPost, "/api/decode", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h, _ := newTestHandler(t)

	tests := []struct {
		method string
		target string
	}{
		{http.MethodDelete, "/api/decode"},
		{http.MethodPost, "/api/transliterate"},
		{http.MethodGet, "/api/slugs"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.target, "")
			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.NotEmpty(t, decodeBody(t, rec)["error"])
		})
	}
}

func TestTransliterate(t *testing.T) {
	h, _ := newTestHandler(t)

	text := "\u05D1\u05B0\u05BC/\u05E8\u05B5\u05D0\u05E9\u05B4\u05C1\u0596\u05D9\u05EA"
	rec := do(t, h, http.MethodGet, "/api/transliterate?text="+url.QueryEscape(text), "")
	require.Equal(t, http.StatusOK, rec.Code)

	m := decodeBody(t, rec)
	assert.Equal(t, text, m["text"])
	assert.Equal(t, "bereshit", m["transliteration"])
	assert.Equal(t, "bereshit", m["slug"])

	rec = do(t, h, http.MethodGet, "/api/transliterate", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSlugs(t *testing.T) {
	h, _ := newTestHandler(t)

	body := `{"words":[
		{"position":2,"surface":"\u05D0\u05B5\u05EA"},
		{"position":1,"surface":"\u05D0\u05B5\u05EA"},
		{"position":3,"surface":"\u05D0"}
	]}`
	rec := do(t, h, http.MethodPost, "/api/slugs", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp slugsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Slugs, 3)
	assert.Equal(t, 1, resp.Slugs[0].Position)
	assert.Equal(t, "et", resp.Slugs[0].Slug)
	assert.Equal(t, "et-2", resp.Slugs[1].Slug)
	assert.Equal(t, "word-3", resp.Slugs[2].Slug)
	assert.True(t, resp.Slugs[2].Fallback)

	rec = do(t, h, http.MethodPost, "/api/slugs", `{"words":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestRequestIDAndLogging(t *testing.T) {
	h, logs := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/healthz", "")
	generated := rec.Header().Get(requestIDHeader)
	assert.Len(t, generated, 36)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "given-id")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "given-id", rec.Header().Get(requestIDHeader))

	out := logs.String()
	assert.Contains(t, out, `"msg":"http.request"`)
	assert.Contains(t, out, `"request_id":"given-id"`)
	assert.Contains(t, out, `"request_id":"`+generated+`"`)
}

func TestCORS(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://reader.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecovery(t *testing.T) {
	var logs bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&logs, nil))
	h := chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }),
		withRecovery(log), withRequestID)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, logs.String(), "panic recovered")
}
