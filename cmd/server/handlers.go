package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hebrew-lexicon/oshb"
	"github.com/hebrew-lexicon/oshb/internal/batch"
	"github.com/hebrew-lexicon/oshb/internal/config"
	"github.com/hebrew-lexicon/oshb/internal/osis"
)

// maxBodyBytes bounds POST bodies.
const maxBodyBytes = 4 << 20

// ---- JSON response types ------------------------------------------------

type reportJSON struct {
	Total      int                `json:"total"`
	WithErrors int                `json:"with_errors"`
	ErrorRate  float64            `json:"error_rate"`
	TopErrors  []batch.ErrorCount `json:"top_errors"`
}

type decodeBatchResponse struct {
	Results []oshb.Analysis `json:"results"`
	Report  reportJSON      `json:"report"`
}

type transliterateResponse struct {
	Text            string `json:"text"`
	Transliteration string `json:"transliteration"`
	Slug            string `json:"slug"`
}

type slugsResponse struct {
	Slugs []batch.WordSlug `json:"slugs"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

// handleDecode decodes one code on GET and a list of codes on POST.
func handleDecode(runner *batch.Runner, topErrors int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			code := r.URL.Query().Get("code")
			if code == "" {
				writeError(w, http.StatusBadRequest, "missing 'code' query parameter")
				return
			}
			writeJSON(w, http.StatusOK, oshb.Decode(code))

		case http.MethodPost:
			var body struct {
				Codes []string `json:"codes"`
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Codes) == 0 {
				writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'codes' field")
				return
			}
			results, rep, err := runner.Decode(r.Context(), body.Codes)
			if err != nil {
				writeError(w, http.StatusServiceUnavailable, err.Error())
				return
			}
			writeJSON(w, http.StatusOK, decodeBatchResponse{
				Results: results,
				Report: reportJSON{
					Total:      rep.Total,
					WithErrors: rep.WithErrors,
					ErrorRate:  rep.ErrorRate(),
					TopErrors:  rep.Top(topErrors),
				},
			})

		default:
			writeError(w, http.StatusMethodNotAllowed, "GET or POST required")
		}
	}
}

func handleTransliterate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		text := r.URL.Query().Get("text")
		if text == "" {
			writeError(w, http.StatusBadRequest, "missing 'text' query parameter")
			return
		}
		writeJSON(w, http.StatusOK, transliterateResponse{
			Text:            text,
			Transliteration: oshb.Transliterate(text),
			Slug:            oshb.Slug(text),
		})
	}
}

// handleSlugs assigns slugs to the words of a single verse.
func handleSlugs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Words []osis.Word `json:"words"`
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Words) == 0 {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'words' field")
			return
		}
		writeJSON(w, http.StatusOK, slugsResponse{Slugs: batch.SlugVerse(body.Words)})
	}
}

func handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// newHandler wires the routes and middleware.
func newHandler(runner *batch.Runner, corsCfg config.CORSConfig, log *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/decode", handleDecode(runner, runner.TopErrors()))
	mux.HandleFunc("/api/transliterate", handleTransliterate())
	mux.HandleFunc("/api/slugs", handleSlugs())
	mux.HandleFunc("/healthz", handleHealth())

	return chain(mux,
		withRecovery(log),
		withRequestID,
		withLogging(log),
		withCORS(corsCfg),
	)
}
