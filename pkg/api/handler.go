package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/hazyhaar/smartdial/pkg/directory"
	"github.com/hazyhaar/smartdial/pkg/kit"
)

// NewRouter returns an http.Handler with all smartdial API routes. mcp, when
// non-nil, is mounted on /mcp.
func NewRouter(reg *directory.Registry, opts Options, mcp http.Handler) http.Handler {
	opts = opts.withDefaults()
	mux := http.NewServeMux()
	h := &handler{
		endpoints: newEndpoints(reg, opts),
		reg:       reg,
	}

	mux.HandleFunc("GET /v1/transliterate/{name}", h.handleTransliterate)
	mux.HandleFunc("GET /v1/match", methodNotAllowed)
	mux.HandleFunc("POST /v1/match", h.handleMatch)
	mux.HandleFunc("GET /v1/search", h.handleSearch)
	mux.HandleFunc("GET /v1/directories", h.handleListDirectories)
	mux.HandleFunc("GET /v1/health", h.handleHealth)
	if mcp != nil {
		mux.Handle("/mcp", mcp)
	}

	return cors(mux)
}

type handler struct {
	endpoints
	reg *directory.Registry
}

// --- transliterate ---

func (h *handler) handleTransliterate(w http.ResponseWriter, r *http.Request) {
	resp, err := h.transliterate(r.Context(), &transliterateReq{Name: r.PathValue("name")})
	if err != nil {
		writeEndpointError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- match ---

func (h *handler) handleMatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 16*1024)
	var req matchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp, err := h.match(r.Context(), &req)
	if err != nil {
		writeEndpointError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- search ---

func (h *handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := &directory.SearchOptions{
		Directories: splitList(q.Get("dirs")),
		Regions:     splitList(q.Get("regions")),
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		opts.Limit = n
	}

	resp, err := h.search(r.Context(), &searchReq{Query: q.Get("q"), Opts: opts})
	if err != nil {
		writeEndpointError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- list directories ---

func (h *handler) handleListDirectories(w http.ResponseWriter, r *http.Request) {
	resp, err := h.listDirectories(r.Context(), nil)
	if err != nil {
		writeEndpointError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- health ---

type healthResponse struct {
	Status        string `json:"status"`
	Directories   int    `json:"directories"`
	TotalContacts int    `json:"total_contacts"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		Directories:   h.reg.DirectoryCount(),
		TotalContacts: h.reg.TotalContacts(),
	})
}

// --- helpers ---

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func writeEndpointError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidRequest) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// cors is a simple CORS middleware for browser-based clients.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-Id")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if id := r.Header.Get("X-Request-Id"); id != "" {
			r = r.WithContext(kit.WithRequestID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}
