// Package mdmtest runs an in-memory Xinca MDM server for tests. It stores
// records per resource path, enforces HTTP Basic credentials when
// configured, and records every request it receives.
package mdmtest

import (
	"encoding/json"
	"maps"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/fivetwenty-io/xinca/internal/constants"
)

// Record is a stored entity.
type Record map[string]any

// RecordedRequest is a request as the server saw it.
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Form   url.Values
	Header http.Header
}

type failure struct {
	status int
	body   string
}

type collection struct {
	order   []string
	records map[string]Record
}

// Server is a fake MDM server.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	username    string
	password    string
	collections map[string]*collection
	failures    map[string]failure
	requests    []RecordedRequest
}

// Option configures a Server.
type Option func(*Server)

// WithCredentials requires HTTP Basic credentials on every request.
func WithCredentials(username, password string) Option {
	return func(s *Server) {
		s.username = username
		s.password = password
	}
}

// Paths served by NewServer.
var Paths = []string{
	constants.PathApps,
	constants.PathDEP,
	constants.PathDevices,
	constants.PathProfiles,
	constants.PathUsers,
	constants.PathGroups,
	constants.PathIBeacons,
}

// NewServer starts a server. Call Close when done.
func NewServer(opts ...Option) *Server {
	s := &Server{
		collections: make(map[string]*collection),
		failures:    make(map[string]failure),
	}

	for _, opt := range opts {
		opt(s)
	}

	for _, path := range Paths {
		s.collections[path] = &collection{records: make(map[string]Record)}
	}

	s.Server = httptest.NewServer(s.router())

	return s
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(s.record)
	r.Use(s.inject)
	r.Use(s.authenticate)

	for _, path := range Paths {
		r.Route(path, func(r chi.Router) {
			r.Get("/", s.list(path))
			r.Post("/", s.create(path))
			r.Get("/{id}", s.get(path))
			r.Put("/{id}", s.update(path))
			r.Delete("/{id}", s.remove(path))
		})
	}

	return r
}

// Seed stores records under path. Records without an "id" get a generated
// one. The IDs are returned in order.
func (s *Server) Seed(path string, records ...Record) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, s.put(path, record))
	}

	return ids
}

// Fail makes every request matching method and path answer with status and
// body instead of being served.
func (s *Server) Fail(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failures[method+" "+path] = failure{status: status, body: body}
}

// Requests returns the requests received so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]RecordedRequest(nil), s.requests...)
}

// LastRequest returns the most recent request.
func (s *Server) LastRequest() (RecordedRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.requests) == 0 {
		return RecordedRequest{}, false
	}

	return s.requests[len(s.requests)-1], true
}

// Records returns the records stored under path in insertion order.
func (s *Server) Records(path string) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := s.collections[path]
	if !ok {
		return nil
	}

	out := make([]Record, 0, len(coll.order))
	for _, id := range coll.order {
		out = append(out, coll.records[id].clone())
	}

	return out
}

// put stores record and returns its ID. Caller holds s.mu.
func (s *Server) put(path string, record Record) string {
	coll := s.collections[path]

	stored := record.clone()

	id, ok := stored["id"].(string)
	if !ok || id == "" {
		id = uuid.NewString()
		stored["id"] = id
	}

	if _, exists := coll.records[id]; !exists {
		coll.order = append(coll.order, id)
	}

	coll.records[id] = stored

	return id
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()

		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Form:   r.PostForm,
			Header: r.Header.Clone(),
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) inject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		fail, ok := s.failures[r.Method+" "+r.URL.Path]
		s.mu.Unlock()

		if !ok {
			next.ServeHTTP(w, r)

			return
		}

		w.WriteHeader(fail.status)
		_, _ = w.Write([]byte(fail.body))
	})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.username == "" {
			next.ServeHTTP(w, r)

			return
		}

		username, password, ok := r.BasicAuth()
		if !ok || username != s.username || password != s.password {
			writeErrors(w, http.StatusUnauthorized, "Invalid credentials")

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) list(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.Records(path))
	}
}

func (s *Server) get(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		s.mu.Lock()
		record, ok := s.collections[path].records[id]
		record = record.clone()
		s.mu.Unlock()

		if !ok {
			writeErrors(w, http.StatusNotFound, "Record not found")

			return
		}

		writeJSON(w, http.StatusOK, record)
	}
}

func (s *Server) create(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record := formRecord(r.PostForm)
		delete(record, "id")

		s.mu.Lock()
		id := s.put(path, record)
		created := s.collections[path].records[id].clone()
		s.mu.Unlock()

		writeJSON(w, http.StatusCreated, created)
	}
}

func (s *Server) update(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		s.mu.Lock()
		defer s.mu.Unlock()

		existing, ok := s.collections[path].records[id]
		if !ok {
			writeErrors(w, http.StatusNotFound, "Record not found")

			return
		}

		for key, value := range formRecord(r.PostForm) {
			if key != "id" {
				existing[key] = value
			}
		}

		writeJSON(w, http.StatusOK, existing)
	}
}

func (s *Server) remove(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		s.mu.Lock()
		defer s.mu.Unlock()

		coll := s.collections[path]
		if _, ok := coll.records[id]; !ok {
			writeErrors(w, http.StatusNotFound, "Record not found")

			return
		}

		delete(coll.records, id)

		for i, existing := range coll.order {
			if existing == id {
				coll.order = append(coll.order[:i], coll.order[i+1:]...)

				break
			}
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (r Record) clone() Record {
	out := make(Record, len(r)+1)
	maps.Copy(out, r)

	return out
}

func formRecord(form url.Values) Record {
	record := make(Record, len(form))
	for key := range form {
		record[key] = form.Get(key)
	}

	return record
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrors(w http.ResponseWriter, status int, messages ...string) {
	writeJSON(w, status, map[string][]string{"errors": messages})
}
