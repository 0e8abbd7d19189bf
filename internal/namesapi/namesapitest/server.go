// Package namesapitest provides an in-memory names API for tests.
package namesapitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/mrlokans/nameboard/internal/entities"
)

// Server is an httptest server speaking the /names REST protocol.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	names    []entities.Name
	nextID   int
	requests []string
	failWith int
}

// NewServer starts a server seeded with names. Records without an ID get one.
// The server is closed when the test ends.
func NewServer(t testing.TB, seed ...entities.Name) *Server {
	t.Helper()
	s := &Server{}
	for _, n := range seed {
		if n.ID == "" {
			n.ID = s.newID()
		}
		s.names = append(s.names, n)
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// URL of the names collection.
func (s *Server) NamesURL() string {
	return s.Server.URL + "/names"
}

// FailWith makes every following request answer with status. Zero restores
// normal behaviour.
func (s *Server) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = status
}

// Requests returns "METHOD /path" for every request received so far.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// Names returns a copy of the stored records in insertion order.
func (s *Server) Names() []entities.Name {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Name(nil), s.names...)
}

func (s *Server) newID() string {
	s.nextID++
	return fmt.Sprintf("id-%d", s.nextID)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, r.Method+" "+r.URL.Path)
	if s.failWith != 0 {
		http.Error(w, "forced failure", s.failWith)
		return
	}

	id := strings.TrimPrefix(strings.TrimPrefix(r.URL.Path, "/names"), "/")
	switch {
	case r.Method == http.MethodGet && id == "":
		writeJSON(w, http.StatusOK, s.names)
	case r.Method == http.MethodPost && id == "":
		var body entities.Name
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.FirstName == "" {
			http.Error(w, "firstName is required", http.StatusBadRequest)
			return
		}
		body.ID = s.newID()
		s.names = append(s.names, body)
		writeJSON(w, http.StatusCreated, body)
	case r.Method == http.MethodPut && id != "":
		var patch entities.NamePatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		i := s.indexOf(id)
		if i < 0 {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if patch.FirstName != nil {
			s.names[i].FirstName = *patch.FirstName
		}
		if patch.Liked != nil {
			s.names[i].Liked = *patch.Liked
		}
		writeJSON(w, http.StatusOK, s.names[i])
	case r.Method == http.MethodDelete && id != "":
		i := s.indexOf(id)
		if i < 0 {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		s.names = append(s.names[:i], s.names[i+1:]...)
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) indexOf(id string) int {
	for i, n := range s.names {
		if n.ID == id {
			return i
		}
	}
	return -1
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
