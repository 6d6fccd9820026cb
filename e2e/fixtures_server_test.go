//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// SuggestServer is a local opensearch endpoint answering from a fixed word list
type SuggestServer struct {
	*httptest.Server

	mu      sync.Mutex
	words   []string
	queries []string
	status  int
}

// NewSuggestServer starts a server offering words whose prefix matches the query
func NewSuggestServer(words ...string) *SuggestServer {
	s := &SuggestServer{words: words, status: http.StatusOK}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// Endpoint returns the URL the app appends queries to
func (s *SuggestServer) Endpoint() string {
	return s.URL + "/w/api.php?action=opensearch&format=json&search="
}

// Queries returns the queries received so far
func (s *SuggestServer) Queries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.queries...)
}

// FailWith makes subsequent requests answer with status
func (s *SuggestServer) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

func (s *SuggestServer) handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("search")

	s.mu.Lock()
	s.queries = append(s.queries, q)
	status := s.status
	s.mu.Unlock()

	if status != http.StatusOK {
		http.Error(w, "unavailable", status)
		return
	}

	matches := []string{}
	for _, word := range s.words {
		if strings.HasPrefix(strings.ToLower(word), strings.ToLower(q)) {
			matches = append(matches, word)
		}
	}
	empty := make([]string, len(matches))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode([]any{q, matches, empty, empty})
}
