package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"
)

// DirectoryService proxies mentor/learner directory reads to the external
// system-of-record API. Responses are cached briefly so browsing does not
// hammer the upstream.
type DirectoryService struct {
	baseURL string
	client  *http.Client

	cacheMutex sync.RWMutex
	cache      map[string]directoryEntry
	ttl        time.Duration
}

type directoryEntry struct {
	payload   json.RawMessage
	fetchedAt time.Time
}

func NewDirectoryService(baseURL string) *DirectoryService {
	return &DirectoryService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   map[string]directoryEntry{},
		ttl:     5 * time.Minute,
	}
}

func (s *DirectoryService) Mentors() (json.RawMessage, error) {
	return s.fetch("mentors")
}

func (s *DirectoryService) Learners() (json.RawMessage, error) {
	return s.fetch("learners")
}

func (s *DirectoryService) fetch(resource string) (json.RawMessage, error) {
	s.cacheMutex.RLock()
	entry, ok := s.cache[resource]
	s.cacheMutex.RUnlock()
	if ok && time.Since(entry.fetchedAt) < s.ttl {
		return entry.payload, nil
	}

	if s.baseURL == "" {
		return nil, fail(KindUnexpected, "Directory API not configured")
	}

	log.Printf("Fetching fresh %s directory from upstream...", resource)
	resp, err := s.client.Get(fmt.Sprintf("%s/%s", s.baseURL, resource))
	if err != nil {
		log.Printf("🔥 Directory upstream unreachable: %v", err)
		return nil, fail(KindUnexpected, "Directory service unavailable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil || resp.StatusCode != http.StatusOK {
		log.Printf("🔥 Directory upstream error: status=%d err=%v", resp.StatusCode, err)
		return nil, fail(KindUnexpected, "Directory service unavailable")
	}
	if !json.Valid(body) {
		return nil, fail(KindUnexpected, "Directory service returned a malformed response")
	}

	s.cacheMutex.Lock()
	s.cache[resource] = directoryEntry{payload: body, fetchedAt: time.Now()}
	s.cacheMutex.Unlock()

	return body, nil
}
