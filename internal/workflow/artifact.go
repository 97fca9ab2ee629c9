package workflow

import (
	"fmt"
	"os"
	"sync"

	"github.com/ewalker/reportfill/internal/shared"
)

// Artifact is a locally-scoped, revocable reference to an in-memory binary
// payload, valid only for the lifetime of the run.
type Artifact struct {
	Ref         string
	ContentType string
	Data        []byte
}

// SaveTo writes the artifact payload to the given path.
func (a *Artifact) SaveTo(path string) error {
	if err := os.WriteFile(path, a.Data, 0644); err != nil {
		return fmt.Errorf("failed to save artifact: %w", err)
	}
	return nil
}

// Store holds in-memory artifacts keyed by generated reference IDs.
//
// Put revokes the previously stored artifact before establishing a new one, so
// repeated submissions never leak earlier payloads.
type Store struct {
	mu        sync.Mutex
	artifacts map[string]*Artifact
	current   string
}

// NewStore creates an empty artifact store.
func NewStore() *Store {
	return &Store{artifacts: make(map[string]*Artifact)}
}

// Put stores a payload and returns its reference, revoking the previous one.
func (s *Store) Put(data []byte, contentType string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != "" {
		delete(s.artifacts, s.current)
	}

	ref := shared.GenerateID()
	s.artifacts[ref] = &Artifact{Ref: ref, ContentType: contentType, Data: data}
	s.current = ref
	return ref
}

// Open resolves a reference to its artifact.
func (s *Store) Open(ref string) (*Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.artifacts[ref]
	if !ok {
		return nil, fmt.Errorf("%w: %s", shared.ErrArtifactRevoked, ref)
	}
	return a, nil
}

// Revoke removes a single artifact.
func (s *Store) Revoke(ref string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.artifacts, ref)
	if s.current == ref {
		s.current = ""
	}
}

// RevokeAll removes every artifact; called when the owning view unmounts.
func (s *Store) RevokeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.artifacts = make(map[string]*Artifact)
	s.current = ""
}

// Len returns the number of live artifacts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.artifacts)
}
