package guildstore

import (
	"encoding/json"
	"log"
	"sort"
	"sync"

	"suggestbot/model"
)

// Store holds every guild's suggestion configuration. Records are read and
// replaced as whole values; all mutation for all guilds is serialized
// through the store mutex, which is what makes TryPromote's
// check-then-insert safe against concurrent reaction events (the lock is
// held from the membership check through the persisted write).
//
// Persistence failures are logged and otherwise ignored: the in-memory
// copy stays authoritative for the life of the process, so a transient
// write error never corrupts behavior, at the cost of possibly losing the
// update across a restart.
type Store struct {
	mu      sync.Mutex
	backend Backend
	guilds  map[string]*record
}

// record is the in-memory form of a guild config. The promoted list is
// kept as a set for O(1) membership checks and serialized back to a list.
type record struct {
	cfg      model.GuildConfig
	promoted map[string]struct{}
}

// New loads the existing snapshot from the backend, starting empty if the
// backend has none.
func New(backend Backend) (*Store, error) {
	s := &Store{
		backend: backend,
		guilds:  make(map[string]*record),
	}

	data, err := backend.Load()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return s, nil
	}

	var raw map[string]*model.GuildConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for guildID, cfg := range raw {
		s.guilds[guildID] = newRecord(cfg)
	}
	return s, nil
}

func newRecord(cfg *model.GuildConfig) *record {
	r := &record{
		cfg:      *cfg,
		promoted: make(map[string]struct{}, len(cfg.Promoted)),
	}
	for _, id := range cfg.Promoted {
		r.promoted[id] = struct{}{}
	}
	r.cfg.Promoted = nil
	return r
}

// Get returns a copy of the guild's config, creating a default record
// (threshold 5, nothing promoted) on first access. Callers mutate the
// copy and write it back with Put.
func (s *Store) Get(guildID string) *model.GuildConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(guildID).snapshot()
}

func (s *Store) getLocked(guildID string) *record {
	r, ok := s.guilds[guildID]
	if !ok {
		r = newRecord(model.NewGuildConfig())
		s.guilds[guildID] = r
	}
	return r
}

func (r *record) snapshot() *model.GuildConfig {
	cfg := r.cfg
	cfg.Promoted = make([]string, 0, len(r.promoted))
	for id := range r.promoted {
		cfg.Promoted = append(cfg.Promoted, id)
	}
	sort.Strings(cfg.Promoted)
	return &cfg
}

// Put replaces the guild's whole record and persists the store. The
// promoted set only ever grows, so the store's current set is folded into
// the incoming record: a command handler's Get→mutate→Put can interleave
// with TryPromote on another goroutine, and writing back the caller's
// stale snapshot verbatim would un-promote whatever won in between.
func (s *Store) Put(guildID string, cfg *model.GuildConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := newRecord(cfg)
	if old, ok := s.guilds[guildID]; ok {
		for id := range old.promoted {
			r.promoted[id] = struct{}{}
		}
	}
	s.guilds[guildID] = r
	s.persistLocked()
}

// HasPromoted reports whether the message was already escalated. This is
// the advisory check used while filtering reaction events; TryPromote is
// the enforcement point.
func (s *Store) HasPromoted(guildID, messageID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.guilds[guildID]
	if !ok {
		return false
	}
	_, promoted := r.promoted[messageID]
	return promoted
}

// TryPromote marks the message as sent for review and reports whether this
// call won. Exactly one of any number of concurrent calls for the same
// message returns true; the insert is persisted before the lock is
// released, so the promotion is recorded before any side effect runs.
func (s *Store) TryPromote(guildID, messageID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.getLocked(guildID)
	if _, promoted := r.promoted[messageID]; promoted {
		return false
	}
	r.promoted[messageID] = struct{}{}
	s.persistLocked()
	return true
}

func (s *Store) persistLocked() {
	out := make(map[string]*model.GuildConfig, len(s.guilds))
	for guildID, r := range s.guilds {
		out[guildID] = r.snapshot()
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Printf("Failed to encode guild store: %v", err)
		return
	}
	if err := s.backend.Save(data); err != nil {
		log.Printf("Failed to save guild store: %v", err)
	}
}
