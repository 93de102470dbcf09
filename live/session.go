// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package live recomputes visualizations as the input text is edited.
//
// A Session holds the result for the most recent text. Every edit produces a
// complete recomputation, except that texts seen recently are served from a
// small cache so that undoing an edit is immediate.
package live

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/dsnet/huffviz"
	"github.com/dsnet/huffviz/huffman"
	"github.com/dsnet/huffviz/internal/errors"
)

// DefaultSize is the number of results kept when New is given a size of zero.
const DefaultSize = 64

// Session tracks the visualization of a text being edited.
// It is safe for concurrent use.
type Session struct {
	cfg   huffviz.Config
	log   logrus.FieldLogger
	cache *lru.Cache[uint64, *huffviz.Result]

	mu      sync.Mutex
	cur     *huffviz.Result
	updates int
	hits    int
}

// Stats reports how a Session has served its updates.
type Stats struct {
	Updates int // Number of calls to Update
	Hits    int // Number of updates served from the cache
	Cached  int // Number of results currently cached
}

// New returns a Session that runs the pipeline with cfg and caches up to size
// results. A size of zero selects DefaultSize.
func New(cfg huffviz.Config, size int) (*Session, error) {
	if size == 0 {
		size = DefaultSize
	}
	if size < 0 {
		return nil, errors.New("live", errors.Invalid, "invalid cache size: %d", size)
	}
	cache, err := lru.New[uint64, *huffviz.Result](size)
	if err != nil {
		return nil, errors.New("live", errors.Internal, "%v", err)
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Session{cfg: cfg, log: log, cache: cache}, nil
}

// Update replaces the current result with the visualization of text.
//
// The returned Result is shared with the cache and with other callers of
// Update and Current, so it must not be modified.
//
// If text holds no symbols, the current result becomes an empty Result and
// the error satisfies huffman.IsEmptyInput. On any other error, the current
// result is left unchanged.
func (s *Session) Update(text string) (*huffviz.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates++

	key := xxhash.Sum64String(text)
	if r, ok := s.cache.Get(key); ok && r.Text == text {
		s.hits++
		s.cur = r
		s.log.WithField("symbols", len(r.Symbols)).Debug("served from cache")
		return r, nil
	}

	r, err := s.cfg.Visualize(text)
	if huffman.IsEmptyInput(err) {
		s.cur = r
		return r, err
	}
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, r)
	s.cur = r
	return r, nil
}

// Current returns the most recent result, or nil if there is none.
// As with Update, the result must not be modified.
func (s *Session) Current() *huffviz.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// Reset drops the current result and empties the cache.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = nil
	s.cache.Purge()
}

// Stats reports the update and cache counters of the session.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{Updates: s.updates, Hits: s.hits, Cached: s.cache.Len()}
}
