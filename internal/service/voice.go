package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"voicedesk.app/api-server/internal/model"
)

// VoiceCacheTTL bounds how long a fetched voice catalog is served without
// contacting the upstream provider.
const VoiceCacheTTL = 5 * time.Minute

// VoiceLister is the upstream voice-catalog dependency (the ElevenLabs client
// in production).
type VoiceLister interface {
	ListVoices(ctx context.Context) ([]model.Voice, error)
}

type VoiceService interface {
	ListVoices(ctx context.Context) ([]model.Voice, error)
}

type voiceService struct {
	upstream VoiceLister
	ttl      time.Duration
	now      func() time.Time

	mu        sync.RWMutex
	cached    []model.Voice
	fetchedAt time.Time
}

// NewVoiceService builds the process-wide voice cache. Constructed once at
// startup and injected into handlers; the single cache slot lives until expiry
// or process exit.
func NewVoiceService(upstream VoiceLister) VoiceService {
	return &voiceService{
		upstream: upstream,
		ttl:      VoiceCacheTTL,
		now:      time.Now,
	}
}

// ListVoices returns the cached catalog while fresh, otherwise fetches and
// unconditionally overwrites the slot (last-writer-wins; concurrent misses may
// each hit upstream). A failed fetch leaves the previous state untouched.
func (s *voiceService) ListVoices(ctx context.Context) ([]model.Voice, error) {
	s.mu.RLock()
	if s.cached != nil && s.now().Sub(s.fetchedAt) < s.ttl {
		voices := s.cached
		s.mu.RUnlock()
		return voices, nil
	}
	s.mu.RUnlock()

	voices, err := s.upstream.ListVoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching voices: %w", err)
	}

	s.mu.Lock()
	s.cached = voices
	s.fetchedAt = s.now()
	s.mu.Unlock()

	slog.InfoContext(ctx, "refreshed voice cache", "count", len(voices))

	return voices, nil
}
