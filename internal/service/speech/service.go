// Package speech turns alert text into hosted audio files.
package speech

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

const (
	keyLength   = 16
	contentType = "audio/mpeg"
)

// synthesizer renders speech audio.
type synthesizer interface {
	Configured() bool
	Synthesize(ctx context.Context, text, voiceID string) ([]byte, error)
}

// store persists audio files and resolves their public URL.
type store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
	URL(key string) string
}

// Service generates voice alerts.
type Service struct {
	log     *slog.Logger
	tts     synthesizer
	store   store
	voiceID string
}

// NewService creates a new speech service instance.
func NewService(logger *slog.Logger, tts synthesizer, store store, voiceID string) *Service {
	return &Service{
		log:     logger.With("service", "speech"),
		tts:     tts,
		store:   store,
		voiceID: voiceID,
	}
}

// Voice returns the public URL of text spoken aloud. Identical text reuses the
// stored file. Returns nil without error when text-to-speech is not configured.
func (s *Service) Voice(ctx context.Context, text string) (*string, error) {
	text = strings.TrimSpace(text)
	if text == "" || s.tts == nil || !s.tts.Configured() {
		return nil, nil
	}

	key := Key(text, s.voiceID)

	exists, err := s.store.Exists(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("speech.Voice: %w", err)
	}
	if exists {
		url := s.store.URL(key)
		return &url, nil
	}

	audio, err := s.tts.Synthesize(ctx, text, s.voiceID)
	if err != nil {
		return nil, fmt.Errorf("speech.Voice: %w", domain.NewUpstreamError("elevenlabs", err))
	}

	url, err := s.store.Put(ctx, key, audio, contentType)
	if err != nil {
		return nil, fmt.Errorf("speech.Voice: store audio: %w", err)
	}

	s.log.InfoContext(ctx, "voice alert generated", slog.String("key", key), slog.Int("bytes", len(audio)))
	return &url, nil
}

// Key is the storage key for text spoken by voiceID.
func Key(text, voiceID string) string {
	sum := sha256.Sum256([]byte(text + voiceID))
	return hex.EncodeToString(sum[:])[:keyLength] + ".mp3"
}
