package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/herupa/herupa-go-api/internal/dto"
	"github.com/herupa/herupa-go-api/internal/extract"
	"github.com/herupa/herupa-go-api/internal/models"
	"github.com/herupa/herupa-go-api/internal/observability"
	"github.com/herupa/herupa-go-api/internal/prompt"
	"github.com/herupa/herupa-go-api/internal/repository"
	"github.com/herupa/herupa-go-api/pkg/ai"
)

var (
	// ErrSessionNotFound indicates the session id is unknown.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionEnded indicates the session was forcibly ended and rejects
	// further input until a new credential is supplied and a new session
	// started.
	ErrSessionEnded = errors.New("session has ended")
	// ErrEmptyMessage rejects empty or whitespace-only student input.
	ErrEmptyMessage = errors.New("message is empty")
)

const (
	sessionStateActive = "active"
	sessionStateEnded  = "ended"

	keyInvalidNotice = "API key is invalid or expired. Please re-enter your key."
	rereadNotice     = "I've re-read your latest code from the editor."
)

// SessionService drives the tutoring state machine: attempt counting, the
// one-shot pseudocode unlock, history accumulation, and credential-failure
// recovery.
type SessionService interface {
	Start(ctx context.Context, snap extract.Snapshot) (dto.SessionResponse, error)
	Send(ctx context.Context, id, content string) (dto.SessionResponse, error)
	Reread(ctx context.Context, id string, snap extract.Snapshot) (dto.SessionResponse, error)
	Get(ctx context.Context, id string) (dto.SessionResponse, error)
}

// viewTurn is one rendered transcript entry. It carries system notices and
// reveal segmentation that never enter the model-facing history.
type viewTurn struct {
	role     models.Role
	content  string
	segments *revealSegments
}

// tutorSession holds one conversation's state. The mutex serialises
// exchanges: exactly one gateway call may be in flight per session, and its
// result is applied atomically before the lock is released.
type tutorSession struct {
	mu          sync.Mutex
	id          string
	problem     models.Problem
	history     []models.Turn
	view        []viewTurn
	attempts    int
	pseudoGiven bool
	ended       bool
}

type sessionService struct {
	engine    *extract.Engine
	gateway   ai.Client
	creds     repository.CredentialRepository
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
	threshold int

	mu       sync.RWMutex
	sessions map[string]*tutorSession
}

// NewSessionService builds the tutoring session service. threshold is the
// number of unsuccessful attempts before the single pseudocode reveal.
func NewSessionService(engine *extract.Engine, gateway ai.Client, creds repository.CredentialRepository, threshold int, logger zerolog.Logger) SessionService {
	if threshold <= 0 {
		threshold = 3
	}

	return &sessionService{
		engine:    engine,
		gateway:   gateway,
		creds:     creds,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "session_service").Logger(),
		threshold: threshold,
		sessions:  make(map[string]*tutorSession),
	}
}

// Start extracts the problem, creates the conversation state, and obtains
// the opening mentor message. The opening exchange uses a fixed synthetic
// request with empty history and is never stored as a prior turn pair.
func (s *sessionService) Start(ctx context.Context, snap extract.Snapshot) (dto.SessionResponse, error) {
	problem, err := s.engine.Extract(snap)
	if err != nil {
		return dto.SessionResponse{}, err
	}

	key, err := s.creds.Get(ctx)
	if err != nil {
		return dto.SessionResponse{}, err
	}

	sess := &tutorSession{
		id:      uuid.NewString(),
		problem: problem,
	}

	system := prompt.Build(problem, false, s.threshold)
	opening := []ai.Message{{Role: ai.RoleUser, Content: prompt.OpeningRequest}}

	reply, err := s.gateway.Complete(ctx, key, system, opening)
	switch {
	case errors.Is(err, ai.ErrCredentialInvalid):
		s.invalidateCredential(ctx, sess)
	case err != nil:
		// Transport and provider failures become the opening mentor turn
		// so the student sees something and may simply retry.
		sess.view = append(sess.view, viewTurn{role: models.RoleMentor, content: failureText(err)})
	default:
		sess.view = append(sess.view, viewTurn{role: models.RoleMentor, content: reply})
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	observability.SessionsStarted().Inc()
	s.logger.Info().
		Str("session_id", sess.id).
		Str("platform", string(problem.Platform)).
		Str("title", problem.Title).
		Msg("session started")

	return s.respond(sess), nil
}

// Send processes one student turn through the gating policy.
func (s *sessionService) Send(ctx context.Context, id, content string) (dto.SessionResponse, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return dto.SessionResponse{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.ended {
		return dto.SessionResponse{}, ErrSessionEnded
	}

	clean := strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(content)))
	if clean == "" {
		return dto.SessionResponse{}, ErrEmptyMessage
	}

	key, err := s.creds.Get(ctx)
	if err != nil {
		return dto.SessionResponse{}, err
	}

	sess.history = append(sess.history, models.Turn{Role: models.RoleStudent, Content: clean})
	sess.view = append(sess.view, viewTurn{role: models.RoleStudent, content: clean})
	sess.attempts++

	reveal := sess.attempts >= s.threshold && !sess.pseudoGiven
	system := prompt.Build(sess.problem, reveal, s.threshold)

	reply, err := s.gateway.Complete(ctx, key, system, wireHistory(sess.history))
	switch {
	case errors.Is(err, ai.ErrCredentialInvalid):
		// The exchange contributes nothing to history beyond the notice.
		sess.history = sess.history[:len(sess.history)-1]
		s.invalidateCredential(ctx, sess)
		observability.Turns().WithLabelValues("credential_invalid").Inc()
	case err != nil:
		text := failureText(err)
		sess.history = append(sess.history, models.Turn{Role: models.RoleMentor, Content: text})
		sess.view = append(sess.view, viewTurn{role: models.RoleMentor, content: text})
		observability.Turns().WithLabelValues("failure").Inc()
	case reveal:
		// The unlock is consumed only once the call succeeded; a failed
		// reveal attempt stays available for the next turn.
		sess.pseudoGiven = true
		sess.history = append(sess.history, models.Turn{Role: models.RoleMentor, Content: reply})
		sess.view = append(sess.view, mentorRevealTurn(reply))
		sess.view = append(sess.view, viewTurn{
			role:    models.RoleSystem,
			content: fmt.Sprintf("Pseudocode unlocked after %d attempts. Keep going!", s.threshold),
		})
		observability.Turns().WithLabelValues("reveal").Inc()
	default:
		sess.history = append(sess.history, models.Turn{Role: models.RoleMentor, Content: reply})
		sess.view = append(sess.view, viewTurn{role: models.RoleMentor, content: reply})
		observability.Turns().WithLabelValues("interrogate").Inc()
	}

	return s.respond(sess), nil
}

// Reread re-runs only the code branch of extraction and merges the result
// into the existing problem, leaving every other field untouched.
func (s *sessionService) Reread(ctx context.Context, id string, snap extract.Snapshot) (dto.SessionResponse, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return dto.SessionResponse{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.ended {
		return dto.SessionResponse{}, ErrSessionEnded
	}

	code, err := s.engine.ExtractCode(snap)
	if err != nil {
		return dto.SessionResponse{}, err
	}

	sess.problem = sess.problem.WithCode(code)
	sess.view = append(sess.view, viewTurn{role: models.RoleSystem, content: rereadNotice})

	s.logger.Debug().Str("session_id", sess.id).Str("language", sess.problem.Language).Msg("code re-read")
	return s.respond(sess), nil
}

func (s *sessionService) Get(_ context.Context, id string) (dto.SessionResponse, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return dto.SessionResponse{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.respond(sess), nil
}

func (s *sessionService) lookup(id string) (*tutorSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// invalidateCredential handles the one non-recoverable gateway outcome:
// the stored key is cleared, the session ends, and a terminal notice is
// shown. New gateway calls require a fresh credential and a new session.
func (s *sessionService) invalidateCredential(ctx context.Context, sess *tutorSession) {
	if err := s.creds.Clear(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to clear invalid credential")
	}

	sess.ended = true
	sess.view = append(sess.view, viewTurn{role: models.RoleSystem, content: keyInvalidNotice})

	observability.SessionEndings().WithLabelValues("credential_invalid").Inc()
	s.logger.Warn().Str("session_id", sess.id).Msg("session ended: credential invalid")
}

// respond builds the render view. Callers hold the session lock.
func (s *sessionService) respond(sess *tutorSession) dto.SessionResponse {
	state := sessionStateActive
	if sess.ended {
		state = sessionStateEnded
	}

	turns := make([]dto.TurnResponse, 0, len(sess.view))
	for _, turn := range sess.view {
		entry := dto.TurnResponse{Role: string(turn.role), Content: turn.content}
		if turn.segments != nil {
			entry.Segments = &dto.RevealSegmentsResponse{
				Before:     turn.segments.Before,
				Pseudocode: turn.segments.Pseudocode,
				After:      turn.segments.After,
			}
		}
		turns = append(turns, entry)
	}

	return dto.SessionResponse{
		ID:          sess.id,
		State:       state,
		Problem:     dto.NewProblemResponse(sess.problem),
		Turns:       turns,
		Attempts:    sess.attempts,
		PseudoGiven: sess.pseudoGiven,
		Dots:        s.dots(sess),
	}
}

// dots derives the attempt indicator: the first min(attempts, threshold)
// slots are used; once the pseudocode is given the final slot becomes a
// distinct pseudo marker instead.
func (s *sessionService) dots(sess *tutorSession) []dto.AttemptDot {
	dots := make([]dto.AttemptDot, s.threshold)
	for i := 0; i < s.threshold && i < sess.attempts; i++ {
		dots[i].Used = true
	}
	if sess.pseudoGiven {
		dots[s.threshold-1] = dto.AttemptDot{Pseudo: true}
	}
	return dots
}

// mentorRevealTurn renders a reveal reply, degrading to a plain turn when
// the sentinel markers are absent or malformed.
func mentorRevealTurn(reply string) viewTurn {
	turn := viewTurn{role: models.RoleMentor, content: reply}
	if segments, ok := splitReveal(reply); ok {
		turn.segments = &segments
	}
	return turn
}

// wireHistory maps transcript roles onto completion-API roles.
func wireHistory(history []models.Turn) []ai.Message {
	messages := make([]ai.Message, 0, len(history))
	for _, turn := range history {
		role := ai.RoleUser
		if turn.Role == models.RoleMentor {
			role = ai.RoleAssistant
		}
		messages = append(messages, ai.Message{Role: role, Content: turn.Content})
	}
	return messages
}

func failureText(err error) string {
	var providerErr *ai.ProviderError
	if errors.As(err, &providerErr) {
		return fmt.Sprintf("API error: %s", providerErr.Message)
	}
	return fmt.Sprintf("Network error: %v", err)
}
