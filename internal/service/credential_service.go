package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/herupa/herupa-go-api/internal/dto"
	"github.com/herupa/herupa-go-api/internal/repository"
	"github.com/herupa/herupa-go-api/pkg/ai"
)

var (
	// ErrCredentialFormat rejects keys that cannot be Groq keys.
	ErrCredentialFormat = errors.New("invalid key format, expected a key starting with \"gsk_\"")
	// ErrCredentialRejected indicates the provider refused the key during
	// verification.
	ErrCredentialRejected = errors.New("key verification failed")
)

const (
	keyPrefix      = "gsk_"
	maskVisibleLen = 12
)

// CredentialService manages the single stored provider key: verification
// before persisting, masked display, and removal.
type CredentialService interface {
	Save(ctx context.Context, req dto.SaveCredentialRequest) (dto.CredentialResponse, error)
	Status(ctx context.Context) (dto.CredentialResponse, error)
	Clear(ctx context.Context) error
}

type credentialService struct {
	repo     repository.CredentialRepository
	gateway  ai.Client
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewCredentialService builds the credential service.
func NewCredentialService(repo repository.CredentialRepository, gateway ai.Client, validate *validator.Validate, logger zerolog.Logger) CredentialService {
	return &credentialService{
		repo:     repo,
		gateway:  gateway,
		validate: validate,
		logger:   logger.With().Str("component", "credential_service").Logger(),
	}
}

// Save verifies the key against the provider with a minimal completion and
// persists it only when the probe succeeds.
func (s *credentialService) Save(ctx context.Context, req dto.SaveCredentialRequest) (dto.CredentialResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.CredentialResponse{}, err
	}

	key := strings.TrimSpace(req.Key)
	if !strings.HasPrefix(key, keyPrefix) {
		return dto.CredentialResponse{}, ErrCredentialFormat
	}

	if err := s.gateway.Verify(ctx, key); err != nil {
		s.logger.Warn().Err(err).Msg("key verification failed")
		return dto.CredentialResponse{}, fmt.Errorf("%w: %v", ErrCredentialRejected, err)
	}

	if err := s.repo.Save(ctx, key); err != nil {
		return dto.CredentialResponse{}, err
	}

	s.logger.Info().Msg("credential saved")
	return dto.CredentialResponse{Configured: true, MaskedKey: maskKey(key)}, nil
}

func (s *credentialService) Status(ctx context.Context) (dto.CredentialResponse, error) {
	key, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoCredential) {
			return dto.CredentialResponse{}, nil
		}
		return dto.CredentialResponse{}, err
	}

	return dto.CredentialResponse{Configured: true, MaskedKey: maskKey(key)}, nil
}

func (s *credentialService) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	s.logger.Info().Msg("credential cleared")
	return nil
}

// maskKey keeps the first eight and last four characters visible, enough to
// recognise a key without exposing it.
func maskKey(key string) string {
	if len(key) <= maskVisibleLen {
		return strings.Repeat("*", len(key))
	}
	return key[:8] + strings.Repeat("*", 18) + key[len(key)-4:]
}
