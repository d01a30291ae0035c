package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/herupa/herupa-go-api/internal/dto"
	"github.com/herupa/herupa-go-api/internal/service"
	"github.com/herupa/herupa-go-api/internal/utils"
)

// CredentialHandler exposes the API-key management endpoints.
type CredentialHandler struct {
	service service.CredentialService
	logger  zerolog.Logger
}

// NewCredentialHandler builds a new credential handler.
func NewCredentialHandler(service service.CredentialService, logger zerolog.Logger) *CredentialHandler {
	return &CredentialHandler{
		service: service,
		logger:  logger.With().Str("component", "credential_handler").Logger(),
	}
}

// Register wires the handler routes into the router group.
func (h *CredentialHandler) Register(router fiber.Router) {
	router.Put("", h.save)
	router.Get("", h.status)
	router.Delete("", h.clear)
}

func (h *CredentialHandler) save(c *fiber.Ctx) error {
	var req dto.SaveCredentialRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	credential, err := h.service.Save(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCredentialFormat):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrCredentialRejected):
			return utils.SendError(c, fiber.StatusUnauthorized, "key verification failed, check your key and try again")
		default:
			h.logger.Error().Err(err).Msg("failed to save credential")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to save key")
		}
	}

	return utils.SendSuccess(c, "key saved", credential)
}

func (h *CredentialHandler) status(c *fiber.Ctx) error {
	credential, err := h.service.Status(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to read credential status")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to read key status")
	}

	return utils.SendSuccess(c, "key status", credential)
}

func (h *CredentialHandler) clear(c *fiber.Ctx) error {
	if err := h.service.Clear(c.Context()); err != nil {
		h.logger.Error().Err(err).Msg("failed to clear credential")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to remove key")
	}

	return utils.SendSuccess(c, "key removed", nil)
}
