package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/herupa/herupa-go-api/internal/dto"
	"github.com/herupa/herupa-go-api/internal/extract"
	"github.com/herupa/herupa-go-api/internal/repository"
	"github.com/herupa/herupa-go-api/internal/service"
	"github.com/herupa/herupa-go-api/internal/utils"
)

// SessionHandler exposes the tutoring session endpoints.
type SessionHandler struct {
	service  service.SessionService
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewSessionHandler builds a new session handler.
func NewSessionHandler(service service.SessionService, validate *validator.Validate, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		service:  service,
		validate: validate,
		logger:   logger.With().Str("component", "session_handler").Logger(),
	}
}

// Register wires the handler routes into the router group.
func (h *SessionHandler) Register(router fiber.Router) {
	router.Post("", h.start)
	router.Get("/:id", h.get)
	router.Post("/:id/messages", h.send)
	router.Post("/:id/reread", h.reread)
}

func (h *SessionHandler) start(c *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	session, err := h.service.Start(c.Context(), req.Snapshot.Snapshot())
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrPageUnreadable):
			return utils.SendError(c, fiber.StatusUnprocessableEntity, "could not read the page, refresh and wait for it to fully load")
		case errors.Is(err, repository.ErrNoCredential):
			return utils.SendError(c, fiber.StatusUnauthorized, "no API key configured")
		default:
			h.logger.Error().Err(err).Msg("failed to start session")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to start session")
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "session started", session)
}

func (h *SessionHandler) get(c *fiber.Ctx) error {
	session, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "session not found")
		}
		h.logger.Error().Err(err).Msg("failed to fetch session")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch session")
	}

	return utils.SendSuccess(c, "session retrieved", session)
}

func (h *SessionHandler) send(c *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	session, err := h.service.Send(c.Context(), c.Params("id"), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "session not found")
		case errors.Is(err, service.ErrSessionEnded):
			return utils.SendError(c, fiber.StatusConflict, "session has ended, start a new one")
		case errors.Is(err, service.ErrEmptyMessage):
			return utils.SendError(c, fiber.StatusBadRequest, "message must not be empty")
		case errors.Is(err, repository.ErrNoCredential):
			return utils.SendError(c, fiber.StatusUnauthorized, "no API key configured")
		default:
			h.logger.Error().Err(err).Msg("failed to process turn")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to process turn")
		}
	}

	return utils.SendSuccess(c, "turn processed", session)
}

func (h *SessionHandler) reread(c *fiber.Ctx) error {
	var req dto.RereadRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	session, err := h.service.Reread(c.Context(), c.Params("id"), req.Snapshot.Snapshot())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "session not found")
		case errors.Is(err, service.ErrSessionEnded):
			return utils.SendError(c, fiber.StatusConflict, "session has ended, start a new one")
		case errors.Is(err, extract.ErrPageUnreadable):
			return utils.SendError(c, fiber.StatusUnprocessableEntity, "could not read the page")
		default:
			h.logger.Error().Err(err).Msg("failed to re-read code")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to re-read code")
		}
	}

	return utils.SendSuccess(c, "code re-read", session)
}
