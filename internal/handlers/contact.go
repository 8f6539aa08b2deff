package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bmcquade/lifedesk-backend/internal/logger"
	"github.com/bmcquade/lifedesk-backend/internal/services"
)

type ContactHandler struct {
	log            *logger.Logger
	contactService services.ContactService
	statusCfg      StatusConfig
}

func NewContactHandler(log *logger.Logger, contactService services.ContactService, statusCfg StatusConfig) *ContactHandler {
	return &ContactHandler{
		log:            log.With("handler", "ContactHandler"),
		contactService: contactService,
		statusCfg:      statusCfg,
	}
}

// GET /contact
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.contactService.List(c.Request.Context(), nil)
	if err != nil {
		respondError(c, h.statusCfg, h.log, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// POST /contact
// body: { "user": "...", "name": "...", "phone": "...", "email": "...", "description": "..." }
func (h *ContactHandler) Create(c *gin.Context) {
	var req struct {
		User        string `json:"user"`
		Name        string `json:"name"`
		Phone       string `json:"phone"`
		Email       string `json:"email"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "All fields are required")
		return
	}

	msg, err := h.contactService.Create(c.Request.Context(), nil, services.ContactInput{
		User:        parseID(req.User),
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, h.statusCfg, h.log, err)
		return
	}
	respondMessage(c, http.StatusCreated, msg)
}

// PATCH /contact
// body: create fields plus "id"
func (h *ContactHandler) Update(c *gin.Context) {
	var req struct {
		ID          string `json:"id"`
		User        string `json:"user"`
		Name        string `json:"name"`
		Phone       string `json:"phone"`
		Email       string `json:"email"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "All fields are required")
		return
	}

	msg, err := h.contactService.Update(c.Request.Context(), nil, parseID(req.ID), services.ContactInput{
		User:        parseID(req.User),
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, h.statusCfg, h.log, err)
		return
	}
	respondText(c, msg)
}

// DELETE /contact
// body: { "id": "..." }
func (h *ContactHandler) Delete(c *gin.Context) {
	var req struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Contact ID required")
		return
	}

	msg, err := h.contactService.Delete(c.Request.Context(), nil, parseID(req.ID))
	if err != nil {
		respondError(c, h.statusCfg, h.log, err)
		return
	}
	respondText(c, msg)
}

// parseID maps absent or malformed identifiers to uuid.Nil; the services
// treat uuid.Nil as a missing required field.
func parseID(raw string) uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}
