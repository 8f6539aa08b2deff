package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmcquade/lifedesk-backend/internal/logger"
	"github.com/bmcquade/lifedesk-backend/internal/services"
)

type InfoHandler struct {
	log         *logger.Logger
	infoService services.InfoService
	statusCfg   StatusConfig
}

func NewInfoHandler(log *logger.Logger, infoService services.InfoService, statusCfg StatusConfig) *InfoHandler {
	return &InfoHandler{
		log:         log.With("handler", "InfoHandler"),
		infoService: infoService,
		statusCfg:   statusCfg,
	}
}

// GET /info
func (h *InfoHandler) List(c *gin.Context) {
	info, err := h.infoService.List(c.Request.Context(), nil)
	if err != nil {
		respondError(c, h.statusCfg, h.log, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// POST /info
// body: { "user": "...", "title": "...", "description": "..." }
func (h *InfoHandler) Create(c *gin.Context) {
	var req struct {
		User        string `json:"user"`
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "All fields are required")
		return
	}

	msg, err := h.infoService.Create(c.Request.Context(), nil, services.InfoInput{
		User:        parseID(req.User),
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, h.statusCfg, h.log, err)
		return
	}
	respondMessage(c, http.StatusCreated, msg)
}

// PATCH /info
// body: { "id": "...", "title": "...", "description": "..." }
func (h *InfoHandler) Update(c *gin.Context) {
	var req struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "All fields are required")
		return
	}

	msg, err := h.infoService.Update(c.Request.Context(), nil, parseID(req.ID), req.Title, req.Description)
	if err != nil {
		respondError(c, h.statusCfg, h.log, err)
		return
	}
	respondText(c, msg)
}

// DELETE /info
// body: { "id": "..." }
func (h *InfoHandler) Delete(c *gin.Context) {
	var req struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Info ID required")
		return
	}

	msg, err := h.infoService.Delete(c.Request.Context(), nil, parseID(req.ID))
	if err != nil {
		respondError(c, h.statusCfg, h.log, err)
		return
	}
	respondText(c, msg)
}
