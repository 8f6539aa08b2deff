package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmcquade/lifedesk-backend/internal/logger"
	"github.com/bmcquade/lifedesk-backend/internal/services"
)

type IncomeHandler struct {
	log           *logger.Logger
	incomeService services.IncomeService
	statusCfg     StatusConfig
}

func NewIncomeHandler(log *logger.Logger, incomeService services.IncomeService, statusCfg StatusConfig) *IncomeHandler {
	return &IncomeHandler{
		log:           log.With("handler", "IncomeHandler"),
		incomeService: incomeService,
		statusCfg:     statusCfg,
	}
}

// GET /income
func (h *IncomeHandler) List(c *gin.Context) {
	income, err := h.incomeService.List(c.Request.Context(), nil)
	if err != nil {
		respondError(c, h.statusCfg, h.log, err)
		return
	}
	c.JSON(http.StatusOK, income)
}

// POST /income
// body: { "user": "...", "amount": 1200, "title": "...", "description": "..." }
func (h *IncomeHandler) Create(c *gin.Context) {
	var req struct {
		User        string  `json:"user"`
		Amount      float64 `json:"amount"`
		Title       string  `json:"title"`
		Description string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "All fields are required")
		return
	}

	msg, err := h.incomeService.Create(c.Request.Context(), nil, services.IncomeInput{
		User:        parseID(req.User),
		Amount:      req.Amount,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, h.statusCfg, h.log, err)
		return
	}
	respondMessage(c, http.StatusCreated, msg)
}

// PATCH /income
// body: create fields plus "id"
func (h *IncomeHandler) Update(c *gin.Context) {
	var req struct {
		ID          string  `json:"id"`
		User        string  `json:"user"`
		Amount      float64 `json:"amount"`
		Title       string  `json:"title"`
		Description string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "All fields are required")
		return
	}

	msg, err := h.incomeService.Update(c.Request.Context(), nil, parseID(req.ID), services.IncomeInput{
		User:        parseID(req.User),
		Amount:      req.Amount,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, h.statusCfg, h.log, err)
		return
	}
	respondText(c, msg)
}

// DELETE /income
// body: { "id": "..." }
func (h *IncomeHandler) Delete(c *gin.Context) {
	var req struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Income ID required")
		return
	}

	msg, err := h.incomeService.Delete(c.Request.Context(), nil, parseID(req.ID))
	if err != nil {
		respondError(c, h.statusCfg, h.log, err)
		return
	}
	respondText(c, msg)
}
