package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"NZWalks-API/internal/application"
	"NZWalks-API/internal/domain/model"
)

// WalkDifficultiesHandler 難易度に関するHTTPハンドラー
type WalkDifficultiesHandler struct {
	difficultiesService application.WalkDifficultiesService
	validator           RequestValidator
	logger              zerolog.Logger
}

func NewWalkDifficultiesHandler(difficultiesService application.WalkDifficultiesService, validator RequestValidator, logger zerolog.Logger) *WalkDifficultiesHandler {
	return &WalkDifficultiesHandler{
		difficultiesService: difficultiesService,
		validator:           validator,
		logger:              logger,
	}
}

func (h *WalkDifficultiesHandler) GetAllWalkDifficulties(c *gin.Context) {
	difficulties, err := h.difficultiesService.GetAllWalkDifficulties(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, difficulties)
}

func (h *WalkDifficultiesHandler) GetWalkDifficulty(c *gin.Context) {
	difficulty, err := h.difficultiesService.GetWalkDifficulty(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, difficulty)
}

func (h *WalkDifficultiesHandler) AddWalkDifficulty(c *gin.Context) {
	var req model.AddWalkDifficultyRequest
	if !bindRequest(c, h.validator, &req) {
		return
	}

	difficulty, err := h.difficultiesService.AddWalkDifficulty(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	created(c, "walk-difficulties", difficulty.ID, difficulty)
}

func (h *WalkDifficultiesHandler) UpdateWalkDifficulty(c *gin.Context) {
	var req model.UpdateWalkDifficultyRequest
	if !bindRequest(c, h.validator, &req) {
		return
	}

	difficulty, err := h.difficultiesService.UpdateWalkDifficulty(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, difficulty)
}

func (h *WalkDifficultiesHandler) DeleteWalkDifficulty(c *gin.Context) {
	difficulty, err := h.difficultiesService.DeleteWalkDifficulty(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, difficulty)
}
