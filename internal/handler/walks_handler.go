package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"NZWalks-API/internal/application"
	"NZWalks-API/internal/domain/model"
)

// WalksHandler 散歩道に関するHTTPハンドラー
type WalksHandler struct {
	walksService application.WalksService
	validator    RequestValidator
	logger       zerolog.Logger
}

// NewWalksHandler WalksHandlerの新しいインスタンスを作成
func NewWalksHandler(walksService application.WalksService, validator RequestValidator, logger zerolog.Logger) *WalksHandler {
	return &WalksHandler{
		walksService: walksService,
		validator:    validator,
		logger:       logger,
	}
}

// GetAllWalks GET /walks - 地域・難易度を含む散歩道の一覧
func (h *WalksHandler) GetAllWalks(c *gin.Context) {
	walks, err := h.walksService.GetAllWalks(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, walks)
}

// GetWalk GET /walks/:id - 散歩道の詳細
func (h *WalksHandler) GetWalk(c *gin.Context) {
	walk, err := h.walksService.GetWalk(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, walk)
}

// AddWalk POST /walks - 散歩道の作成
func (h *WalksHandler) AddWalk(c *gin.Context) {
	var req model.AddWalkRequest
	if !bindRequest(c, h.validator, &req) {
		return
	}

	walk, err := h.walksService.AddWalk(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	created(c, "walks", walk.ID, walk)
}

// UpdateWalk PUT /walks/:id - 散歩道の更新
func (h *WalksHandler) UpdateWalk(c *gin.Context) {
	var req model.UpdateWalkRequest
	if !bindRequest(c, h.validator, &req) {
		return
	}

	walk, err := h.walksService.UpdateWalk(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, walk)
}

// DeleteWalk DELETE /walks/:id - 散歩道の削除
func (h *WalksHandler) DeleteWalk(c *gin.Context) {
	walk, err := h.walksService.DeleteWalk(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, walk)
}
