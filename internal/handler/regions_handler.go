package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"NZWalks-API/internal/application"
	"NZWalks-API/internal/domain/model"
)

// RegionsHandler 地域に関するHTTPハンドラー
type RegionsHandler struct {
	regionsService application.RegionsService
	validator      RequestValidator
	logger         zerolog.Logger
}

// NewRegionsHandler validator が nil の場合、入力値チェックを行わない
func NewRegionsHandler(regionsService application.RegionsService, validator RequestValidator, logger zerolog.Logger) *RegionsHandler {
	return &RegionsHandler{
		regionsService: regionsService,
		validator:      validator,
		logger:         logger,
	}
}

// GetAllRegions GET /regions
func (h *RegionsHandler) GetAllRegions(c *gin.Context) {
	regions, err := h.regionsService.GetAllRegions(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, regions)
}

// GetRegion GET /regions/:id
func (h *RegionsHandler) GetRegion(c *gin.Context) {
	region, err := h.regionsService.GetRegion(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, region)
}

// AddRegion POST /regions
func (h *RegionsHandler) AddRegion(c *gin.Context) {
	var req model.AddRegionRequest
	if !bindRequest(c, h.validator, &req) {
		return
	}

	region, err := h.regionsService.AddRegion(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	created(c, "regions", region.ID, region)
}

// UpdateRegion PUT /regions/:id
func (h *RegionsHandler) UpdateRegion(c *gin.Context) {
	var req model.UpdateRegionRequest
	if !bindRequest(c, h.validator, &req) {
		return
	}

	region, err := h.regionsService.UpdateRegion(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, region)
}

// DeleteRegion DELETE /regions/:id
func (h *RegionsHandler) DeleteRegion(c *gin.Context) {
	region, err := h.regionsService.DeleteRegion(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, region)
}
