package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"NZWalks-API/internal/domain/model"
	"NZWalks-API/internal/validation"
)

// RequestValidator リクエストボディの入力値チェック
type RequestValidator interface {
	Struct(req any) error
}

// respondError エラーをHTTPレスポンスに変換する。
// 詳細はログにのみ残し、500 では汎用メッセージを返す
func respondError(c *gin.Context, logger zerolog.Logger, err error) {
	var verr *validation.Errors
	switch {
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "resource not found",
		})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": "request validation failed",
			"fields":  verr.Fields,
		})
	default:
		_ = c.Error(err)
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("uri", c.Request.RequestURI).
			Msg("リクエスト処理失敗")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "internal server error",
		})
	}
}

// bindRequest JSON をデコードし、validator が設定されていれば検証する
func bindRequest(c *gin.Context, v RequestValidator, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return false
	}
	if v == nil {
		return true
	}
	if err := v.Struct(req); err != nil {
		respondError(c, zerolog.Nop(), err)
		return false
	}
	return true
}

func created(c *gin.Context, kind, id string, body any) {
	c.Header("Location", "/"+kind+"/"+id)
	c.JSON(http.StatusCreated, body)
}
