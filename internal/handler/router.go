package handler

import (
	"github.com/gin-gonic/gin"

	"NZWalks-API/internal/auth"
	"NZWalks-API/internal/middleware"
)

// Handlers ルーティングに必要なハンドラー一式
type Handlers struct {
	Health           *HealthHandler
	Regions          *RegionsHandler
	WalkDifficulties *WalkDifficultiesHandler
	Walks            *WalksHandler
}

// RegisterRoutes 読み取りは reader、更新系は writer ロールを要求する
func RegisterRoutes(r gin.IRouter, h Handlers, authz *middleware.Authorizer) {
	r.GET("/health", h.Health.Health)

	read := authz.RequireRole(auth.RoleReader)
	write := authz.RequireRole(auth.RoleWriter)

	regions := r.Group("/regions")
	{
		regions.GET("", read, h.Regions.GetAllRegions)
		regions.GET("/:id", read, h.Regions.GetRegion)
		regions.POST("", write, h.Regions.AddRegion)
		regions.PUT("/:id", write, h.Regions.UpdateRegion)
		regions.DELETE("/:id", write, h.Regions.DeleteRegion)
	}

	difficulties := r.Group("/walk-difficulties")
	{
		difficulties.GET("", read, h.WalkDifficulties.GetAllWalkDifficulties)
		difficulties.GET("/:id", read, h.WalkDifficulties.GetWalkDifficulty)
		difficulties.POST("", write, h.WalkDifficulties.AddWalkDifficulty)
		difficulties.PUT("/:id", write, h.WalkDifficulties.UpdateWalkDifficulty)
		difficulties.DELETE("/:id", write, h.WalkDifficulties.DeleteWalkDifficulty)
	}

	walks := r.Group("/walks")
	{
		walks.GET("", read, h.Walks.GetAllWalks)
		walks.GET("/:id", read, h.Walks.GetWalk)
		walks.POST("", write, h.Walks.AddWalk)
		walks.PUT("/:id", write, h.Walks.UpdateWalk)
		walks.DELETE("/:id", write, h.Walks.DeleteWalk)
	}
}
