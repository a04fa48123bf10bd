package router

import (
	"card24/controller"
	"card24/ws"

	"github.com/gin-gonic/gin"
)

func InitRouter(r *gin.Engine, game *controller.Game24Controller, hub *ws.Hub) {
	// 24 点接口路由
	api := r.Group("/game24")
	{
		api.POST("/new", game.NewGame)
		api.POST("/verify", game.Verify)
		api.POST("/solutions", game.Solutions)
		api.GET("/:gameID", game.GetGame)
	}

	// WebSocket 路由
	r.GET("/ws/game24", hub.HandleWebSocket)
}
