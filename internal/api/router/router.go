package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/overdue-reminder/internal/api/handlers/reminder"
	"github.com/aliskhannn/overdue-reminder/internal/api/handlers/settings"
	"github.com/aliskhannn/overdue-reminder/internal/middlewares"
)

func New(reminderHandler *reminder.Handler, settingsHandler *settings.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(middlewares.MetricsMiddleware)
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	e.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := e.Group("/api/reminders")
	{
		api.POST("/run", reminderHandler.Run)
		api.POST("/history/:id/delivery", reminderHandler.Delivery)

		users := api.Group("/users/:id")
		users.POST("/process", reminderHandler.Process)
		users.GET("/stats", reminderHandler.Stats)
		users.GET("/lendings/:lendingId/schedule", reminderHandler.Schedule)

		users.GET("/settings", settingsHandler.Get)
		users.PUT("/settings", settingsHandler.Update)
		users.DELETE("/settings", settingsHandler.Reset)
	}

	return e
}
