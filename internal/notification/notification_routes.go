package notification

import (
	"go-hradmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", handler.GetAll)
		notifications.GET("/unread-count", handler.UnreadCount)
		notifications.POST("", middleware.RBACAuthorize(rbacService, "notification", "create"), handler.Create)
		notifications.PUT("/:id/read", handler.MarkRead)
		notifications.DELETE("/:id", handler.Delete)
	}
}
