package violation

import (
	"go-hradmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	violations := r.Group("")
	violations.Use(middleware.AuthMiddleware())
	{
		violations.GET("/employees/:id/violations", middleware.RBACAuthorize(rbacService, "violation", "read"), handler.GetAllByEmployee)
		violations.POST("/employees/:id/violations", middleware.RBACAuthorize(rbacService, "violation", "create"), handler.Create)
		violations.GET("/violations/:id", middleware.RBACAuthorize(rbacService, "violation", "read"), handler.GetById)
		violations.PUT("/violations/:id", middleware.RBACAuthorize(rbacService, "violation", "update"), handler.Update)
		violations.DELETE("/violations/:id", middleware.RBACAuthorize(rbacService, "violation", "delete"), handler.Delete)
	}
}
