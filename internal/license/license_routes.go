package license

import (
	"go-hradmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	licenses := r.Group("/licenses")
	licenses.Use(middleware.AuthMiddleware())
	{
		licenses.GET("", middleware.RBACAuthorize(rbacService, "license", "read"), handler.GetAll)
		licenses.GET("/:id", middleware.RBACAuthorize(rbacService, "license", "read"), handler.GetById)
		licenses.POST("", middleware.RBACAuthorize(rbacService, "license", "create"), handler.Create)
		licenses.PUT("/:id", middleware.RBACAuthorize(rbacService, "license", "update"), handler.Update)
		licenses.DELETE("/:id", middleware.RBACAuthorize(rbacService, "license", "delete"), handler.Delete)
	}
}
