package company

import (
	"go-hradmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	companies := r.Group("/companies")
	companies.Use(middleware.AuthMiddleware())
	{
		companies.GET("", middleware.RBACAuthorize(rbacService, "company", "read"), handler.GetAll)
		companies.GET("/:id", middleware.RBACAuthorize(rbacService, "company", "read"), handler.GetById)
		companies.GET("/:id/stats", middleware.RBACAuthorize(rbacService, "company", "read"), handler.GetStats)
		companies.POST("", middleware.RBACAuthorize(rbacService, "company", "create"), handler.Create)
		companies.PUT("/:id", middleware.RBACAuthorize(rbacService, "company", "update"), handler.Update)
		companies.DELETE("/:id", middleware.RBACAuthorize(rbacService, "company", "delete"), handler.Delete)
	}
}
