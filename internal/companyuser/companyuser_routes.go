package companyuser

import (
	"go-hradmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	members := r.Group("/members")
	members.Use(middleware.AuthMiddleware())
	{
		members.GET("", middleware.RBACAuthorize(rbacService, "member", "read"), handler.GetAll)
		members.GET("/me", handler.GetMine)
		members.GET("/:id", middleware.RBACAuthorize(rbacService, "member", "read"), handler.GetById)
		members.POST("", middleware.RBACAuthorize(rbacService, "member", "create"), handler.Create)
		members.PUT("/:id", middleware.RBACAuthorize(rbacService, "member", "update"), handler.Update)
		members.DELETE("/:id", middleware.RBACAuthorize(rbacService, "member", "delete"), handler.Delete)
	}
}
