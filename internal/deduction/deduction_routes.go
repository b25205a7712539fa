package deduction

import (
	"go-hradmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	deductions := r.Group("")
	deductions.Use(middleware.AuthMiddleware())
	{
		deductions.GET("/employees/:id/deductions", middleware.RBACAuthorize(rbacService, "deduction", "read"), handler.GetAllByEmployee)
		deductions.POST("/employees/:id/deductions", middleware.RBACAuthorize(rbacService, "deduction", "create"), handler.Create)
		deductions.GET("/deductions/:id", middleware.RBACAuthorize(rbacService, "deduction", "read"), handler.GetById)
		deductions.PUT("/deductions/:id", middleware.RBACAuthorize(rbacService, "deduction", "update"), handler.Update)
		deductions.DELETE("/deductions/:id", middleware.RBACAuthorize(rbacService, "deduction", "delete"), handler.Delete)
	}
}
