package document

import (
	"go-hradmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	documents := r.Group("/documents")
	documents.Use(middleware.AuthMiddleware())
	{
		documents.GET("", middleware.RBACAuthorize(rbacService, "document", "read"), handler.GetAllByEntity)
		documents.GET("/:id", middleware.RBACAuthorize(rbacService, "document", "read"), handler.GetById)
		documents.POST("", middleware.RBACAuthorize(rbacService, "document", "create"), handler.Create)
		documents.DELETE("/:id", middleware.RBACAuthorize(rbacService, "document", "delete"), handler.Delete)
	}
}
