package router

import (
	"github.com/gin-gonic/gin"

	"github.com/apollotravel/apollo-migration/engine/migration/uc"
)

// RegisterRoutes registers all migration routes under the API base group.
func RegisterRoutes(apiBase *gin.RouterGroup, factory *uc.Factory) {
	handler := NewHandler(factory)
	migration := apiBase.Group("/migration")
	{
		migration.POST("/migrate", handler.Migrate)
		migration.POST("/migrate/:id", handler.MigrateDocument)
		migration.GET("/rules", handler.ListRules)
		migration.GET("/validate", handler.ValidateRule)
	}
}
