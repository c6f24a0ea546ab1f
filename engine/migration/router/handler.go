package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apollotravel/apollo-migration/engine/migration/uc"
	"github.com/apollotravel/apollo-migration/pkg/logger"
)

// Handler handles migration HTTP requests.
type Handler struct {
	factory *uc.Factory
}

// NewHandler creates a migration handler.
func NewHandler(factory *uc.Factory) *Handler {
	return &Handler{factory: factory}
}

// Migrate runs the bulk migration over every legacy booking document.
// Failed runs return 400 with the same response envelope as successful ones.
func (h *Handler) Migrate(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)
	log.Info("Received bulk conversion request")
	response := h.factory.NewMigrateAll().Execute(ctx)
	if response.Success {
		c.JSON(http.StatusOK, response)
		return
	}
	c.JSON(http.StatusBadRequest, response)
}

type migrateDocumentQuery struct {
	TargetType string `form:"targetType" binding:"required,max=100"`
}

// MigrateDocument converts one document by id to the requested target type.
func (h *Handler) MigrateDocument(c *gin.Context) {
	ctx := c.Request.Context()
	documentID := c.Param("id")
	if documentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": "Document ID is required",
		})
		return
	}
	var query migrateDocumentQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": "Target document type is required",
		})
		return
	}
	log := logger.FromContext(ctx)
	log.Info("Converting single document", "document_id", documentID, "target_type", query.TargetType)
	response := h.factory.NewConvertDocument(&uc.ConvertDocumentInput{
		DocumentID: documentID,
		TargetType: query.TargetType,
	}).Execute(ctx)
	if response.Success {
		c.JSON(http.StatusOK, response)
		return
	}
	c.JSON(http.StatusBadRequest, response)
}

// ListRules returns descriptors of every registered conversion rule.
func (h *Handler) ListRules(c *gin.Context) {
	descriptors := h.factory.NewListRules().Execute(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"rules": descriptors})
}

type validateRuleQuery struct {
	SourceType string `form:"sourceType" binding:"required,max=100"`
	TargetType string `form:"targetType" binding:"required,max=100"`
}

// ValidateRule reports whether a rule is registered for a source/target pair.
func (h *Handler) ValidateRule(c *gin.Context) {
	var query validateRuleQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": "Source type and target type are required",
		})
		return
	}
	valid := h.factory.NewValidateRule(&uc.ValidateRuleInput{
		SourceType: query.SourceType,
		TargetType: query.TargetType,
	}).Execute(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"valid": valid})
}
