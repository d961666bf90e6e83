package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/api/handler/v1/response"
)

type AdminService interface {
	FactoryReset(ctx context.Context) error
	SchemaVersion(ctx context.Context) (int, error)
}

type AdminHandler struct {
	svc AdminService
}

func NewAdminHandler(svc AdminService) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

// HandleFactoryReset godoc
// @Summary      Wipe every collection and rebuild the store
// @Tags         admin
// @Produce      json
// @Success      200      {object}   map[string]string
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /admin/factory-reset [post]
func (h *AdminHandler) HandleFactoryReset(ctx *gin.Context) {
	if err := h.svc.FactoryReset(ctx.Request.Context()); err != nil {
		err = fmt.Errorf("v1.HandleFactoryReset -> h.svc.FactoryReset -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "reset"})
}

// HandleSchemaVersion godoc
// @Summary      Get the store's schema version
// @Tags         admin
// @Produce      json
// @Success      200      {object}   map[string]int
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /admin/schema-version [get]
func (h *AdminHandler) HandleSchemaVersion(ctx *gin.Context) {
	version, err := h.svc.SchemaVersion(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleSchemaVersion -> h.svc.SchemaVersion -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"schema_version": version})
}
