package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/api/handler/v1/request"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/api/handler/v1/response"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/domain"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/service"
)

type MenuService interface {
	SaveMenu(ctx context.Context, entry domain.MenuEntry) (domain.MenuEntry, error)
	GetMenuByDate(ctx context.Context, date string) (domain.MenuEntry, error)
	ListMenus(ctx context.Context) ([]domain.MenuEntry, error)
}

type MenuHandler struct {
	svc MenuService
}

func NewMenuHandler(svc MenuService) *MenuHandler {
	return &MenuHandler{
		svc: svc,
	}
}

// HandleSaveMenu godoc
// @Summary      Create or replace the menu for a date
// @Tags         menus
// @Produce      json
// @Param        request   body      request.MenuRequest true "request body"
// @Success      200      {object}   domain.MenuEntry
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /menus [put]
func (h *MenuHandler) HandleSaveMenu(ctx *gin.Context) {
	var req request.MenuRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	entry, err := h.svc.SaveMenu(ctx.Request.Context(), domain.MenuEntry{
		Date:     req.Date,
		MainDish: req.MainDish,
		SideDish: req.SideDish,
		Drink:    req.Drink,
		Dessert:  req.Dessert,
		Details:  req.Details,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotSerializable) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrNotSerializable))
			return
		}

		err = fmt.Errorf("v1.HandleSaveMenu -> h.svc.SaveMenu -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, entry)
}

// HandleGetMenu godoc
// @Summary      Get the menu for a date
// @Tags         menus
// @Produce      json
// @Param        date      path      string true "date (YYYY-MM-DD)"
// @Success      200      {object}   domain.MenuEntry
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /menus/{date} [get]
func (h *MenuHandler) HandleGetMenu(ctx *gin.Context) {
	entry, err := h.svc.GetMenuByDate(ctx.Request.Context(), ctx.Param("date"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleGetMenu -> h.svc.GetMenuByDate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, entry)
}

// HandleListMenus godoc
// @Summary      List all menus
// @Tags         menus
// @Produce      json
// @Success      200      {array}    domain.MenuEntry
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /menus [get]
func (h *MenuHandler) HandleListMenus(ctx *gin.Context) {
	entries, err := h.svc.ListMenus(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListMenus -> h.svc.ListMenus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, entries)
}
