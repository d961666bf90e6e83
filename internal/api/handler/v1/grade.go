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

type GradeService interface {
	CreateGrade(ctx context.Context, grade domain.Grade) (domain.Grade, error)
	GetGrade(ctx context.Context, id string) (domain.Grade, error)
	ListGrades(ctx context.Context) ([]domain.Grade, error)
	UpdateGrade(ctx context.Context, grade domain.Grade) (domain.Grade, error)
	DeleteGrade(ctx context.Context, id string) error
}

type GradeHandler struct {
	svc GradeService
}

func NewGradeHandler(svc GradeService) *GradeHandler {
	return &GradeHandler{
		svc: svc,
	}
}

// HandleCreateGrade godoc
// @Summary      Create a grade
// @Tags         grades
// @Produce      json
// @Param        request   body      request.GradeRequest true "request body"
// @Success      201      {object}   domain.Grade
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /grades [post]
func (h *GradeHandler) HandleCreateGrade(ctx *gin.Context) {
	var req request.GradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	grade, err := h.svc.CreateGrade(ctx.Request.Context(), domain.Grade{
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		ScheduleStart: req.ScheduleStart,
		ScheduleEnd:   req.ScheduleEnd,
	})
	if err != nil {
		if errors.Is(err, service.ErrGradeNameExists) ||
			errors.Is(err, service.ErrInvalidScheduleWindow) ||
			errors.Is(err, service.ErrInvalidCategory) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleCreateGrade -> h.svc.CreateGrade -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, grade)
}

// HandleGetGrade godoc
// @Summary      Get a grade by ID
// @Tags         grades
// @Produce      json
// @Param        gradeID   path      string true "grade ID"
// @Success      200      {object}   domain.Grade
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /grades/{gradeID} [get]
func (h *GradeHandler) HandleGetGrade(ctx *gin.Context) {
	grade, err := h.svc.GetGrade(ctx.Request.Context(), ctx.Param("gradeID"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleGetGrade -> h.svc.GetGrade -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, grade)
}

// HandleListGrades godoc
// @Summary      List all grades
// @Tags         grades
// @Produce      json
// @Success      200      {array}    domain.Grade
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /grades [get]
func (h *GradeHandler) HandleListGrades(ctx *gin.Context) {
	grades, err := h.svc.ListGrades(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListGrades -> h.svc.ListGrades -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, grades)
}

// HandleUpdateGrade godoc
// @Summary      Update a grade
// @Tags         grades
// @Produce      json
// @Param        gradeID   path      string true "grade ID"
// @Param        request   body      request.GradeRequest true "request body"
// @Success      200      {object}   domain.Grade
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /grades/{gradeID} [put]
func (h *GradeHandler) HandleUpdateGrade(ctx *gin.Context) {
	var req request.GradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	existing, err := h.svc.GetGrade(ctx.Request.Context(), ctx.Param("gradeID"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateGrade -> h.svc.GetGrade -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Category = req.Category
	existing.ScheduleStart = req.ScheduleStart
	existing.ScheduleEnd = req.ScheduleEnd

	grade, err := h.svc.UpdateGrade(ctx.Request.Context(), existing)
	if err != nil {
		if errors.Is(err, service.ErrGradeNameExists) ||
			errors.Is(err, service.ErrInvalidScheduleWindow) ||
			errors.Is(err, service.ErrInvalidCategory) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateGrade -> h.svc.UpdateGrade -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, grade)
}

// HandleDeleteGrade godoc
// @Summary      Delete a grade
// @Tags         grades
// @Produce      json
// @Param        gradeID   path      string true "grade ID"
// @Success      204
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /grades/{gradeID} [delete]
func (h *GradeHandler) HandleDeleteGrade(ctx *gin.Context) {
	err := h.svc.DeleteGrade(ctx.Request.Context(), ctx.Param("gradeID"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteGrade -> h.svc.DeleteGrade -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
