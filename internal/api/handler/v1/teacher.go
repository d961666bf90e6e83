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

type TeacherService interface {
	GetTeacher(ctx context.Context, id string) (domain.Teacher, error)
	GetTeacherByCode(ctx context.Context, code string) (domain.Teacher, error)
	ListTeachers(ctx context.Context) ([]domain.Teacher, error)
	UpdateProfile(ctx context.Context, id, name, email, assignedGroup string) (domain.Teacher, error)
	SetActive(ctx context.Context, id string, active bool) (domain.Teacher, error)
}

type TeacherHandler struct {
	svc TeacherService
}

func NewTeacherHandler(svc TeacherService) *TeacherHandler {
	return &TeacherHandler{
		svc: svc,
	}
}

// HandleGetTeacher godoc
// @Summary      Get a teacher by ID
// @Tags         teachers
// @Produce      json
// @Param        teacherID   path      string true "teacher ID"
// @Success      200      {object}   domain.Teacher
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /teachers/{teacherID} [get]
func (h *TeacherHandler) HandleGetTeacher(ctx *gin.Context) {
	teacher, err := h.svc.GetTeacher(ctx.Request.Context(), ctx.Param("teacherID"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleGetTeacher -> h.svc.GetTeacher -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, teacher)
}

// HandleGetTeacherByCode godoc
// @Summary      Look up a teacher by personal code
// @Tags         teachers
// @Produce      json
// @Param        code   path      string true "6-character personal code"
// @Success      200      {object}   domain.Teacher
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /teachers/code/{code} [get]
func (h *TeacherHandler) HandleGetTeacherByCode(ctx *gin.Context) {
	teacher, err := h.svc.GetTeacherByCode(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleGetTeacherByCode -> h.svc.GetTeacherByCode -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, teacher)
}

// HandleListTeachers godoc
// @Summary      List all teachers
// @Tags         teachers
// @Produce      json
// @Success      200      {array}    domain.Teacher
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /teachers [get]
func (h *TeacherHandler) HandleListTeachers(ctx *gin.Context) {
	teachers, err := h.svc.ListTeachers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListTeachers -> h.svc.ListTeachers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, teachers)
}

// HandleUpdateTeacher godoc
// @Summary      Update a teacher's profile
// @Tags         teachers
// @Produce      json
// @Param        teacherID   path    string true "teacher ID"
// @Param        request   body      request.TeacherUpdateRequest true "request body"
// @Success      200      {object}   domain.Teacher
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /teachers/{teacherID} [put]
func (h *TeacherHandler) HandleUpdateTeacher(ctx *gin.Context) {
	var req request.TeacherUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	teacher, err := h.svc.UpdateProfile(ctx.Request.Context(), ctx.Param("teacherID"), req.Name, req.Email, req.AssignedGroup)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrNotFound))
			return
		}
		if errors.Is(err, service.ErrTeacherEmailExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrTeacherEmailExists))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateTeacher -> h.svc.UpdateProfile -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, teacher)
}

// HandleSetTeacherActive godoc
// @Summary      Activate or deactivate a teacher account
// @Tags         teachers
// @Produce      json
// @Param        teacherID   path    string true "teacher ID"
// @Param        request   body      request.SetActiveRequest true "request body"
// @Success      200      {object}   domain.Teacher
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /teachers/{teacherID}/active [put]
func (h *TeacherHandler) HandleSetTeacherActive(ctx *gin.Context) {
	var req request.SetActiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	teacher, err := h.svc.SetActive(ctx.Request.Context(), ctx.Param("teacherID"), *req.IsActive)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleSetTeacherActive -> h.svc.SetActive -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, teacher)
}
