package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/api/handler/v1/request"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/api/handler/v1/response"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/api/middleware"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/domain"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/service"
)

type MealService interface {
	CheckIn(ctx context.Context, teacher domain.Teacher, group string, now time.Time) (domain.MealRecord, error)
	StartMeal(ctx context.Context, recordID string, now time.Time) (domain.MealRecord, error)
	TodayByGroup(ctx context.Context, group string, now time.Time) ([]service.MealView, error)
	HistoryByTeacher(ctx context.Context, teacherID string, now time.Time) ([]service.MealView, error)
	GetRecord(ctx context.Context, recordID string, now time.Time) (service.MealView, error)
}

type MealHandler struct {
	svc      MealService
	teachers TeacherService
}

func NewMealHandler(svc MealService, teachers TeacherService) *MealHandler {
	return &MealHandler{
		svc:      svc,
		teachers: teachers,
	}
}

// HandleCheckIn godoc
// @Summary      Check in the calling teacher for a group's meal
// @Tags         meals
// @Produce      json
// @Param        request   body      request.CheckInRequest true "request body"
// @Success      201      {object}   domain.MealRecord
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.DuplicateRegistration
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /meals/check-in [post]
func (h *MealHandler) HandleCheckIn(ctx *gin.Context) {
	var req request.CheckInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	teacherID := ctx.GetString(middleware.ContextKeyUserID)
	teacher, err := h.teachers.GetTeacher(ctx.Request.Context(), teacherID)
	if err != nil {
		err = fmt.Errorf("v1.HandleCheckIn -> h.teachers.GetTeacher -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	record, err := h.svc.CheckIn(ctx.Request.Context(), teacher, req.Group, time.Now())
	if err != nil {
		var dup *service.DuplicateRegistrationError
		if errors.As(err, &dup) {
			ctx.AbortWithStatusJSON(http.StatusConflict, response.DuplicateRegistration{
				Error:    dup.Error(),
				Existing: dup.Existing,
			})
			return
		}

		err = fmt.Errorf("v1.HandleCheckIn -> h.svc.CheckIn -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, record)
}

// HandleStartMeal godoc
// @Summary      Start the meal for a record
// @Tags         meals
// @Produce      json
// @Param        recordID   path      string true "meal record ID"
// @Success      200      {object}   domain.MealRecord
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /meals/{recordID}/start [post]
func (h *MealHandler) HandleStartMeal(ctx *gin.Context) {
	record, err := h.svc.StartMeal(ctx.Request.Context(), ctx.Param("recordID"), time.Now())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrNotFound))
			return
		}
		if errors.Is(err, service.ErrMealAlreadyStarted) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrMealAlreadyStarted))
			return
		}

		err = fmt.Errorf("v1.HandleStartMeal -> h.svc.StartMeal -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, record)
}

// HandleGetMealRecord godoc
// @Summary      Get one meal record with live status
// @Tags         meals
// @Produce      json
// @Param        recordID   path      string true "meal record ID"
// @Success      200      {object}   service.MealView
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /meals/{recordID} [get]
func (h *MealHandler) HandleGetMealRecord(ctx *gin.Context) {
	view, err := h.svc.GetRecord(ctx.Request.Context(), ctx.Param("recordID"), time.Now())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleGetMealRecord -> h.svc.GetRecord -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// HandleTodayByGroup godoc
// @Summary      List today's records for a group
// @Tags         meals
// @Produce      json
// @Param        group   query      string true "group name"
// @Success      200      {array}    service.MealView
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /meals/today [get]
func (h *MealHandler) HandleTodayByGroup(ctx *gin.Context) {
	group := ctx.Query("group")
	if group == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("group is required")))
		return
	}

	views, err := h.svc.TodayByGroup(ctx.Request.Context(), group, time.Now())
	if err != nil {
		err = fmt.Errorf("v1.HandleTodayByGroup -> h.svc.TodayByGroup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, views)
}

// HandleTeacherHistory godoc
// @Summary      List a teacher's meal records, newest first
// @Tags         meals
// @Produce      json
// @Param        teacherID   path      string true "teacher ID"
// @Success      200      {array}    service.MealView
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /meals/teacher/{teacherID} [get]
func (h *MealHandler) HandleTeacherHistory(ctx *gin.Context) {
	views, err := h.svc.HistoryByTeacher(ctx.Request.Context(), ctx.Param("teacherID"), time.Now())
	if err != nil {
		err = fmt.Errorf("v1.HandleTeacherHistory -> h.svc.HistoryByTeacher -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, views)
}
