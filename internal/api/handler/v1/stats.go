package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/api/handler/v1/response"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/api/middleware"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/domain"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/service"
)

type StatsService interface {
	DailyStats(ctx context.Context, date string, now time.Time) (domain.DailyStats, error)
	TeacherStats(ctx context.Context, teacherID string, now time.Time) (domain.TeacherStats, error)
	Export(ctx context.Context, now time.Time) (domain.StatsExport, error)
}

type StatsHandler struct {
	svc StatsService
}

func NewStatsHandler(svc StatsService) *StatsHandler {
	return &StatsHandler{
		svc: svc,
	}
}

// HandleDailyStats godoc
// @Summary      Get aggregated attendance stats for a date
// @Tags         stats
// @Produce      json
// @Param        date      query     string false "date (YYYY-MM-DD), defaults to today"
// @Success      200      {object}   domain.DailyStats
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /stats/daily [get]
func (h *StatsHandler) HandleDailyStats(ctx *gin.Context) {
	now := time.Now()

	date := ctx.Query("date")
	if date == "" {
		date = now.Local().Format(domain.DateLayout)
	}

	stats, err := h.svc.DailyStats(ctx.Request.Context(), date, now)
	if err != nil {
		err = fmt.Errorf("v1.HandleDailyStats -> h.svc.DailyStats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleMyStats godoc
// @Summary      Get the calling teacher's attendance stats
// @Tags         stats
// @Produce      json
// @Success      200      {object}   domain.TeacherStats
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /stats/me [get]
func (h *StatsHandler) HandleMyStats(ctx *gin.Context) {
	teacherID := ctx.GetString(middleware.ContextKeyUserID)

	stats, err := h.svc.TeacherStats(ctx.Request.Context(), teacherID, time.Now())
	if err != nil {
		err = fmt.Errorf("v1.HandleMyStats -> h.svc.TeacherStats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleTeacherStats godoc
// @Summary      Get attendance stats for a teacher
// @Tags         stats
// @Produce      json
// @Param        teacherID path      string true "teacher ID"
// @Success      200      {object}   domain.TeacherStats
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /stats/teachers/{teacherID} [get]
func (h *StatsHandler) HandleTeacherStats(ctx *gin.Context) {
	stats, err := h.svc.TeacherStats(ctx.Request.Context(), ctx.Param("teacherID"), time.Now())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleTeacherStats -> h.svc.TeacherStats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleExportStats godoc
// @Summary      Export the full stats snapshot
// @Tags         stats
// @Produce      json
// @Success      200      {object}   domain.StatsExport
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /stats/export [get]
func (h *StatsHandler) HandleExportStats(ctx *gin.Context) {
	export, err := h.svc.Export(ctx.Request.Context(), time.Now())
	if err != nil {
		err = fmt.Errorf("v1.HandleExportStats -> h.svc.Export -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="attendance-export.json"`)
	ctx.JSON(http.StatusOK, export)
}
