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

type HeadCountService interface {
	Save(ctx context.Context, record domain.StudentAttendanceRecord, now time.Time) (domain.StudentAttendanceRecord, error)
	Get(ctx context.Context, teacherID, gradeID, date string) (domain.StudentAttendanceRecord, error)
	ListByDate(ctx context.Context, date string) ([]domain.StudentAttendanceRecord, error)
}

type HeadCountHandler struct {
	svc HeadCountService
}

func NewHeadCountHandler(svc HeadCountService) *HeadCountHandler {
	return &HeadCountHandler{
		svc: svc,
	}
}

// HandleSaveHeadCount godoc
// @Summary      Save the day's student head count for a grade
// @Tags         attendance
// @Produce      json
// @Param        request   body      request.HeadCountRequest true "request body"
// @Success      200      {object}   domain.StudentAttendanceRecord
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /attendance [post]
func (h *HeadCountHandler) HandleSaveHeadCount(ctx *gin.Context) {
	var req request.HeadCountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	record, err := h.svc.Save(ctx.Request.Context(), domain.StudentAttendanceRecord{
		TeacherID:         ctx.GetString(middleware.ContextKeyUserID),
		GradeID:           req.GradeID,
		Date:              req.Date,
		StudentsPresent:   req.StudentsPresent,
		StudentsEating:    req.StudentsEating,
		StudentsNotEating: req.StudentsNotEating,
	}, time.Now())
	if err != nil {
		if errors.Is(err, service.ErrHeadCountMismatch) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrHeadCountMismatch))
			return
		}

		err = fmt.Errorf("v1.HandleSaveHeadCount -> h.svc.Save -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, record)
}

// HandleGetHeadCount godoc
// @Summary      Get the caller's head count for a grade and date
// @Tags         attendance
// @Produce      json
// @Param        gradeID   path      string true "grade ID"
// @Param        date      query     string true "date (YYYY-MM-DD)"
// @Success      200      {object}   domain.StudentAttendanceRecord
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /attendance/{gradeID} [get]
func (h *HeadCountHandler) HandleGetHeadCount(ctx *gin.Context) {
	teacherID := ctx.GetString(middleware.ContextKeyUserID)

	record, err := h.svc.Get(ctx.Request.Context(), teacherID, ctx.Param("gradeID"), ctx.Query("date"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleGetHeadCount -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, record)
}

// HandleListHeadCounts godoc
// @Summary      List head counts for a date
// @Tags         attendance
// @Produce      json
// @Param        date      query     string true "date (YYYY-MM-DD)"
// @Success      200      {array}    domain.StudentAttendanceRecord
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /attendance [get]
func (h *HeadCountHandler) HandleListHeadCounts(ctx *gin.Context) {
	date := ctx.Query("date")
	if date == "" {
		date = time.Now().Local().Format(domain.DateLayout)
	}

	records, err := h.svc.ListByDate(ctx.Request.Context(), date)
	if err != nil {
		err = fmt.Errorf("v1.HandleListHeadCounts -> h.svc.ListByDate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, records)
}
