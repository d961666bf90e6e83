package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/api/handler/v1/request"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/api/handler/v1/response"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/api/middleware"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/config"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/domain"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/pkg/jwthelper"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/service"
)

type AuthService interface {
	Signup(ctx context.Context, teacher domain.Teacher) (domain.Teacher, error)
	Login(ctx context.Context, identifier, password string) (domain.Teacher, error)
	ChangePassword(ctx context.Context, teacherID, oldPassword, newPassword string) error
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleSignup godoc
// @Summary      Register a new teacher
// @Tags         auth
// @Produce      json
// @Param        request   body      request.SignupRequest true "request body"
// @Success      201      {object}   domain.Teacher
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/signup [post]
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	var req request.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	teacher, err := h.svc.Signup(ctx.Request.Context(), domain.Teacher{
		Email:         req.Email,
		Password:      req.Password,
		Name:          req.Name,
		AssignedGroup: req.AssignedGroup,
		Role:          domain.RoleTeacher,
	})
	if err != nil {
		if errors.Is(err, service.ErrTeacherEmailExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrTeacherEmailExists))
			return
		}
		if errors.Is(err, service.ErrCodeExhausted) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrCodeExhausted))
			return
		}

		err = fmt.Errorf("v1.HandleSignup -> h.svc.Signup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, teacher)
}

// HandleLogin godoc
// @Summary      Login with email or personal code
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	teacher, err := h.svc.Login(ctx.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrWrongPassword) ||
			errors.Is(err, service.ErrTeacherInactive) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), teacher.ID, teacher.Role, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token:   token,
		Teacher: teacher,
	})
}

// HandleChangePassword godoc
// @Summary      Change the caller's password
// @Tags         auth
// @Produce      json
// @Param        request   body      request.ChangePasswordRequest true "request body"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /auth/password [put]
func (h *AuthHandler) HandleChangePassword(ctx *gin.Context) {
	var req request.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	teacherID := ctx.GetString(middleware.ContextKeyUserID)

	err := h.svc.ChangePassword(ctx.Request.Context(), teacherID, req.OldPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))
			return
		}

		err = fmt.Errorf("v1.HandleChangePassword -> h.svc.ChangePassword -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
