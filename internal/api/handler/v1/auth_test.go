package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/config"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/domain"
)

type stubAuthService struct {
	signedUp domain.Teacher
}

func (s *stubAuthService) Signup(_ context.Context, teacher domain.Teacher) (domain.Teacher, error) {
	s.signedUp = teacher
	teacher.ID = "teacher-1"
	teacher.Password = ""

	return teacher, nil
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (domain.Teacher, error) {
	return domain.Teacher{}, nil
}

func (s *stubAuthService) ChangePassword(_ context.Context, _, _, _ string) error {
	return nil
}

func TestHandleSignup_AlwaysCreatesTeacherAccounts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &stubAuthService{}
	handler := NewAuthHandler(&config.APIConfig{}, svc)

	router := gin.New()
	router.POST("/auth/signup", handler.HandleSignup)

	body := `{"email":"ana.torres@school.test","password":"secret-pass-1","name":"Ana Torres","role":"admin"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, domain.RoleTeacher, svc.signedUp.Role)
	assert.Equal(t, "ana.torres@school.test", svc.signedUp.Email)
}
