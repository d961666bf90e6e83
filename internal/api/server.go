package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/Edu-space-IDC/restaurante-sub000/docs"
	v1 "github.com/Edu-space-IDC/restaurante-sub000/internal/api/handler/v1"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/api/middleware"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/config"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/events"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/repository"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/repository/dao"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB, bus *events.Bus) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db, bus)
	teacherHandler := s.initTeacherHandler(db, bus)
	gradeHandler := s.initGradeHandler(db, bus)
	mealHandler := s.initMealHandler(db, bus)
	menuHandler := s.initMenuHandler(db, bus)
	headCountHandler := s.initHeadCountHandler(db, bus)
	statsHandler := s.initStatsHandler(db)
	adminHandler := s.initAdminHandler(db, bus)
	s.MountHandlers(authHandler, teacherHandler, gradeHandler, mealHandler, menuHandler, headCountHandler, statsHandler, adminHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB, bus *events.Bus) *v1.AuthHandler {
	teacherDAO := dao.NewTeacherDAO(db)
	repo := repository.NewTeacherRepository(teacherDAO)
	svc := service.NewAuthService(repo, bus)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initTeacherHandler(db *gorm.DB, bus *events.Bus) *v1.TeacherHandler {
	teacherDAO := dao.NewTeacherDAO(db)
	repo := repository.NewTeacherRepository(teacherDAO)
	svc := service.NewTeacherService(repo, bus)
	handler := v1.NewTeacherHandler(svc)

	return handler
}

func (s *Server) initGradeHandler(db *gorm.DB, bus *events.Bus) *v1.GradeHandler {
	gradeDAO := dao.NewGradeDAO(db)
	repo := repository.NewGradeRepository(gradeDAO)
	svc := service.NewGradeService(repo, bus)
	handler := v1.NewGradeHandler(svc)

	return handler
}

func (s *Server) initMealHandler(db *gorm.DB, bus *events.Bus) *v1.MealHandler {
	mealDAO := dao.NewMealRecordDAO(db)
	repo := repository.NewMealRecordRepository(mealDAO)
	gradeRepo := repository.NewGradeRepository(dao.NewGradeDAO(db))
	svc := service.NewMealService(repo, gradeRepo, bus)
	teacherSvc := service.NewTeacherService(repository.NewTeacherRepository(dao.NewTeacherDAO(db)), bus)
	handler := v1.NewMealHandler(svc, teacherSvc)

	return handler
}

func (s *Server) initMenuHandler(db *gorm.DB, bus *events.Bus) *v1.MenuHandler {
	menuDAO := dao.NewMenuEntryDAO(db)
	repo := repository.NewMenuEntryRepository(menuDAO)
	svc := service.NewMenuService(repo, bus)
	handler := v1.NewMenuHandler(svc)

	return handler
}

func (s *Server) initHeadCountHandler(db *gorm.DB, bus *events.Bus) *v1.HeadCountHandler {
	attendanceDAO := dao.NewStudentAttendanceDAO(db)
	repo := repository.NewStudentAttendanceRepository(attendanceDAO)
	svc := service.NewHeadCountService(repo, bus)
	handler := v1.NewHeadCountHandler(svc)

	return handler
}

func (s *Server) initStatsHandler(db *gorm.DB) *v1.StatsHandler {
	mealRepo := repository.NewMealRecordRepository(dao.NewMealRecordDAO(db))
	gradeRepo := repository.NewGradeRepository(dao.NewGradeDAO(db))
	teacherRepo := repository.NewTeacherRepository(dao.NewTeacherDAO(db))
	adminRepo := repository.NewAdminRepository(db)
	svc := service.NewStatsService(mealRepo, gradeRepo, teacherRepo, adminRepo)
	handler := v1.NewStatsHandler(svc)

	return handler
}

func (s *Server) initAdminHandler(db *gorm.DB, bus *events.Bus) *v1.AdminHandler {
	repo := repository.NewAdminRepository(db)
	svc := service.NewAdminService(repo, bus)
	handler := v1.NewAdminHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	teacherHandler *v1.TeacherHandler,
	gradeHandler *v1.GradeHandler,
	mealHandler *v1.MealHandler,
	menuHandler *v1.MenuHandler,
	headCountHandler *v1.HeadCountHandler,
	statsHandler *v1.StatsHandler,
	adminHandler *v1.AdminHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	authed := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authed.PUT("/auth/password", authHandler.HandleChangePassword)

		authed.GET("/teachers", teacherHandler.HandleListTeachers)
		authed.GET("/teachers/:teacherID", teacherHandler.HandleGetTeacher)
		authed.GET("/teachers/code/:code", teacherHandler.HandleGetTeacherByCode)
		authed.PUT("/teachers/:teacherID", teacherHandler.HandleUpdateTeacher)

		authed.GET("/grades", gradeHandler.HandleListGrades)
		authed.GET("/grades/:gradeID", gradeHandler.HandleGetGrade)

		authed.POST("/meals/check-in", mealHandler.HandleCheckIn)
		authed.POST("/meals/:recordID/start", mealHandler.HandleStartMeal)
		authed.GET("/meals/:recordID", mealHandler.HandleGetMealRecord)
		authed.GET("/meals/today", mealHandler.HandleTodayByGroup)
		authed.GET("/meals/teacher/:teacherID", mealHandler.HandleTeacherHistory)

		authed.GET("/menus", menuHandler.HandleListMenus)
		authed.GET("/menus/:date", menuHandler.HandleGetMenu)
		authed.PUT("/menus", menuHandler.HandleSaveMenu)

		authed.POST("/attendance", headCountHandler.HandleSaveHeadCount)
		authed.GET("/attendance", headCountHandler.HandleListHeadCounts)
		authed.GET("/attendance/:gradeID", headCountHandler.HandleGetHeadCount)

		authed.GET("/stats/daily", statsHandler.HandleDailyStats)
		authed.GET("/stats/me", statsHandler.HandleMyStats)
		authed.GET("/stats/teachers/:teacherID", statsHandler.HandleTeacherStats)
		authed.GET("/stats/export", statsHandler.HandleExportStats)
	}

	admin := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT(), middleware.RequireAdmin())
	{
		admin.POST("/grades", gradeHandler.HandleCreateGrade)
		admin.PUT("/grades/:gradeID", gradeHandler.HandleUpdateGrade)
		admin.DELETE("/grades/:gradeID", gradeHandler.HandleDeleteGrade)

		admin.PUT("/teachers/:teacherID/active", teacherHandler.HandleSetTeacherActive)

		admin.POST("/admin/factory-reset", adminHandler.HandleFactoryReset)
		admin.GET("/admin/schema-version", adminHandler.HandleSchemaVersion)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "School cafeteria attendance API"
	docs.SwaggerInfo.Description = "Meal attendance tracking for teachers and grades."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
