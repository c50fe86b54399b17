package server

import (
	"context"
	"log"
	"path/filepath"
	"strings"
	"time"

	"zeros.dev/launchpad/internal/config"
	"zeros.dev/launchpad/internal/middleware"
	"zeros.dev/launchpad/internal/session"
	"zeros.dev/launchpad/pkg/content"
	"zeros.dev/launchpad/pkg/storage"

	"zeros.dev/launchpad/internal/agent/providers"

	adminHttp "zeros.dev/launchpad/internal/modules/admin/delivery/http"
	adminService "zeros.dev/launchpad/internal/modules/admin/service"

	announcementHttp "zeros.dev/launchpad/internal/modules/announcement/delivery/http"
	announcementRepo "zeros.dev/launchpad/internal/modules/announcement/repository"
	announcementService "zeros.dev/launchpad/internal/modules/announcement/service"

	journalHttp "zeros.dev/launchpad/internal/modules/journal/delivery/http"
	journalService "zeros.dev/launchpad/internal/modules/journal/service"

	playbookHttp "zeros.dev/launchpad/internal/modules/playbook/delivery/http"
	playbookService "zeros.dev/launchpad/internal/modules/playbook/service"

	requestHttp "zeros.dev/launchpad/internal/modules/request/delivery/http"
	requestRepo "zeros.dev/launchpad/internal/modules/request/repository"
	requestService "zeros.dev/launchpad/internal/modules/request/service"

	submissionHttp "zeros.dev/launchpad/internal/modules/submission/delivery/http"
	submissionRepo "zeros.dev/launchpad/internal/modules/submission/repository"
	submissionService "zeros.dev/launchpad/internal/modules/submission/service"

	taskHttp "zeros.dev/launchpad/internal/modules/task/delivery/http"
	taskRepo "zeros.dev/launchpad/internal/modules/task/repository"
	taskService "zeros.dev/launchpad/internal/modules/task/service"

	userHttp "zeros.dev/launchpad/internal/modules/user/delivery/http"
	userRepo "zeros.dev/launchpad/internal/modules/user/repository"
	userService "zeros.dev/launchpad/internal/modules/user/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"zeros.dev/launchpad/internal/entity"
)

type Server struct {
	engine *gin.Engine
}

func NewServer(cfg *config.Config) *Server {
	store := content.NewStore(cfg.ContentDir)

	fileStorage, err := storage.NewLocalStorage(cfg.PublicDir)
	if err != nil {
		log.Fatalf("failed to initialize file storage: %v", err)
	}

	sessions := session.NewManager(cfg.JWTSecret, cfg.SessionTTL, cfg.Production())

	users := userRepo.NewUserRepository(store)
	tasks := taskRepo.NewTaskRepository(store)
	announcements := announcementRepo.NewAnnouncementRepository(store)
	submissions := submissionRepo.NewSubmissionRepository(store)
	requests := requestRepo.NewRequestRepository(store)

	authSvc := userService.NewAuthService(users, sessions)
	authHandler := userHttp.NewAuthHandler(authSvc, sessions)

	adminSvc := adminService.NewAdminService(users, fileStorage)
	adminHandler := adminHttp.NewAdminHandler(adminSvc)

	taskSvc := taskService.NewTaskService(tasks, users, submissions)
	taskHandler := taskHttp.NewTaskHandler(taskSvc)

	announcementSvc := announcementService.NewAnnouncementService(announcements)
	announcementHandler := announcementHttp.NewAnnouncementHandler(announcementSvc)

	submissionSvc := submissionService.NewSubmissionService(submissions, tasks, fileStorage)
	submissionHandler := submissionHttp.NewSubmissionHandler(submissionSvc)

	requestSvc := requestService.NewRequestService(requests, users, cfg.DefaultPassword)
	requestHandler := requestHttp.NewRequestHandler(requestSvc)

	playbookSvc := playbookService.NewPlaybookService(store)
	playbookHandler := playbookHttp.NewPlaybookHandler(playbookSvc)

	// Journal generation is optional: without an API key the endpoint
	// reports the feature as unconfigured.
	var llm providers.LLMProvider
	if gemini, err := providers.NewGeminiProvider(context.Background(), cfg.GeminiModel); err != nil {
		log.Printf("journal generation disabled: %v", err)
	} else {
		llm = gemini
	}
	journalSvc := journalService.NewJournalService(tasks, llm)
	journalHandler := journalHttp.NewJournalHandler(journalSvc)

	router := gin.New()

	setupCORS(router, cfg)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(sessions)

	// Stateless page redirects for the frontend entry points.
	router.Use(authMiddleware.PageGate())

	// Uploaded deliverables and avatars are served from the public tree.
	router.Static("/uploads", filepath.Join(cfg.PublicDir, "uploads"))
	router.Static("/avatars", filepath.Join(cfg.PublicDir, "avatars"))

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", authHandler.Me)
		auth.POST("/check-email", authHandler.CheckEmail)
		auth.POST("/password", authHandler.SetPassword)
	}

	// Onboarding request submission happens before an account exists.
	api.POST("/requests", requestHandler.CreateRequest)
	api.GET("/playbook", playbookHandler.GetSections)

	// Protected routes (apply auth middleware explicitly)
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		staff := authMiddleware.RequireRole(entity.RoleOperator, entity.RoleOrchestrator)
		orchestrator := authMiddleware.RequireRole(entity.RoleOrchestrator)
		scorers := authMiddleware.RequireRole(entity.RoleScorer, entity.RoleOrchestrator)

		// People management
		protected.GET("/users", staff, adminHandler.GetAllUsers)
		protected.POST("/users", orchestrator, adminHandler.CreateUser)
		protected.PUT("/users/:id", orchestrator, adminHandler.UpdateUser)
		protected.DELETE("/users/:id", orchestrator, adminHandler.DeleteUser)

		// Task routes
		protected.GET("/tasks", taskHandler.GetAllTasks)
		protected.GET("/tasks/:id", taskHandler.GetTaskByID)
		protected.POST("/tasks", staff, taskHandler.CreateTask)
		protected.PUT("/tasks/:id", staff, taskHandler.UpdateTask)
		protected.DELETE("/tasks/:id", staff, taskHandler.DeleteTask)

		// Announcements
		protected.GET("/announcements", announcementHandler.GetAllAnnouncements)
		protected.POST("/announcements", orchestrator, announcementHandler.CreateAnnouncement)

		// Submissions and scoring
		protected.GET("/submissions", submissionHandler.GetAllSubmissions)
		protected.POST("/submissions", authMiddleware.RequireRole(entity.RoleApprentice), submissionHandler.Submit)
		protected.POST("/submissions/:id/score", scorers, submissionHandler.Score)

		// Access requests
		protected.GET("/requests", staff, requestHandler.GetAllRequests)
		protected.POST("/requests/:id/approve", orchestrator, requestHandler.ApproveRequest)
		protected.POST("/requests/:id/reject", orchestrator, requestHandler.RejectRequest)

		// Journal generator
		protected.POST("/journal", journalHandler.Generate)
	}

	return &Server{engine: router}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func setupCORS(router *gin.Engine, cfg *config.Config) {
	var origins []string
	if cfg.AllowedOrigins != "" {
		origins = strings.Split(cfg.AllowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
