package api

import (
	"context"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/training-calendar-api/docs"
	v1 "github.com/vietanh2810/training-calendar-api/internal/api/handler/v1"
	"github.com/vietanh2810/training-calendar-api/internal/api/middleware"
	"github.com/vietanh2810/training-calendar-api/internal/config"
	"github.com/vietanh2810/training-calendar-api/internal/pkg/blacklist"
	"github.com/vietanh2810/training-calendar-api/internal/repository"
	"github.com/vietanh2810/training-calendar-api/internal/repository/dao"
	"github.com/vietanh2810/training-calendar-api/internal/service"
)

type Server struct {
	Config    *config.AppConfig
	Router    *gin.Engine
	Blacklist *blacklist.Blacklist

	categories *service.CategoryService
}

type handlers struct {
	auth        *v1.AuthHandler
	user        *v1.UserHandler
	event       *v1.EventHandler
	participant *v1.ParticipantHandler
	category    *v1.CategoryHandler
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config:    conf,
		Router:    engine,
		Blacklist: blacklist.New(),
	}

	s.MountMiddlewares()
	s.MountHandlers(s.initHandlers(db))

	return s
}

func (s *Server) initHandlers(db *gorm.DB) handlers {
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	participantRepo := repository.NewParticipantRepository(dao.NewParticipantDAO(db))
	categoryRepo := repository.NewCategoryRepository(dao.NewCategoryDAO(db))

	s.categories = service.NewCategoryService(categoryRepo)
	authSvc := service.NewAuthService(userRepo, s.Blacklist, s.Config.API.JWTSigningKey)

	return handlers{
		auth:        v1.NewAuthHandler(s.Config.API, authSvc),
		user:        v1.NewUserHandler(service.NewUserService(userRepo)),
		event:       v1.NewEventHandler(service.NewEventService(eventRepo, s.categories)),
		participant: v1.NewParticipantHandler(service.NewParticipantService(participantRepo, eventRepo)),
		category:    v1.NewCategoryHandler(s.categories),
	}
}

// SeedCategories inserts the default categories that are missing.
func (s *Server) SeedCategories(ctx context.Context) error {
	return s.categories.InitializeDefaultCategories(ctx)
}

func (s *Server) MountMiddlewares() {
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.RequestLogger())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h handlers) {
	const basePath = "/api"

	authenticated := middleware.NewAuthenticator(s.Config.API.JWTSigningKey, s.Blacklist).VerifyJWT()

	auth := s.Router.Group(basePath + "/auth")
	{
		auth.POST("/register", h.auth.HandleRegister)
		auth.POST("/login", h.auth.HandleLogin)
		auth.POST("/logout", h.auth.HandleLogout)
	}

	publicEvents := s.Router.Group(basePath + "/events")
	{
		publicEvents.GET("", h.event.HandleListEvents)
		publicEvents.GET("/month", h.event.HandleListEventsByMonth)
		publicEvents.GET("/day", h.event.HandleListEventsByDay)
		publicEvents.GET("/date-range", h.event.HandleListEventsByDateRange)
		publicEvents.GET("/check-conflict", h.event.HandleCheckConflict)
		publicEvents.GET("/category/:categoryId", h.event.HandleListEventsByCategory)
		publicEvents.GET("/location/:location", h.event.HandleListEventsByLocation)
		publicEvents.GET("/:id", h.event.HandleGetEvent)
		publicEvents.GET("/:id/available", h.event.HandleCheckAvailability)
	}

	events := s.Router.Group(basePath+"/events", authenticated)
	{
		events.POST("", h.event.HandleCreateEvent)
		events.PUT("/:id", h.event.HandleUpdateEvent)
		events.DELETE("/:id", h.event.HandleDeleteEvent)
	}

	participants := s.Router.Group(basePath+"/participants", authenticated)
	{
		participants.POST("/event/:eventId/register", h.participant.HandleRegister)
		participants.GET("/event/:eventId", h.participant.HandleListByEvent)
		participants.GET("/manager/:email", h.participant.HandleListByManager)
		participants.GET("/location/:location", h.participant.HandleListByLocation)
		participants.GET("/:id", h.participant.HandleGetParticipant)
		participants.DELETE("/:id", h.participant.HandleRemoveParticipant)
	}

	categories := s.Router.Group(basePath+"/categories", authenticated)
	{
		categories.GET("", h.category.HandleListCategories)
		categories.GET("/:id", h.category.HandleGetCategory)
		categories.POST("", h.category.HandleCreateCategory)
		categories.POST("/initialize", h.category.HandleInitializeCategories)
	}

	users := s.Router.Group(basePath+"/users", authenticated)
	{
		users.GET("/me", h.user.HandleGetMe)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Training Calendar API"
	docs.SwaggerInfo.Description = "Scheduling of training events, categories and participant registrations."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
