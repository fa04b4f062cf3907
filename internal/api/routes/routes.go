package routes

import (
	"photostudio-backend/internal/api/handlers"
	"photostudio-backend/internal/api/middleware"
	"photostudio-backend/internal/auth"
	"photostudio-backend/internal/config"
	"photostudio-backend/internal/repository"
	"photostudio-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	services := service.NewServices(repository.NewStore(db), service.NewValidator(), cfg.GalleryBaseURL)

	tokens := auth.NewTokenService(cfg.JWTSecret, 0)
	authMiddleware := auth.NewAuthMiddleware(tokens)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	studioHandler := handlers.NewStudioHandler(services.Studios)
	teamMemberHandler := handlers.NewTeamMemberHandler(services.TeamMembers)
	eventHandler := handlers.NewEventHandler(services.Events)
	ceremonyHandler := handlers.NewCeremonyHandler(services.Ceremonies)
	assignmentHandler := handlers.NewAssignmentHandler(services.Assignments)
	galleryHandler := handlers.NewGalleryHandler(services.Galleries)
	photoHandler := handlers.NewPhotoHandler(services.Photos, services.Uploads)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Guest gallery viewer, no authentication
	router.GET("/gallery/:id", galleryHandler.ViewGallery)

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		studio := v1.Group("/studio")
		{
			studio.GET("", studioHandler.GetStudio)
			studio.PUT("", authMiddleware.RequireStudioOwner(), studioHandler.UpdateStudio)
			studio.DELETE("", authMiddleware.RequireStudioOwner(), studioHandler.DeleteStudio)
		}

		teamMembers := v1.Group("/team-members")
		{
			teamMembers.GET("", teamMemberHandler.ListTeamMembers)
			teamMembers.POST("", teamMemberHandler.CreateTeamMember)
			teamMembers.GET("/:id", teamMemberHandler.GetTeamMember)
			teamMembers.PUT("/:id", teamMemberHandler.UpdateTeamMember)
			teamMembers.DELETE("/:id", teamMemberHandler.DeleteTeamMember)
			teamMembers.GET("/:id/assignments", assignmentHandler.ListForMember)
		}

		events := v1.Group("/events")
		{
			events.GET("", eventHandler.ListEvents)
			events.POST("", eventHandler.CreateEvent)
			events.GET("/:id", eventHandler.GetEvent)
			events.PUT("/:id", eventHandler.UpdateEvent)
			events.DELETE("/:id", eventHandler.DeleteEvent)
			events.POST("/:id/transition", eventHandler.TransitionEvent)

			events.GET("/:id/ceremonies", ceremonyHandler.ListCeremonies)
			events.POST("/:id/ceremonies", ceremonyHandler.AddCeremony)
			events.PUT("/:id/ceremonies/order", ceremonyHandler.ReorderCeremonies)

			events.GET("/:id/assignments", assignmentHandler.ListForScope)
			events.POST("/:id/assignments", assignmentHandler.Assign)

			events.GET("/:id/galleries", galleryHandler.ListEventGalleries)
			events.POST("/:id/galleries", galleryHandler.CreateGallery)

			events.GET("/:id/photos", photoHandler.ListPhotos)
			events.POST("/:id/photos", photoHandler.IngestPhoto)
			events.POST("/:id/photos/upload", photoHandler.UploadPhoto)
		}

		ceremonies := v1.Group("/ceremonies")
		{
			ceremonies.PUT("/:id", ceremonyHandler.UpdateCeremony)
			ceremonies.DELETE("/:id", ceremonyHandler.RemoveCeremony)
		}

		v1.DELETE("/assignments/:id", assignmentHandler.Unassign)

		galleries := v1.Group("/galleries")
		{
			galleries.GET("", galleryHandler.ListGalleries)
			galleries.POST("/access-code", galleryHandler.GenerateAccessCode)
			galleries.GET("/:id", galleryHandler.GetGallery)
			galleries.PUT("/:id", galleryHandler.UpdateGallery)
			galleries.DELETE("/:id", galleryHandler.DeleteGallery)
			galleries.GET("/:id/share", galleryHandler.ShareLink)
			galleries.POST("/:id/photos", galleryHandler.AddPhotos)
			galleries.DELETE("/:id/photos/:photoId", galleryHandler.RemovePhoto)
		}

		photos := v1.Group("/photos")
		{
			photos.GET("/:id", photoHandler.GetPhoto)
			photos.PUT("/:id/rating", photoHandler.RatePhoto)
			photos.PUT("/:id/selection", photoHandler.SelectPhoto)
			photos.DELETE("/:id", photoHandler.DeletePhoto)
		}
	}

	return router
}
