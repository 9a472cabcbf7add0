package container

import (
	"log/slog"

	"eventhub/internal/analytics"
	"eventhub/internal/config"
	"eventhub/internal/models"
	"eventhub/internal/services"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger         *slog.Logger
	Config         *config.Config
	MongoDBClient  *mongo.Client
	Repo           *models.MongodbRepo
	EventService   *services.EventService
	BookingService *services.BookingService
	Analytics      *analytics.Client
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	cld *cloudinary.Cloudinary,
	mongoDBClient *mongo.Client,
) *Container {
	repo := models.MongodbNewRepo(mongoDBClient, cfg.MongoDBName)
	eventService := services.NewEventService(repo, cld, logger)
	bookingService := services.NewBookingService(repo, repo)
	sink := analytics.NewClient(cfg.AnalyticsEndpoint, cfg.AnalyticsAPIKey, logger)

	return &Container{
		Logger:         logger,
		Config:         cfg,
		MongoDBClient:  mongoDBClient,
		Repo:           repo,
		EventService:   eventService,
		BookingService: bookingService,
		Analytics:      sink,
	}
}
