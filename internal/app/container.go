package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dimaskresna/campus-booking-backend/internal/api"
	"github.com/dimaskresna/campus-booking-backend/internal/auth"
	"github.com/dimaskresna/campus-booking-backend/internal/building"
	"github.com/dimaskresna/campus-booking-backend/internal/config"
	"github.com/dimaskresna/campus-booking-backend/internal/facility"
	"github.com/dimaskresna/campus-booking-backend/internal/facilitytype"
	"github.com/dimaskresna/campus-booking-backend/internal/file"
	"github.com/dimaskresna/campus-booking-backend/internal/notification"
	"github.com/dimaskresna/campus-booking-backend/internal/pkg/clock"
	"github.com/dimaskresna/campus-booking-backend/internal/pkg/metrics"
	"github.com/dimaskresna/campus-booking-backend/internal/pkg/storage"
	"github.com/dimaskresna/campus-booking-backend/internal/reservation"
	"github.com/dimaskresna/campus-booking-backend/internal/user"
)

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer wires every module together: repositories on the shared
// pool, services on top, and the router last.
func NewContainer(cfg *config.Config, pool *pgxpool.Pool) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasher(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTAccessTokenTTL)
	clk := clock.System()

	userRepo := user.NewPgxRepository(pool)
	userService := user.NewService(userRepo, passwordHasher)

	buildingRepo := building.NewPgxRepository(pool)
	buildingService := building.NewService(buildingRepo)

	facilityTypeRepo := facilitytype.NewPgxRepository(pool)
	facilityTypeService := facilitytype.NewService(facilityTypeRepo)

	facilityRepo := facility.NewPgxRepository(pool)
	facilityService := facility.NewService(facilityRepo, clk)

	var mailer notification.Mailer
	if cfg.SendGridAPIKey != "" && cfg.SendGridFromEmail != "" {
		mailer = notification.NewSendGridMailer(cfg.SendGridAPIKey, cfg.SendGridFromEmail, cfg.SendGridFromName)
	} else {
		mailer = notification.NewNoopMailer()
	}

	notificationRepo := notification.NewPgxRepository(pool)
	notificationService := notification.NewService(notificationRepo, mailer, userRecipients{users: userService})

	store, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("init upload storage: %w", err)
	}
	fileRepo := file.NewPgxRepository(pool)
	fileService := file.NewService(fileRepo, store)

	reservationRepo := reservation.NewPgxRepository(pool)
	reservationService := reservation.NewService(
		reservationRepo, facilityService, notificationService,
		clk, time.Local, cfg.LeadTimeDays,
	)

	router := api.NewRouter(api.Config{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		UserService:         userService,
		BuildingService:     buildingService,
		FacilityTypeService: facilityTypeService,
		FacilityService:     facilityService,
		ReservationService:  reservationService,
		NotificationService: notificationService,
		FileService:         fileService,
		JWTManager:          jwtManager,
		Metrics:             metrics.New("campus-booking-backend"),
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
