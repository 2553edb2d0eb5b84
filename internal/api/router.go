package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dimaskresna/campus-booking-backend/internal/auth"
	"github.com/dimaskresna/campus-booking-backend/internal/building"
	buildingHttp "github.com/dimaskresna/campus-booking-backend/internal/building/http"
	"github.com/dimaskresna/campus-booking-backend/internal/facility"
	facilityHttp "github.com/dimaskresna/campus-booking-backend/internal/facility/http"
	"github.com/dimaskresna/campus-booking-backend/internal/facilitytype"
	facilitytypeHttp "github.com/dimaskresna/campus-booking-backend/internal/facilitytype/http"
	"github.com/dimaskresna/campus-booking-backend/internal/file"
	fileHttp "github.com/dimaskresna/campus-booking-backend/internal/file/http"
	"github.com/dimaskresna/campus-booking-backend/internal/notification"
	notificationHttp "github.com/dimaskresna/campus-booking-backend/internal/notification/http"
	"github.com/dimaskresna/campus-booking-backend/internal/pkg/metrics"
	"github.com/dimaskresna/campus-booking-backend/internal/reservation"
	reservationHttp "github.com/dimaskresna/campus-booking-backend/internal/reservation/http"
	"github.com/dimaskresna/campus-booking-backend/internal/user"
	userHttp "github.com/dimaskresna/campus-booking-backend/internal/user/http"
)

// Config carries the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService         user.Service
	BuildingService     building.Service
	FacilityTypeService facilitytype.Service
	FacilityService     facility.Service
	ReservationService  reservation.Service
	NotificationService notification.Service
	FileService         file.Service

	JWTManager *auth.JWTManager
	Metrics    *metrics.Metrics
}

// NewRouter assembles middleware (logging, recovery, CORS, metrics) and
// registers every module's routes under /v1.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
	}

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000", "http://localhost:8081"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	adminMiddleware := auth.RequireAdmin()

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	buildingHandler := buildingHttp.NewHandler(cfg.BuildingService)
	facilityTypeHandler := facilitytypeHttp.NewHandler(cfg.FacilityTypeService)
	facilityHandler := facilityHttp.NewHandler(cfg.FacilityService)
	reservationHandler := reservationHttp.NewHandler(cfg.ReservationService)
	notificationHandler := notificationHttp.NewHandler(cfg.NotificationService)
	fileHandler := fileHttp.NewHandler(cfg.FileService)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		buildingHttp.RegisterRoutes(v1, buildingHandler, authMiddleware, adminMiddleware)
		facilitytypeHttp.RegisterRoutes(v1, facilityTypeHandler, authMiddleware, adminMiddleware)
		facilityHttp.RegisterRoutes(v1, facilityHandler, authMiddleware, adminMiddleware)
		reservationHttp.RegisterRoutes(v1, reservationHandler, authMiddleware, adminMiddleware)
		notificationHttp.RegisterRoutes(v1, notificationHandler, authMiddleware)
		fileHttp.RegisterRoutes(v1, fileHandler, authMiddleware)
	}

	return r
}
