package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/deskhive/interview-booking-backend/internal/app"
	"github.com/deskhive/interview-booking-backend/internal/auth"
	bookinghttp "github.com/deskhive/interview-booking-backend/internal/booking/http"
	"github.com/deskhive/interview-booking-backend/internal/metrics"
	photohttp "github.com/deskhive/interview-booking-backend/internal/photo/http"
	providerhttp "github.com/deskhive/interview-booking-backend/internal/provider/http"
	roomhttp "github.com/deskhive/interview-booking-backend/internal/room/http"
	spacehttp "github.com/deskhive/interview-booking-backend/internal/space/http"
	userhttp "github.com/deskhive/interview-booking-backend/internal/user/http"
)

// NewRouter assembles the gin engine: middleware, operational endpoints,
// and the versioned API surface.
func NewRouter(c *app.Container) *gin.Engine {
	if c.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if c.IsProduction {
		corsConfig.AllowOrigins = c.ProdOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	metrics.Register()
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRequired := auth.AuthRequired(c.JWTManager)

	v1 := router.Group("/v1")
	userhttp.RegisterRoutes(v1, c.UserHandler, authRequired)
	providerhttp.RegisterRoutes(v1, c.ProviderHandler, authRequired)
	spacehttp.RegisterRoutes(v1, c.SpaceHandler, authRequired)
	roomhttp.RegisterRoutes(v1, c.RoomHandler, authRequired)
	bookinghttp.RegisterRoutes(v1, c.BookingHandler, authRequired)
	photohttp.RegisterRoutes(v1, c.PhotoHandler, authRequired)

	return router
}
