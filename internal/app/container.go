package app

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/deskhive/interview-booking-backend/internal/auth"
	"github.com/deskhive/interview-booking-backend/internal/booking"
	bookinghttp "github.com/deskhive/interview-booking-backend/internal/booking/http"
	"github.com/deskhive/interview-booking-backend/internal/hold"
	"github.com/deskhive/interview-booking-backend/internal/payment"
	"github.com/deskhive/interview-booking-backend/internal/photo"
	photohttp "github.com/deskhive/interview-booking-backend/internal/photo/http"
	"github.com/deskhive/interview-booking-backend/internal/pkg/storage"
	"github.com/deskhive/interview-booking-backend/internal/provider"
	providerhttp "github.com/deskhive/interview-booking-backend/internal/provider/http"
	"github.com/deskhive/interview-booking-backend/internal/room"
	roomhttp "github.com/deskhive/interview-booking-backend/internal/room/http"
	"github.com/deskhive/interview-booking-backend/internal/space"
	spacehttp "github.com/deskhive/interview-booking-backend/internal/space/http"
	"github.com/deskhive/interview-booking-backend/internal/user"
	userhttp "github.com/deskhive/interview-booking-backend/internal/user/http"
)

// Config carries the external resources the container wires together.
type Config struct {
	IsProduction bool
	ProdOrigins  []string

	DBPool *pgxpool.Pool
	// RedisClient may be nil; slot holds then degrade to a no-op.
	RedisClient redis.UniversalClient

	JWTSecret string
	JWTTTL    time.Duration
	HoldTTL   time.Duration

	// PaymentGatewayURL may be empty; charges are then faked locally.
	PaymentGatewayURL string
	PaymentAPIKey     string

	UploadDir string
	Logger    zerolog.Logger
}

// Container holds the fully wired handler graph.
type Container struct {
	IsProduction bool
	ProdOrigins  []string
	Logger       zerolog.Logger

	JWTManager *auth.JWTManager

	UserHandler     *userhttp.Handler
	ProviderHandler *providerhttp.Handler
	SpaceHandler    *spacehttp.Handler
	RoomHandler     *roomhttp.Handler
	BookingHandler  *bookinghttp.Handler
	PhotoHandler    *photohttp.Handler
}

// New builds every repository, service, and handler from cfg.
func New(cfg Config) (*Container, error) {
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	hasher := auth.NewBcryptPasswordHasher()

	userRepo := user.NewPgxRepository(cfg.DBPool, cfg.Logger)
	userService := user.NewService(userRepo, hasher)

	providerRepo := provider.NewPgxRepository(cfg.DBPool)
	providerService := provider.NewService(providerRepo, userService)

	spaceRepo := space.NewPgxRepository(cfg.DBPool)
	spaceService := space.NewService(spaceRepo, providerService)

	roomRepo := room.NewPgxRepository(cfg.DBPool)
	roomService := room.NewService(roomRepo, spaceService)

	var locker hold.Locker
	if cfg.RedisClient != nil {
		locker = hold.NewRedisLocker(cfg.RedisClient)
	} else {
		locker = hold.NewNoopLocker()
		cfg.Logger.Warn().Msg("redis not configured, slot holds disabled")
	}

	var payments payment.Collaborator
	if cfg.PaymentGatewayURL != "" {
		payments = payment.NewGatewayClient(cfg.PaymentGatewayURL, cfg.PaymentAPIKey, 10*time.Second, cfg.Logger)
	} else {
		payments = payment.NewFakeCollaborator()
		cfg.Logger.Warn().Msg("payment gateway not configured, charges are faked")
	}

	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(
		bookingRepo, roomService, providerService, locker,
		payments, cfg.HoldTTL, cfg.Logger,
	)

	store, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, err
	}
	photoRepo := photo.NewPgxRepository(cfg.DBPool)
	photoService := photo.NewService(photoRepo, store, storage.NewImageProcessor(), cfg.Logger)

	return &Container{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,
		Logger:       cfg.Logger,
		JWTManager:   jwtManager,

		UserHandler:     userhttp.NewHandler(userService, jwtManager),
		ProviderHandler: providerhttp.NewHandler(providerService, userService),
		SpaceHandler:    spacehttp.NewHandler(spaceService, providerService, userService),
		RoomHandler:     roomhttp.NewHandler(roomService, spaceService, providerService, userService),
		BookingHandler:  bookinghttp.NewHandler(bookingService),
		PhotoHandler:    photohttp.NewHandler(photoService, roomService, providerService, userService),
	}, nil
}
