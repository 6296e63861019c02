package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"cinebook/internal/config"
	"cinebook/internal/database"
	"cinebook/internal/middleware"
	"cinebook/internal/modules/auth"
	"cinebook/internal/modules/booking"
	"cinebook/internal/modules/catalog"
	"cinebook/internal/modules/review"
	"cinebook/internal/modules/screening"
	"cinebook/internal/modules/seat"
	"cinebook/internal/modules/snack"
	"cinebook/internal/modules/voucher"
	jwtsvc "cinebook/internal/pkg/jwt"
	"cinebook/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	if err := repository.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}

	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	cinemaRepo := repository.NewCinemaRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	seatRepo := repository.NewSeatRepository(db)
	screeningRepo := repository.NewScreeningRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	voucherRepo := repository.NewVoucherRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	snackRepo := repository.NewSnackRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService, j.TTL())

	catalogService := catalog.NewService(movieRepo, cinemaRepo, roomRepo, screeningRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	screeningService := screening.NewService(screeningRepo, movieRepo, roomRepo)
	screeningHandler := screening.NewHandler(screeningService)

	seatService := seat.NewService(seatRepo, roomRepo, screeningRepo, bookingRepo)
	seatHandler := seat.NewHandler(seatService)

	bookingService := booking.NewService(bookingRepo, screeningRepo, seatRepo, voucherRepo)
	bookingHandler := booking.NewHandler(bookingService)

	voucherService := voucher.NewService(voucherRepo)
	voucherHandler := voucher.NewHandler(voucherService)

	reviewService := review.NewService(reviewRepo, movieRepo)
	reviewHandler := review.NewHandler(reviewService)

	snackService := snack.NewService(snackRepo)
	snackHandler := snack.NewHandler(snackService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		screeningHandler.RegisterRoutes(v1)
		seatHandler.RegisterRoutes(v1)
		snackHandler.RegisterRoutes(v1)
		reviewHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			voucherHandler.RegisterRoutes(protected)
			reviewHandler.RegisterRoutes(protected)

			staff := protected.Group("/")
			staff.Use(middleware.StaffOnly())
			{
				bookingHandler.RegisterStaffRoutes(staff)
				catalogHandler.RegisterStaffRoutes(staff)
				screeningHandler.RegisterStaffRoutes(staff)
				seatHandler.RegisterStaffRoutes(staff)
				voucherHandler.RegisterStaffRoutes(staff)
				snackHandler.RegisterStaffRoutes(staff)
			}
		}
	}

	logrus.WithField("addr", cfg.ListenAddr).Info("starting api server")
	if err := r.Run(cfg.ListenAddr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
