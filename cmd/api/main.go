package main

import (
	"bookings/cmd/internal/config"
	"bookings/cmd/internal/domain/jsonfile"
	"bookings/cmd/internal/domain/sqlite"
	"bookings/cmd/internal/domain/sqlite/repository"
	"bookings/cmd/internal/routes"
	"bookings/cmd/internal/service"
	"bookings/cmd/internal/utils/validators"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	validate := validator.New()
	registerValidators(validate)

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, relying on the environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration", err)
	}

	// Storage backend: JSON flat files by default, SQLite when configured
	apptRepo, err := newAppointmentRepository(cfg)
	if err != nil {
		log.Fatal("failed to initialize storage", err)
	}

	apptService := service.NewAppointmentService(apptRepo, validate)
	apptRoutes := routes.NewAppointmentDefault(apptService)

	e := echo.New()
	e.Use(middleware.CORS())

	// Appointments
	e.GET("/appointments", apptRoutes.GetAppointments)
	e.GET("/appointments/time-slots", apptRoutes.GetTimeSlots)
	e.GET("/appointments/available-time-slots", apptRoutes.GetAvailableTimeSlots)
	e.GET("/appointments/:id", apptRoutes.GetAppointment)
	e.POST("/appointments", apptRoutes.CreateAppointment)
	e.DELETE("/appointments/:id", apptRoutes.DeleteAppointment)

	e.GET("/health", routes.Health)

	err = e.Start(cfg.HTTPAddr)
	if err != nil {
		e.Logger.Fatal(err)
	}
}

func newAppointmentRepository(cfg config.Config) (service.AppointmentRepository, error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return repository.NewAppointmentRepository(db), nil
	default:
		return jsonfile.NewRepository(cfg.DataDir)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("iso8601", validators.IsIso8601)
}
