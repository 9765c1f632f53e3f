package routes

import (
	"github.com/MathavanSG/FitnessTrackerAPI/internal/config"
	"github.com/MathavanSG/FitnessTrackerAPI/internal/handlers"
	"github.com/MathavanSG/FitnessTrackerAPI/internal/middleware"
	"github.com/MathavanSG/FitnessTrackerAPI/internal/repository"
	"github.com/MathavanSG/FitnessTrackerAPI/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	userRepo := repository.NewUserRepository(db)
	routineRepo := repository.NewWorkoutRoutineRepository(db)

	routineService := services.NewRoutineService(routineRepo, userRepo)

	authHandler := handlers.NewAuthHandler(
		userRepo,
		cfg.JWTSecret,
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
	)
	routineHandler := handlers.NewRoutineHandler(routineService)

	auth := app.Group("/auth")
	auth.Get("/", middleware.AuthRequired(cfg.JWTSecret), authHandler.Hello)
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Get("/refresh", middleware.RefreshRequired(cfg.JWTSecret), authHandler.Refresh)

	routines := app.Group("/workout_routines", middleware.AuthRequired(cfg.JWTSecret))
	routines.Get("/", routineHandler.Hello)
	routines.Post("/createworkout", routineHandler.CreateWorkout)
	routines.Get("/showallworkouts", routineHandler.ShowAllWorkouts)
	routines.Get("/showallworkouts/:routine_id", routineHandler.ShowWorkoutByID)
	routines.Put("/updateworkouts/:routine_id", routineHandler.UpdateWorkout)
	routines.Get("/filterworkoutsbydate", routineHandler.FilterWorkoutsByDate)
	routines.Patch("/update_workout_details/:routine_id", routineHandler.UpdateWorkoutDetails)
	routines.Delete("/delete_routine/:routine_id", routineHandler.DeleteRoutine)
}
