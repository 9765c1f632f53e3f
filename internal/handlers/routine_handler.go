package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MathavanSG/FitnessTrackerAPI/internal/models"
	"github.com/MathavanSG/FitnessTrackerAPI/internal/services"
	"github.com/gofiber/fiber/v2"
)

type RoutineService interface {
	Create(ctx context.Context, ownerUsername string, date time.Time, routineDetails string) (*models.WorkoutRoutine, error)
	ListAll(ctx context.Context, ownerUsername string) ([]models.WorkoutRoutine, error)
	Get(ctx context.Context, callerUsername string, routineID int64) (*models.WorkoutRoutine, error)
	UpdateFull(ctx context.Context, routineID int64, date time.Time, routineDetails string) (*models.WorkoutRoutine, error)
	UpdatePartial(ctx context.Context, callerUsername string, routineID int64, routineDetails string) (*models.WorkoutRoutine, error)
	Delete(ctx context.Context, routineID int64) error
	FilterByDate(ctx context.Context, ownerUsername string, date time.Time) ([]models.WorkoutRoutine, error)
}

type RoutineHandler struct {
	service RoutineService
}

func NewRoutineHandler(service RoutineService) *RoutineHandler {
	return &RoutineHandler{service: service}
}

type workoutRoutineRequest struct {
	Date           string `json:"date" validate:"required"`
	RoutineDetails string `json:"routine_details" validate:"required"`
}

type updateWorkoutDetailsRequest struct {
	RoutineDetails string `json:"routine_details" validate:"required"`
}

func (h *RoutineHandler) Hello(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Hello, Bodybuilder! What was your achievement?"})
}

func (h *RoutineHandler) CreateWorkout(c *fiber.Ctx) error {
	username, ok := currentUsername(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or missing token"})
	}

	var req workoutRoutineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validateBody(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	date, err := models.ParseDate(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD."})
	}

	routine, err := h.service.Create(c.Context(), username, date.Time, req.RoutineDetails)
	if err != nil {
		return routineErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(routine)
}

func (h *RoutineHandler) ShowAllWorkouts(c *fiber.Ctx) error {
	username, ok := currentUsername(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or missing token"})
	}

	routines, err := h.service.ListAll(c.Context(), username)
	if err != nil {
		return routineErrorResponse(c, err)
	}

	return c.JSON(routines)
}

func (h *RoutineHandler) ShowWorkoutByID(c *fiber.Ctx) error {
	username, ok := currentUsername(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or missing token"})
	}

	routineID, err := c.ParamsInt("routine_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid routine id"})
	}

	routine, err := h.service.Get(c.Context(), username, int64(routineID))
	if err != nil {
		return routineErrorResponse(c, err)
	}

	return c.JSON(routine)
}

// UpdateWorkout replaces date and routine_details wholesale. A routine id with
// no backing row produces a 200 with a null body rather than a 404, matching
// the documented endpoint contract.
func (h *RoutineHandler) UpdateWorkout(c *fiber.Ctx) error {
	routineID, err := c.ParamsInt("routine_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid routine id"})
	}

	var req workoutRoutineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validateBody(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	date, err := models.ParseDate(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD."})
	}

	routine, err := h.service.UpdateFull(c.Context(), int64(routineID), date.Time, req.RoutineDetails)
	if err != nil {
		return routineErrorResponse(c, err)
	}

	return c.JSON(routine)
}

func (h *RoutineHandler) FilterWorkoutsByDate(c *fiber.Ctx) error {
	username, ok := currentUsername(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or missing token"})
	}

	date, err := models.ParseDate(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD."})
	}

	routines, err := h.service.FilterByDate(c.Context(), username, date.Time)
	if err != nil {
		if errors.Is(err, services.ErrNoRoutinesForDate) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("No workout routines found for date %s.", date),
			})
		}
		return routineErrorResponse(c, err)
	}

	return c.JSON(routines)
}

func (h *RoutineHandler) UpdateWorkoutDetails(c *fiber.Ctx) error {
	username, ok := currentUsername(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or missing token"})
	}

	routineID, err := c.ParamsInt("routine_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid routine id"})
	}

	var req updateWorkoutDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validateBody(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	routine, err := h.service.UpdatePartial(c.Context(), username, int64(routineID), req.RoutineDetails)
	if err != nil {
		return routineErrorResponse(c, err)
	}

	return c.JSON(routine)
}

func (h *RoutineHandler) DeleteRoutine(c *fiber.Ctx) error {
	routineID, err := c.ParamsInt("routine_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid routine id"})
	}

	if err := h.service.Delete(c.Context(), int64(routineID)); err != nil {
		return routineErrorResponse(c, err)
	}

	return c.Status(fiber.StatusNoContent).
		JSON(fiber.Map{"message": "Workout routine deleted successfully"})
}

func currentUsername(c *fiber.Ctx) (string, bool) {
	username, ok := c.Locals("username").(string)
	return username, ok && username != ""
}

func routineErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	case errors.Is(err, services.ErrRoutineNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workout routine not found"})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).
			JSON(fiber.Map{"error": "Unauthorized to update this routine"})
	default:
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to process workout routine"})
	}
}
