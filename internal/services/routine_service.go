package services

import (
	"context"
	"errors"
	"time"

	"github.com/MathavanSG/FitnessTrackerAPI/internal/models"
	"github.com/MathavanSG/FitnessTrackerAPI/internal/repository"
	"github.com/jackc/pgx/v5"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrRoutineNotFound   = errors.New("workout routine not found")
	ErrForbidden         = errors.New("forbidden")
	ErrNoRoutinesForDate = errors.New("no workout routines found for date")
)

type userReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type routineStore interface {
	Create(ctx context.Context, input repository.CreateWorkoutRoutineInput) (*models.WorkoutRoutine, error)
	GetByID(ctx context.Context, routineID int64) (*models.WorkoutRoutine, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.WorkoutRoutine, error)
	ListByUserIDAndDate(ctx context.Context, userID int64, date time.Time) ([]models.WorkoutRoutine, error)
	Update(ctx context.Context, routineID int64, date *time.Time, routineDetails *string) (*models.WorkoutRoutine, error)
	UpdateDetails(ctx context.Context, routineID int64, routineDetails string) (*models.WorkoutRoutine, error)
	Delete(ctx context.Context, routineID int64) (int64, error)
}

// RoutineService implements the workout-routine operations on behalf of the
// token subject (a username) resolved by the auth middleware.
type RoutineService struct {
	routineRepo routineStore
	userRepo    userReader
}

func NewRoutineService(routineRepo routineStore, userRepo userReader) *RoutineService {
	return &RoutineService{routineRepo: routineRepo, userRepo: userRepo}
}

func (s *RoutineService) resolveOwner(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *RoutineService) Create(
	ctx context.Context,
	ownerUsername string,
	date time.Time,
	routineDetails string,
) (*models.WorkoutRoutine, error) {
	owner, err := s.resolveOwner(ctx, ownerUsername)
	if err != nil {
		return nil, err
	}

	return s.routineRepo.Create(ctx, repository.CreateWorkoutRoutineInput{
		UserID:         owner.ID,
		Date:           &date,
		RoutineDetails: &routineDetails,
	})
}

func (s *RoutineService) ListAll(
	ctx context.Context,
	ownerUsername string,
) ([]models.WorkoutRoutine, error) {
	owner, err := s.resolveOwner(ctx, ownerUsername)
	if err != nil {
		return nil, err
	}
	return s.routineRepo.ListByUserID(ctx, owner.ID)
}

// Get returns the routine with the given id. The lookup is deliberately not
// scoped to the caller beyond requiring that the caller's account exists;
// routines are readable across users (see DESIGN.md).
func (s *RoutineService) Get(
	ctx context.Context,
	callerUsername string,
	routineID int64,
) (*models.WorkoutRoutine, error) {
	if _, err := s.resolveOwner(ctx, callerUsername); err != nil {
		return nil, err
	}

	routine, err := s.routineRepo.GetByID(ctx, routineID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}
	return routine, nil
}

// UpdateFull overwrites date and routine_details without an ownership check
// (see DESIGN.md). A missing routine yields (nil, nil) rather than an error.
func (s *RoutineService) UpdateFull(
	ctx context.Context,
	routineID int64,
	date time.Time,
	routineDetails string,
) (*models.WorkoutRoutine, error) {
	routine, err := s.routineRepo.Update(ctx, routineID, &date, &routineDetails)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return routine, nil
}

// UpdatePartial overwrites routine_details only, and only for the owner.
func (s *RoutineService) UpdatePartial(
	ctx context.Context,
	callerUsername string,
	routineID int64,
	routineDetails string,
) (*models.WorkoutRoutine, error) {
	caller, err := s.resolveOwner(ctx, callerUsername)
	if err != nil {
		return nil, err
	}

	routine, err := s.routineRepo.GetByID(ctx, routineID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}
	if routine.UserID != caller.ID {
		return nil, ErrForbidden
	}

	return s.routineRepo.UpdateDetails(ctx, routineID, routineDetails)
}

// Delete removes the routine if it exists. There is no ownership check and a
// missing routine is a no-op; callers always get a success acknowledgment
// (see DESIGN.md).
func (s *RoutineService) Delete(ctx context.Context, routineID int64) error {
	_, err := s.routineRepo.Delete(ctx, routineID)
	return err
}

func (s *RoutineService) FilterByDate(
	ctx context.Context,
	ownerUsername string,
	date time.Time,
) ([]models.WorkoutRoutine, error) {
	owner, err := s.resolveOwner(ctx, ownerUsername)
	if err != nil {
		return nil, err
	}

	routines, err := s.routineRepo.ListByUserIDAndDate(ctx, owner.ID, date)
	if err != nil {
		return nil, err
	}
	if len(routines) == 0 {
		return nil, ErrNoRoutinesForDate
	}
	return routines, nil
}
