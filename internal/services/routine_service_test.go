package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MathavanSG/FitnessTrackerAPI/internal/models"
	"github.com/MathavanSG/FitnessTrackerAPI/internal/repository"
	"github.com/jackc/pgx/v5"
)

type stubUserRepo struct {
	user         *models.User
	err          error
	lastUsername string
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.lastUsername = username
	return r.user, r.err
}

type stubRoutineRepo struct {
	createResult  *models.WorkoutRoutine
	createErr     error
	getResult     *models.WorkoutRoutine
	getErr        error
	listResult    []models.WorkoutRoutine
	listErr       error
	updateResult  *models.WorkoutRoutine
	updateErr     error
	deletedRows   int64
	deleteErr     error
	lastCreate    repository.CreateWorkoutRoutineInput
	lastRoutineID int64
	lastDate      time.Time
	lastDetails   string
	deleteCalled  bool
}

func (r *stubRoutineRepo) Create(_ context.Context, input repository.CreateWorkoutRoutineInput) (*models.WorkoutRoutine, error) {
	r.lastCreate = input
	return r.createResult, r.createErr
}

func (r *stubRoutineRepo) GetByID(_ context.Context, routineID int64) (*models.WorkoutRoutine, error) {
	r.lastRoutineID = routineID
	return r.getResult, r.getErr
}

func (r *stubRoutineRepo) ListByUserID(_ context.Context, _ int64) ([]models.WorkoutRoutine, error) {
	return r.listResult, r.listErr
}

func (r *stubRoutineRepo) ListByUserIDAndDate(_ context.Context, _ int64, date time.Time) ([]models.WorkoutRoutine, error) {
	r.lastDate = date
	return r.listResult, r.listErr
}

func (r *stubRoutineRepo) Update(_ context.Context, routineID int64, date *time.Time, details *string) (*models.WorkoutRoutine, error) {
	r.lastRoutineID = routineID
	if date != nil {
		r.lastDate = *date
	}
	if details != nil {
		r.lastDetails = *details
	}
	return r.updateResult, r.updateErr
}

func (r *stubRoutineRepo) UpdateDetails(_ context.Context, routineID int64, details string) (*models.WorkoutRoutine, error) {
	r.lastRoutineID = routineID
	r.lastDetails = details
	return r.updateResult, r.updateErr
}

func (r *stubRoutineRepo) Delete(_ context.Context, routineID int64) (int64, error) {
	r.deleteCalled = true
	r.lastRoutineID = routineID
	return r.deletedRows, r.deleteErr
}

func details(s string) *string {
	return &s
}

func TestCreateResolvesOwner(t *testing.T) {
	userRepo := &stubUserRepo{user: &models.User{ID: 7, Username: "Maddy"}}
	routineRepo := &stubRoutineRepo{
		createResult: &models.WorkoutRoutine{RoutineID: 1, UserID: 7},
	}
	service := NewRoutineService(routineRepo, userRepo)

	date := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	routine, err := service.Create(context.Background(), "Maddy", date, "Morning yoga")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if routine.RoutineID != 1 {
		t.Fatalf("expected routine id 1, got %d", routine.RoutineID)
	}
	if routineRepo.lastCreate.UserID != 7 {
		t.Fatalf("expected owner id 7, got %d", routineRepo.lastCreate.UserID)
	}
	if routineRepo.lastCreate.Date == nil || !routineRepo.lastCreate.Date.Equal(date) {
		t.Fatalf("unexpected date: %v", routineRepo.lastCreate.Date)
	}
}

func TestCreateUnknownOwner(t *testing.T) {
	userRepo := &stubUserRepo{err: pgx.ErrNoRows}
	service := NewRoutineService(&stubRoutineRepo{}, userRepo)

	_, err := service.Create(context.Background(), "ghost", time.Now(), "details")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetMissingRoutine(t *testing.T) {
	userRepo := &stubUserRepo{user: &models.User{ID: 7, Username: "Maddy"}}
	routineRepo := &stubRoutineRepo{getErr: pgx.ErrNoRows}
	service := NewRoutineService(routineRepo, userRepo)

	_, err := service.Get(context.Background(), "Maddy", 42)
	if !errors.Is(err, ErrRoutineNotFound) {
		t.Fatalf("expected ErrRoutineNotFound, got %v", err)
	}
}

func TestGetIsNotOwnerScoped(t *testing.T) {
	userRepo := &stubUserRepo{user: &models.User{ID: 7, Username: "Maddy"}}
	routineRepo := &stubRoutineRepo{
		getResult: &models.WorkoutRoutine{RoutineID: 3, UserID: 99},
	}
	service := NewRoutineService(routineRepo, userRepo)

	routine, err := service.Get(context.Background(), "Maddy", 3)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if routine.UserID != 99 {
		t.Fatalf("expected cross-user routine to be readable, got %+v", routine)
	}
}

func TestUpdateFullMissingRoutineIsSilent(t *testing.T) {
	routineRepo := &stubRoutineRepo{updateErr: pgx.ErrNoRows}
	service := NewRoutineService(routineRepo, &stubUserRepo{})

	routine, err := service.UpdateFull(context.Background(), 42, time.Now(), "details")
	if err != nil {
		t.Fatalf("UpdateFull: %v", err)
	}
	if routine != nil {
		t.Fatalf("expected nil routine for missing id, got %+v", routine)
	}
}

func TestUpdatePartialEnforcesOwnership(t *testing.T) {
	userRepo := &stubUserRepo{user: &models.User{ID: 7, Username: "Maddy"}}
	routineRepo := &stubRoutineRepo{
		getResult: &models.WorkoutRoutine{RoutineID: 3, UserID: 99},
	}
	service := NewRoutineService(routineRepo, userRepo)

	_, err := service.UpdatePartial(context.Background(), "Maddy", 3, "new details")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUpdatePartialByOwner(t *testing.T) {
	userRepo := &stubUserRepo{user: &models.User{ID: 7, Username: "Maddy"}}
	routineRepo := &stubRoutineRepo{
		getResult: &models.WorkoutRoutine{RoutineID: 3, UserID: 7},
		updateResult: &models.WorkoutRoutine{
			RoutineID:      3,
			UserID:         7,
			RoutineDetails: details("new details"),
		},
	}
	service := NewRoutineService(routineRepo, userRepo)

	routine, err := service.UpdatePartial(context.Background(), "Maddy", 3, "new details")
	if err != nil {
		t.Fatalf("UpdatePartial: %v", err)
	}
	if routine.RoutineDetails == nil || *routine.RoutineDetails != "new details" {
		t.Fatalf("unexpected details: %+v", routine.RoutineDetails)
	}
	if routineRepo.lastDetails != "new details" {
		t.Fatalf("expected details to be forwarded, got %q", routineRepo.lastDetails)
	}
}

func TestDeleteMissingRoutineIsNoOp(t *testing.T) {
	routineRepo := &stubRoutineRepo{deletedRows: 0}
	service := NewRoutineService(routineRepo, &stubUserRepo{})

	if err := service.Delete(context.Background(), 42); err != nil {
		t.Fatalf("expected delete of missing routine to succeed, got %v", err)
	}
	if !routineRepo.deleteCalled {
		t.Fatalf("expected delete to be attempted")
	}
}

func TestFilterByDateEmptyResult(t *testing.T) {
	userRepo := &stubUserRepo{user: &models.User{ID: 7, Username: "Maddy"}}
	routineRepo := &stubRoutineRepo{listResult: []models.WorkoutRoutine{}}
	service := NewRoutineService(routineRepo, userRepo)

	_, err := service.FilterByDate(
		context.Background(),
		"Maddy",
		time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
	)
	if !errors.Is(err, ErrNoRoutinesForDate) {
		t.Fatalf("expected ErrNoRoutinesForDate, got %v", err)
	}
}

func TestFilterByDateForwardsDate(t *testing.T) {
	userRepo := &stubUserRepo{user: &models.User{ID: 7, Username: "Maddy"}}
	routineRepo := &stubRoutineRepo{
		listResult: []models.WorkoutRoutine{{RoutineID: 1, UserID: 7}},
	}
	service := NewRoutineService(routineRepo, userRepo)

	date := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	routines, err := service.FilterByDate(context.Background(), "Maddy", date)
	if err != nil {
		t.Fatalf("FilterByDate: %v", err)
	}
	if len(routines) != 1 {
		t.Fatalf("expected 1 routine, got %d", len(routines))
	}
	if !routineRepo.lastDate.Equal(date) {
		t.Fatalf("expected filter date %v, got %v", date, routineRepo.lastDate)
	}
}
