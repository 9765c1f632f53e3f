package repository

import (
	"context"
	"time"

	"github.com/MathavanSG/FitnessTrackerAPI/internal/models"
	"github.com/jackc/pgx/v5"
)

type CreateWorkoutRoutineInput struct {
	UserID         int64
	Date           *time.Time
	RoutineDetails *string
}

type WorkoutRoutineRepository struct {
	db DBTX
}

func NewWorkoutRoutineRepository(db DBTX) *WorkoutRoutineRepository {
	return &WorkoutRoutineRepository{db: db}
}

func (r *WorkoutRoutineRepository) Create(
	ctx context.Context,
	input CreateWorkoutRoutineInput,
) (*models.WorkoutRoutine, error) {
	query := `
		INSERT INTO workout_routine (user_id, date, routine_details)
		VALUES ($1, $2, $3)
		RETURNING routine_id, user_id, date, routine_details
	`
	return r.scanRoutine(r.db.QueryRow(ctx, query, input.UserID, input.Date, input.RoutineDetails))
}

func (r *WorkoutRoutineRepository) GetByID(
	ctx context.Context,
	routineID int64,
) (*models.WorkoutRoutine, error) {
	query := `
		SELECT routine_id, user_id, date, routine_details
		FROM workout_routine
		WHERE routine_id = $1
	`
	return r.scanRoutine(r.db.QueryRow(ctx, query, routineID))
}

func (r *WorkoutRoutineRepository) ListByUserID(
	ctx context.Context,
	userID int64,
) ([]models.WorkoutRoutine, error) {
	query := `
		SELECT routine_id, user_id, date, routine_details
		FROM workout_routine
		WHERE user_id = $1
		ORDER BY routine_id ASC
	`
	return r.list(ctx, query, userID)
}

func (r *WorkoutRoutineRepository) ListByUserIDAndDate(
	ctx context.Context,
	userID int64,
	date time.Time,
) ([]models.WorkoutRoutine, error) {
	query := `
		SELECT routine_id, user_id, date, routine_details
		FROM workout_routine
		WHERE user_id = $1 AND date = $2
		ORDER BY routine_id ASC
	`
	return r.list(ctx, query, userID, date)
}

// Update overwrites date and routine_details. Returns pgx.ErrNoRows when no
// routine has the given id.
func (r *WorkoutRoutineRepository) Update(
	ctx context.Context,
	routineID int64,
	date *time.Time,
	routineDetails *string,
) (*models.WorkoutRoutine, error) {
	query := `
		UPDATE workout_routine
		SET date = $2, routine_details = $3
		WHERE routine_id = $1
		RETURNING routine_id, user_id, date, routine_details
	`
	return r.scanRoutine(r.db.QueryRow(ctx, query, routineID, date, routineDetails))
}

func (r *WorkoutRoutineRepository) UpdateDetails(
	ctx context.Context,
	routineID int64,
	routineDetails string,
) (*models.WorkoutRoutine, error) {
	query := `
		UPDATE workout_routine
		SET routine_details = $2
		WHERE routine_id = $1
		RETURNING routine_id, user_id, date, routine_details
	`
	return r.scanRoutine(r.db.QueryRow(ctx, query, routineID, routineDetails))
}

// Delete removes the routine if it exists and reports how many rows went away.
// Deleting an id that does not exist is a no-op, not an error.
func (r *WorkoutRoutineRepository) Delete(ctx context.Context, routineID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM workout_routine WHERE routine_id = $1`, routineID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *WorkoutRoutineRepository) scanRoutine(row pgx.Row) (*models.WorkoutRoutine, error) {
	var routine models.WorkoutRoutine
	var date *time.Time
	if err := row.Scan(
		&routine.RoutineID,
		&routine.UserID,
		&date,
		&routine.RoutineDetails,
	); err != nil {
		return nil, err
	}
	routine.Date = models.NewDate(date)
	return &routine, nil
}

func (r *WorkoutRoutineRepository) list(
	ctx context.Context,
	query string,
	args ...any,
) ([]models.WorkoutRoutine, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routines := make([]models.WorkoutRoutine, 0)
	for rows.Next() {
		var routine models.WorkoutRoutine
		var date *time.Time
		if err := rows.Scan(
			&routine.RoutineID,
			&routine.UserID,
			&date,
			&routine.RoutineDetails,
		); err != nil {
			return nil, err
		}
		routine.Date = models.NewDate(date)
		routines = append(routines, routine)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return routines, nil
}
