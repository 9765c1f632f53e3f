package models

type WorkoutRoutine struct {
	RoutineID      int64   `json:"routine_id"`
	UserID         int64   `json:"user_id"`
	Date           *Date   `json:"date"`
	RoutineDetails *string `json:"routine_details"`
}
