package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/gymverse/internal/error_values"
	"github.com/limbo/gymverse/pkg/entity"
)

const routineColumns = `id, user_id, name, goal, days_per_week, session_duration_min, fitness_level,
	available_equipment, weeks, created_at, updated_at`

type RoutinesRepository struct {
	conn PgConnection
}

func NewRoutinesRepo(cfg DBConfig) *RoutinesRepository {
	return &RoutinesRepository{
		conn: connect(cfg, "routinesRepo"),
	}
}

func NewRoutinesRepoWithConn(conn PgConnection) *RoutinesRepository {
	mustPing(conn, "routinesRepo")
	return &RoutinesRepository{
		conn: conn,
	}
}

func (rr *RoutinesRepository) Create(ctx context.Context, routine *entity.Routine) error {
	if routine == nil {
		return errors.New("routine is nil")
	}
	equipment, weeks, err := encodeRoutineDocs(routine)
	if err != nil {
		return err
	}
	_, err = rr.conn.Exec(ctx, `INSERT INTO routines (`+routineColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
		routine.ID,
		routine.UserID,
		routine.Name,
		routine.Goal,
		routine.DaysPerWeek,
		routine.SessionDurationMin,
		routine.FitnessLevel,
		equipment,
		weeks,
		routine.CreatedAt,
		routine.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrOwnerNotFound
			}
		}
		return errors.New("creating routine db error: " + err.Error())
	}
	return nil
}

func (rr *RoutinesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Routine, error) {
	row := rr.conn.QueryRow(ctx, `SELECT `+routineColumns+` FROM routines WHERE id = $1;`, id)
	routine, err := scanRoutine(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrRoutineNotFound
		}
		return nil, errors.New("getting routine by id error: " + err.Error())
	}
	return routine, nil
}

func (rr *RoutinesRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Routine, error) {
	routines := make([]*entity.Routine, 0)
	rows, err := rr.conn.Query(ctx, `SELECT `+routineColumns+` FROM routines
		WHERE user_id = $1 ORDER BY created_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("getting routines by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		routine, err := scanRoutine(rows)
		if err != nil {
			return nil, errors.New("unmarshalling routine error: " + err.Error())
		}
		routines = append(routines, routine)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return routines, nil
}

func (rr *RoutinesRepository) Update(ctx context.Context, routine *entity.Routine) error {
	equipment, weeks, err := encodeRoutineDocs(routine)
	if err != nil {
		return err
	}
	ct, err := rr.conn.Exec(ctx, `UPDATE routines SET name = $1, goal = $2, days_per_week = $3, session_duration_min = $4,
		fitness_level = $5, available_equipment = $6, weeks = $7, updated_at = $8 WHERE id = $9;`,
		routine.Name,
		routine.Goal,
		routine.DaysPerWeek,
		routine.SessionDurationMin,
		routine.FitnessLevel,
		equipment,
		weeks,
		routine.UpdatedAt,
		routine.ID,
	)
	if err != nil {
		return errors.New("error updating routine: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrRoutineNotFound
	}
	return nil
}

func (rr *RoutinesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := rr.conn.Exec(ctx, `DELETE FROM routines WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting routine: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrRoutineNotFound
	}
	return nil
}

// encodeRoutineDocs renders the JSONB columns of a routine.
func encodeRoutineDocs(routine *entity.Routine) (equipment, weeks []byte, err error) {
	equipment, err = sonic.Marshal(nonNil(routine.AvailableEquipment))
	if err != nil {
		return nil, nil, fmt.Errorf("encoding routine equipment: %w", err)
	}
	weeks, err = sonic.Marshal(routine.Weeks)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding routine weeks: %w", err)
	}
	return equipment, weeks, nil
}

func scanRoutine(row pgx.Row) (*entity.Routine, error) {
	var (
		r         entity.Routine
		equipment []byte
		weeks     []byte
	)
	err := row.Scan(&r.ID, &r.UserID, &r.Name, &r.Goal, &r.DaysPerWeek, &r.SessionDurationMin, &r.FitnessLevel,
		&equipment, &weeks, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err = sonic.Unmarshal(equipment, &r.AvailableEquipment); err != nil {
		return nil, fmt.Errorf("decoding routine equipment: %w", err)
	}
	if err = sonic.Unmarshal(weeks, &r.Weeks); err != nil {
		return nil, fmt.Errorf("decoding routine weeks: %w", err)
	}
	return &r, nil
}
