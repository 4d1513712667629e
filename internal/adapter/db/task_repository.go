package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Hadjerbacha/cetic-ged/internal/core/domain"
	"github.com/Hadjerbacha/cetic-ged/internal/core/ports"
)

const selectTaskColumns = `
SELECT
  t.id,
  t.title,
  t.description,
  t.due_date,
  t.priority,
  t.file_path,
  t.notify,
  t.assigned_by,
  t.assignment_note,
  t.assigned_at,
  t.status,
  t.created_at,
  u.username AS assigner_name
FROM tasks t
LEFT JOIN users u ON u.id = t.assigned_by
`

const listTasksQuery = selectTaskColumns + `ORDER BY t.created_at DESC, t.id DESC;`

const getTaskQuery = selectTaskColumns + `WHERE t.id = ?;`

const insertTaskQuery = `
INSERT INTO tasks
  (title, description, due_date, priority, file_path, notify, assigned_by, assignment_note, assigned_at, status)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`

const updateTaskQuery = `
UPDATE tasks
SET title = ?, description = ?, due_date = ?, priority = ?, file_path = ?, notify = ?
WHERE id = ?;
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID             uint64         `db:"id"`
	Title          string         `db:"title"`
	Description    sql.NullString `db:"description"`
	DueDate        time.Time      `db:"due_date"`
	Priority       string         `db:"priority"`
	FilePath       sql.NullString `db:"file_path"`
	Notify         bool           `db:"notify"`
	AssignedBy     sql.NullInt64  `db:"assigned_by"`
	AssignmentNote sql.NullString `db:"assignment_note"`
	AssignedAt     sql.NullTime   `db:"assigned_at"`
	Status         string         `db:"status"`
	CreatedAt      time.Time      `db:"created_at"`
	AssignerName   sql.NullString `db:"assigner_name"`
}

type assigneeRow struct {
	TaskID uint64 `db:"task_id"`
	UserID uint64 `db:"user_id"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, record domain.TaskRecord) (domain.Task, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Task{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.ExecContext(ctx, insertTaskQuery,
		record.Title,
		record.Description,
		record.DueDate,
		record.Priority,
		record.FilePath,
		record.Notify,
		record.AssignedBy,
		record.AssignmentNote,
		record.AssignedAt,
		string(record.Status),
	)
	if err != nil {
		return domain.Task{}, err
	}

	taskID, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	for _, userID := range record.AssignedTo {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO task_assignees (task_id, user_id) VALUES (?, ?)",
			taskID, userID,
		); err != nil {
			return domain.Task{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.Task{}, err
	}

	return r.findByID(ctx, uint64(taskID))
}

func (r *TaskRepository) ListAll(ctx context.Context) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksQuery); err != nil {
		return nil, err
	}

	assignees, err := r.assigneesFor(ctx, taskIDs(rows))
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row, assignees[row.ID]))
	}

	return tasks, nil
}

func (r *TaskRepository) FindAttachment(ctx context.Context, id uint64) (*string, error) {
	var filePath sql.NullString
	err := r.db.GetContext(ctx, &filePath, "SELECT file_path FROM tasks WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}

	if !filePath.Valid {
		return nil, nil
	}
	value := filePath.String
	return &value, nil
}

func (r *TaskRepository) Update(ctx context.Context, id uint64, record domain.UpdateTaskRecord) (domain.Task, error) {
	if err := r.ensureExists(ctx, id); err != nil {
		return domain.Task{}, err
	}

	if _, err := r.db.ExecContext(ctx, updateTaskQuery,
		record.Title,
		record.Description,
		record.DueDate,
		record.Priority,
		record.FilePath,
		record.Notify,
		id,
	); err != nil {
		return domain.Task{}, err
	}

	return r.findByID(ctx, id)
}

func (r *TaskRepository) PatchStatus(ctx context.Context, id uint64, status domain.TaskStatus) (domain.Task, error) {
	if err := r.ensureExists(ctx, id); err != nil {
		return domain.Task{}, err
	}

	if _, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET status = ? WHERE id = ?",
		string(status), id,
	); err != nil {
		return domain.Task{}, err
	}

	return r.findByID(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id uint64) error {
	// Assignee rows go with the task via ON DELETE CASCADE.
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) findByID(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, getTaskQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}

	assignees, err := r.assigneesFor(ctx, []uint64{id})
	if err != nil {
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row, assignees[id]), nil
}

func (r *TaskRepository) ensureExists(ctx context.Context, id uint64) error {
	// MySQL reports zero affected rows for no-op updates, so existence is
	// checked explicitly instead of through RowsAffected.
	var one int
	err := r.db.GetContext(ctx, &one, "SELECT 1 FROM tasks WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrTaskNotFound
	}
	return err
}

func (r *TaskRepository) assigneesFor(ctx context.Context, ids []uint64) (map[uint64][]uint64, error) {
	byTask := make(map[uint64][]uint64, len(ids))
	if len(ids) == 0 {
		return byTask, nil
	}

	query, args, err := sqlx.In(
		"SELECT task_id, user_id FROM task_assignees WHERE task_id IN (?) ORDER BY task_id, user_id",
		ids,
	)
	if err != nil {
		return nil, err
	}

	var rows []assigneeRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	for _, row := range rows {
		byTask[row.TaskID] = append(byTask[row.TaskID], row.UserID)
	}

	return byTask, nil
}

func taskIDs(rows []taskRow) []uint64 {
	ids := make([]uint64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids
}

func mapTaskRowToDomainTask(row taskRow, assignedTo []uint64) domain.Task {
	task := domain.Task{
		ID:         row.ID,
		Title:      row.Title,
		DueDate:    row.DueDate,
		Priority:   row.Priority,
		Notify:     row.Notify,
		AssignedTo: assignedTo,
		Status:     domain.TaskStatus(row.Status),
		CreatedAt:  row.CreatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.FilePath.Valid {
		value := row.FilePath.String
		task.FilePath = &value
	}

	if row.AssignedBy.Valid {
		value := uint64(row.AssignedBy.Int64)
		task.AssignedBy = &value
	}

	if row.AssignmentNote.Valid {
		value := row.AssignmentNote.String
		task.AssignmentNote = &value
	}

	if row.AssignedAt.Valid {
		value := row.AssignedAt.Time
		task.AssignedAt = &value
	}

	if row.AssignerName.Valid {
		value := row.AssignerName.String
		task.AssignerName = &value
	}

	return task
}
