package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"wellness-planner/internal/model"
	repo "wellness-planner/internal/task/repository"
)

// CreateTask inserts a new Task row and returns the stored entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	row, err := toRow(opt.Task)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`
	if _, err := r.db.ExecContext(ctx, query, row.args()...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return model.Task{}, repo.ErrDuplicateID
		}
		return model.Task{}, repo.ErrFailedToInsert
	}
	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.Task.ID})
}

// GetOneTask retrieves a single Task by ID.
// Returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ? LIMIT 1`

	row, err := scanRow(r.db.QueryRowContext(ctx, query, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}

	t, err := row.toTask(r.loc)
	if err != nil {
		r.l.Errorf(ctx, "%s decode %s: %v", r.dsn("GetOneTask"), opt.ID, err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a page of Tasks, newest first, and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	where, args := r.buildListFilter(opt)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`+where, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	limit := opt.Limit
	if limit <= 0 {
		limit = -1
	}
	query := `SELECT ` + taskColumns + ` FROM tasks` + where + ` ORDER BY created_at DESC, id ASC LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, append(args, limit, max(opt.Offset, 0))...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, 0, repo.ErrFailedToList
		}
		t, err := row.toTask(r.loc)
		if err != nil {
			r.l.Errorf(ctx, "%s decode %s: %v", r.dsn("ListTasks"), row.ID, err)
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// UpdateTask overwrites every column of the Task row.
// Returns zero-value Task when the ID does not exist.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	row, err := toRow(opt.Task)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	const query = `
		UPDATE tasks
		SET title = ?, description = ?, tags = ?, chat_id = ?, calendar_event_id = ?, is_recurring = ?,
		    rule = ?, next_occurrence = ?, occurrences = ?, reminder_before = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		row.Title, row.Description, row.Tags, row.ChatID, row.CalendarEventID, row.IsRecurring,
		row.Rule, row.NextOccurrence, row.Occurrences, row.ReminderBefore, row.UpdatedAt,
		row.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.Task{}, nil
	}
	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: row.ID})
}

// DeleteTask removes a Task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// buildListFilter builds the WHERE clause shared by the count and page queries.
func (r *implRepository) buildListFilter(opt repo.ListTasksOptions) (string, []any) {
	var (
		conditions []string
		args       []any
	)
	if opt.RecurringOnly {
		conditions = append(conditions, "is_recurring = ?")
		args = append(args, true)
	}
	if opt.ChatID != 0 {
		conditions = append(conditions, "(chat_id = ? OR chat_id = 0)")
		args = append(args, opt.ChatID)
	}
	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}
