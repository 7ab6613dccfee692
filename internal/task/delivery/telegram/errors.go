package telegram

import (
	"errors"

	"wellness-planner/internal/task"
)

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, task.ErrTaskNotFound):
		return "No task with that ID."
	default:
		return "Something went wrong, please try again."
	}
}
