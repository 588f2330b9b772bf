package review

import "fmt"

// RateLimitError signals a submission inside the per-email cooldown window.
type RateLimitError struct {
	Email string
}

func (e *RateLimitError) Error() string {
	return "You can only submit one review per 30 days"
}

// ValidationError carries field-level validation messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// NotFoundError signals that the referenced review does not exist.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no review found with ID %s", e.ID)
}
