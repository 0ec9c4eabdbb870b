package service

import (
	"strings"
	"time"

	"github.com/studybuddy-dev/studybuddy/internal/models"
	"github.com/studybuddy-dev/studybuddy/internal/types"
)

// CreateSessionInput carries the raw request fields for creating a study
// session. Timestamps are strings; parsing happens in the validator.
type CreateSessionInput struct {
	SubjectID   *uint  `json:"subject_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Status      string `json:"status"`
}

// UpdateSessionInput distinguishes omitted fields, which keep their stored
// value, from explicitly provided ones, including explicit null.
type UpdateSessionInput struct {
	SubjectID   types.Optional[uint]   `json:"subject_id"`
	Title       types.Optional[string] `json:"title"`
	Description types.Optional[string] `json:"description"`
	StartTime   types.Optional[string] `json:"start_time"`
	EndTime     types.Optional[string] `json:"end_time"`
	Status      types.Optional[string] `json:"status"`
}

// ValidatedSession carries only normalized, type-checked values. Downstream
// code never sees raw request fields.
type ValidatedSession struct {
	SubjectID   uint
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Status      string
}

// Accepted timestamp layouts. The second admits minute precision, which the
// previous API accepted as well.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

func parseTime(value string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func validateCreate(input CreateSessionInput) (ValidatedSession, error) {
	if input.SubjectID == nil {
		return ValidatedSession{}, &ValidationError{Reason: ReasonMissingField, Field: "subject_id"}
	}
	if strings.TrimSpace(input.Title) == "" {
		return ValidatedSession{}, &ValidationError{Reason: ReasonMissingField, Field: "title"}
	}
	if input.StartTime == "" {
		return ValidatedSession{}, &ValidationError{Reason: ReasonMissingField, Field: "start_time"}
	}
	if input.EndTime == "" {
		return ValidatedSession{}, &ValidationError{Reason: ReasonMissingField, Field: "end_time"}
	}

	start, ok := parseTime(input.StartTime)
	if !ok {
		return ValidatedSession{}, &ValidationError{Reason: ReasonInvalidTime, Field: "start_time"}
	}
	end, ok := parseTime(input.EndTime)
	if !ok {
		return ValidatedSession{}, &ValidationError{Reason: ReasonInvalidTime, Field: "end_time"}
	}
	if !end.After(start) {
		return ValidatedSession{}, &ValidationError{Reason: ReasonInvalidTimeRange}
	}

	status := input.Status
	if status == "" {
		status = models.StatusPending
	}
	if !models.ValidSessionStatus(status) {
		return ValidatedSession{}, &ValidationError{Reason: ReasonInvalidStatus, Field: "status"}
	}

	return ValidatedSession{
		SubjectID:   *input.SubjectID,
		Title:       input.Title,
		Description: input.Description,
		StartTime:   start,
		EndTime:     end,
		Status:      status,
	}, nil
}

// validateUpdate coalesces the update on top of the stored session: omitted
// fields keep their stored value, an explicit null or empty description
// clears it, and the time range is re-checked against the coalesced values.
func validateUpdate(existing *models.StudySession, input UpdateSessionInput) (ValidatedSession, error) {
	out := ValidatedSession{
		SubjectID:   existing.SubjectID,
		Title:       existing.Title,
		Description: existing.Description,
		StartTime:   existing.StartTime,
		EndTime:     existing.EndTime,
		Status:      existing.Status,
	}

	if input.SubjectID.Set {
		out.SubjectID = input.SubjectID.Value
	}
	if input.Title.Set {
		if strings.TrimSpace(input.Title.Value) == "" {
			return ValidatedSession{}, &ValidationError{Reason: ReasonMissingField, Field: "title"}
		}
		out.Title = input.Title.Value
	}
	if input.Description.Set {
		out.Description = input.Description.Value
	}
	if input.StartTime.Set {
		start, ok := parseTime(input.StartTime.Value)
		if !ok {
			return ValidatedSession{}, &ValidationError{Reason: ReasonInvalidTime, Field: "start_time"}
		}
		out.StartTime = start
	}
	if input.EndTime.Set {
		end, ok := parseTime(input.EndTime.Value)
		if !ok {
			return ValidatedSession{}, &ValidationError{Reason: ReasonInvalidTime, Field: "end_time"}
		}
		out.EndTime = end
	}

	if !out.EndTime.After(out.StartTime) {
		return ValidatedSession{}, &ValidationError{Reason: ReasonInvalidTimeRange}
	}

	if input.Status.Set {
		if !models.ValidSessionStatus(input.Status.Value) {
			return ValidatedSession{}, &ValidationError{Reason: ReasonInvalidStatus, Field: "status"}
		}
		out.Status = input.Status.Value
	}

	return out, nil
}
