package task

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusOnHold     Status = "On Hold"
)

// NormalizeStatus maps the status spellings seen in stored documents
// ("in-progress", "PENDING", "on_hold") onto the canonical set.
func NormalizeStatus(s string) (Status, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(s))
	cleaned = strings.ReplaceAll(cleaned, "-", " ")
	cleaned = strings.ReplaceAll(cleaned, "_", " ")
	switch cleaned {
	case "pending":
		return StatusPending, true
	case "in progress":
		return StatusInProgress, true
	case "completed":
		return StatusCompleted, true
	case "on hold":
		return StatusOnHold, true
	}
	return "", false
}

// IsActive reports whether the status counts toward the active-task figure.
func (s Status) IsActive() bool {
	norm, ok := NormalizeStatus(string(s))
	return ok && (norm == StatusPending || norm == StatusInProgress)
}

// IsCompleted tolerates the same spelling variants as IsActive.
func (s Status) IsCompleted() bool {
	norm, ok := NormalizeStatus(string(s))
	return ok && norm == StatusCompleted
}

// Allocation pairs one labourer with the task.
type Allocation struct {
	LabourID    string    `bson:"labour_id" json:"labour_id"`
	LabourName  string    `bson:"labour_name" json:"labour_name"`
	AllocatedAt time.Time `bson:"allocated_at" json:"allocated_at"`
}

type Task struct {
	ID              string       `bson:"_id" json:"id"`
	Title           string       `bson:"title" json:"title"`
	Description     string       `bson:"description,omitempty" json:"description,omitempty"`
	Status          Status       `bson:"status" json:"status"`
	LeaderID        string       `bson:"leader_id" json:"leader_id"`
	LeaderName      string       `bson:"leader_name" json:"leader_name"`
	ExpectedManDays int          `bson:"expected_man_days" json:"expected_man_days"`
	Allocations     []Allocation `bson:"allocations" json:"allocations"`
	CreatedAt       time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time    `bson:"updated_at" json:"updated_at"`
}

// AllocationCount is the task's labour count.
func (t Task) AllocationCount() int {
	return len(t.Allocations)
}
