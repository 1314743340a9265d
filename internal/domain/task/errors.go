package task

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidTaskStatus  = errors.New("invalid task status")
	ErrAlreadyAllocated   = errors.New("labourer already allocated to this task")
	ErrAllocationNotFound = errors.New("allocation not found")
	ErrNotTaskLeader      = errors.New("task belongs to another leader")
)
