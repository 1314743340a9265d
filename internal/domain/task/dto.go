package task

type CreateRequest struct {
	Title           string `json:"title" validate:"required,min=2,max=200"`
	Description     string `json:"description,omitempty" validate:"max=2000"`
	Status          string `json:"status,omitempty"`
	LeaderID        string `json:"leader_id" validate:"required"`
	ExpectedManDays int    `json:"expected_man_days" validate:"gte=0"`
}

type UpdateRequest struct {
	Title           *string `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Status          *string `json:"status,omitempty"`
	ExpectedManDays *int    `json:"expected_man_days,omitempty" validate:"omitempty,gte=0"`
}

type AllocateRequest struct {
	LabourID string `json:"labour_id" validate:"required"`
}
