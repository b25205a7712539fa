package violation

type CreateViolationRequest struct {
	Category    string `json:"category" binding:"required"`
	Severity    string `json:"severity" binding:"required,oneof=low medium high"`
	OccurredAt  string `json:"occurred_at" binding:"required"`
	Description string `json:"description"`
}

type UpdateViolationRequest struct {
	Category    string `json:"category" binding:"required"`
	Severity    string `json:"severity" binding:"required,oneof=low medium high"`
	OccurredAt  string `json:"occurred_at" binding:"required"`
	Description string `json:"description"`
}

type ViolationResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	OccurredAt  string `json:"occurred_at"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}
