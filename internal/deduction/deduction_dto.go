package deduction

type CreateDeductionRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description"`
}

type UpdateDeductionRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description"`
}

type DeductionResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
}
