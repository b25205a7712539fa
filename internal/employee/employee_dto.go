package employee

type CreateEmployeeRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	EmployeeNumber string `json:"employee_number"`
	Position       string `json:"position"`
}

type UpdateEmployeeRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Position string `json:"position"`
}

type ArchiveEmployeeRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type AssignLicenseRequest struct {
	// Empty license_id clears the assignment.
	LicenseID string `json:"license_id"`
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	CompanyID      string  `json:"company_id"`
	LicenseID      *string `json:"license_id,omitempty"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	EmployeeNumber string  `json:"employee_number,omitempty"`
	Position       string  `json:"position,omitempty"`
	Status         string  `json:"status"`
	ArchivedAt     *string `json:"archived_at,omitempty"`
	ArchiveReason  *string `json:"archive_reason,omitempty"`
}

type EmployeeOptionResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}
