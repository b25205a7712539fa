package license

type CreateLicenseRequest struct {
	Name          string `json:"name" binding:"required"`
	LicenseNumber string `json:"license_number"`
	ExpiryDate    string `json:"expiry_date" binding:"required"`
}

type UpdateLicenseRequest struct {
	Name          string `json:"name"`
	LicenseNumber string `json:"license_number"`
	ExpiryDate    string `json:"expiry_date"`
}

type LicenseResponse struct {
	ID            string `json:"id"`
	CompanyID     string `json:"company_id"`
	Name          string `json:"name"`
	LicenseNumber string `json:"license_number,omitempty"`
	ExpiryDate    string `json:"expiry_date"`
	Expiring      bool   `json:"expiring"`
}

type LicenseDetailsResponse struct {
	LicenseResponse
	CompanyName   string `json:"company_name"`
	EmployeeCount int64  `json:"employee_count"`
}
