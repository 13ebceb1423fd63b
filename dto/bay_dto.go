package dto

// CreateBayRequest represents the request payload for adding a bay to the roster
type CreateBayRequest struct {
	Name                 string   `json:"name" binding:"required"`
	Team                 *string  `json:"team"`
	AssemblyStaffCount   *int     `json:"assemblyStaffCount"`
	ElectricalStaffCount *int     `json:"electricalStaffCount"`
	HoursPerWeek         *float64 `json:"hoursPerWeek"`
}

// UpdateBayRequest represents the request payload for updating a bay
type UpdateBayRequest struct {
	Name                 string   `json:"name" binding:"required"`
	Team                 *string  `json:"team"`
	AssemblyStaffCount   *int     `json:"assemblyStaffCount"`
	ElectricalStaffCount *int     `json:"electricalStaffCount"`
	HoursPerWeek         *float64 `json:"hoursPerWeek"`
}
