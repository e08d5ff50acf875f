package dto

// IsStaffResponse signals whether the caller holds a staff record.
type IsStaffResponse struct {
	IsStaff bool `json:"is_staff"`
}

// CheckingFreshyNightResponse signals that a staff member admitted a user
// at the freshy-night door.
type CheckingFreshyNightResponse struct {
	Success bool `json:"success"`
}
