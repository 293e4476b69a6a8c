package packets

// body for jumping to an absolute date
type SetDateRequest struct {
	Date string `json:"date" binding:"required"` // dd.MM.yyyy
}

// body for moving relative to the displayed date; zero is a valid no-op
type ShiftDateRequest struct {
	Days int `json:"days"`
}
