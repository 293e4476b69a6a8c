package packets

// body for updating notification preferences
type UpdateSettingsRequest struct {
	WarningMinutes *int    `json:"warningMinutes" binding:"omitempty,min=1,max=120"`
	AudioEnabled   *bool   `json:"audioEnabled"`
	OnsetSound     *string `json:"onsetSound" binding:"omitempty,oneof=full-call short-signal"`
	SignalSeconds  *int    `json:"signalSeconds" binding:"omitempty,min=5,max=60"`
}

// body for selecting the tracked subarea
type UpdateLocationRequest struct {
	SubareaID    string `json:"subareaId" binding:"required"`
	SubareaName  string `json:"subareaName" binding:"required"`
	LocalityName string `json:"localityName" binding:"required"`
	RegionName   string `json:"regionName" binding:"required"`
}
