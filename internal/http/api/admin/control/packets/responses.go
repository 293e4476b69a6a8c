package packets

type SettingsResponse struct {
	SubareaID      string `json:"subareaId"`
	SubareaName    string `json:"subareaName"`
	LocalityName   string `json:"localityName"`
	RegionName     string `json:"regionName"`
	WarningMinutes int    `json:"warningMinutes"`
	AudioEnabled   bool   `json:"audioEnabled"`
	OnsetSound     string `json:"onsetSound"`
	SignalSeconds  int    `json:"signalSeconds"`
}
