package model

// three-level lookup hierarchy served by the times provider

type Region struct {
	ID   string `json:"regionId"`
	Name string `json:"regionName"`
}

type Locality struct {
	ID   string `json:"localityId"`
	Name string `json:"localityName"`
}

type Subarea struct {
	ID   string `json:"subareaId"`
	Name string `json:"subareaName"`
}
