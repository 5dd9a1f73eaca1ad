package model

type Status string

const (
	StatusUp   Status = "UP"
	StatusDown Status = "DOWN"
)

// ComponentHealth is the health of a single dependency.
type ComponentHealth struct {
	Status Status `json:"status"`
	Name   string `json:"name,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// HealthResponse is the aggregate health of the application.
type HealthResponse struct {
	Status  Status          `json:"status"`
	Storage ComponentHealth `json:"storage"`
}
