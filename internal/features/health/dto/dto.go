package dto

const (
	StatusHealthy = "healthy"
	StatusReady   = "ready"

	MessageHealthy = "Service is running"
	MessageReady   = "Service is ready to accept traffic"
)

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
