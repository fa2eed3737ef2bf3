package service

import (
	"context"

	"github.com/aouiniamine/hello-service/internal/features/health/dto"
)

type HealthService interface {
	Liveness(ctx context.Context) (*dto.StatusResponse, error)
	Readiness(ctx context.Context) (*dto.StatusResponse, error)
}

type healthService struct{}

func New() HealthService {
	return &healthService{}
}

func (s *healthService) Liveness(ctx context.Context) (*dto.StatusResponse, error) {
	return &dto.StatusResponse{
		Status:  dto.StatusHealthy,
		Message: dto.MessageHealthy,
	}, nil
}

// Readiness reports ready as soon as the process serves requests; there are no
// downstream dependencies to probe.
func (s *healthService) Readiness(ctx context.Context) (*dto.StatusResponse, error) {
	return &dto.StatusResponse{
		Status:  dto.StatusReady,
		Message: dto.MessageReady,
	}, nil
}
