package service

import (
	"context"

	"postboard/internal/repository"
)

type HealthService struct {
	store repository.Pinger
}

func NewHealthService(store repository.Pinger) *HealthService {
	return &HealthService{store: store}
}

func (s *HealthService) Check(ctx context.Context) error {
	return s.store.Ping(ctx)
}
