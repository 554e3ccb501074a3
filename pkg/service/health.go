package service

import (
	"context"

	"git.lowcodeplatform.net/fabric/demo/pkg/model"
)

// Health liveness: всегда healthy, зависимости не проверяются
func (s *service) Health(ctx context.Context) (out model.HealthOut, err error) {
	out = model.HealthOut{
		Status:    model.HealthStatusHealthy,
		Timestamp: s.timestamp(),
		Service:   s.cfg.Service,
	}

	return out, err
}
