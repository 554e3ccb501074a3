package service

import (
	"context"
	"encoding/json"
	"time"

	"git.lowcodeplatform.net/fabric/demo/pkg/model"
)

// Upstream то, что нужно сервису от клиента backend-а
type Upstream interface {
	GetJSON(ctx context.Context, path string) ([]byte, error)
}

type service struct {
	cfg      model.Config
	upstream Upstream
	now      func() time.Time
}

// Service interface
type Service interface {
	Health(ctx context.Context) (out model.HealthOut, err error)
	Status(ctx context.Context) (out model.StatusOut, err error)
	Data(ctx context.Context) (out model.DataOut, err error)
	Echo(ctx context.Context, in json.RawMessage) (out model.EchoOut, err error)
	RelayData(ctx context.Context) (out []byte, err error)
}

// New upstream может быть nil (роль backend)
func New(
	cfg model.Config,
	upstream Upstream,
) Service {
	return &service{
		cfg:      cfg,
		upstream: upstream,
		now:      time.Now,
	}
}

func (s *service) timestamp() string {
	return s.now().UTC().Format(model.TimeFormat)
}
