package service

import (
	"context"

	"github.com/pkg/errors"
)

const dataPath = "/api/data"

var ErrNoUpstream = errors.New("upstream is not configured")

// RelayData проксирует /api/data в backend: один вызов, без ретраев.
// Тело успешного ответа отдаем без перепаковки.
func (s *service) RelayData(ctx context.Context) (out []byte, err error) {
	if s.upstream == nil {
		return nil, ErrNoUpstream
	}

	out, err = s.upstream.GetJSON(ctx, dataPath)
	if err != nil {
		return nil, errors.Wrap(err, "fetch data from backend")
	}

	return out, nil
}
