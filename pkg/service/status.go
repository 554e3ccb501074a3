package service

import (
	"context"

	"git.lowcodeplatform.net/fabric/demo/pkg/model"
)

// Status ...
func (s *service) Status(ctx context.Context) (out model.StatusOut, err error) {
	out = model.StatusOut{
		Message:   model.StatusMessage,
		Version:   model.APIVersion,
		Timestamp: s.timestamp(),
	}

	return out, err
}
