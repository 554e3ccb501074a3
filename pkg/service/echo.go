package service

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"git.lowcodeplatform.net/fabric/demo/pkg/model"
)

var ErrInvalidJSON = errors.New("request body is not valid json")

var emptyObject = json.RawMessage(`{}`)

// Echo возвращает тело запроса без изменений. Пустое тело считаем пустым объектом.
func (s *service) Echo(ctx context.Context, in json.RawMessage) (out model.EchoOut, err error) {
	in = bytes.TrimSpace(in)
	if len(in) == 0 {
		in = emptyObject
	}

	if !json.Valid(in) {
		return out, ErrInvalidJSON
	}

	out = model.EchoOut{
		Message:   model.EchoMessage,
		Received:  in,
		Timestamp: s.timestamp(),
	}

	return out, err
}
