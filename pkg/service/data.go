package service

import (
	"context"

	"git.lowcodeplatform.net/fabric/demo/pkg/model"
)

var sampleItems = []model.Item{
	{ID: 1, Name: "Item 1", Description: "First item from backend"},
	{ID: 2, Name: "Item 2", Description: "Second item from backend"},
	{ID: 3, Name: "Item 3", Description: "Third item from backend"},
}

// Data отдает фиксированный набор элементов (копию, чтобы набор нельзя было изменить снаружи)
func (s *service) Data(ctx context.Context) (out model.DataOut, err error) {
	out.Data = make([]model.Item, len(sampleItems))
	copy(out.Data, sampleItems)

	return out, err
}
