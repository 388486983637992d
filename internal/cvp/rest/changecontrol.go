package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/netauto/cvpctl/internal/model"
)

func (c *Client) CreateChangeControl(ctx context.Context, cc model.ChangeControl) (*model.ChangeControlResult, error) {
	var resp changeControlRespJSON
	body := newChangeControlJSON(cc)
	if err := c.call(ctx, http.MethodPost, "changeControl/addOrUpdateChangeControl.do", nil, body, &resp); err != nil {
		return nil, fmt.Errorf("could not create change control %q: %w", cc.Name, err)
	}

	return &model.ChangeControlResult{
		ID:     string(resp.CcID),
		Status: resp.Data,
	}, nil
}
