package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/netauto/cvpctl/internal/model"
)

func (c *Client) GetTask(ctx context.Context, taskID string) (*model.Task, error) {
	var t taskJSON
	q := url.Values{"taskId": {taskID}}
	if err := c.call(ctx, http.MethodGet, "task/getTaskById.do", q, nil, &t); err != nil {
		return nil, fmt.Errorf("could not get task %s: %w", taskID, err)
	}

	if t.WorkOrderID == "" {
		return nil, fmt.Errorf("task %s: %w", taskID, model.ErrNotFound)
	}

	m := t.toModel()
	return &m, nil
}

// GetTaskStatus satisfies task.StatusGetter.
func (c *Client) GetTaskStatus(ctx context.Context, taskID string) (model.TaskStatus, error) {
	t, err := c.GetTask(ctx, taskID)
	if err != nil {
		return "", err
	}

	return t.Status, nil
}

func (c *Client) GetPendingTasks(ctx context.Context) ([]model.Task, error) {
	var ts taskListJSON
	q := url.Values{
		"queryparam": {string(model.TaskStatusPending)},
		"startIndex": {"0"},
		"endIndex":   {"0"},
	}
	if err := c.call(ctx, http.MethodGet, "task/getTasks.do", q, nil, &ts); err != nil {
		return nil, fmt.Errorf("could not get pending tasks: %w", err)
	}

	res := make([]model.Task, 0, len(ts.Data))
	for _, t := range ts.Data {
		res = append(res, t.toModel())
	}

	return res, nil
}

func (c *Client) ExecuteTask(ctx context.Context, taskID string) error {
	body := executeTaskJSON{Data: []string{taskID}}
	if err := c.call(ctx, http.MethodPost, "task/executeTask.do", nil, body, nil); err != nil {
		return fmt.Errorf("could not execute task %s: %w", taskID, err)
	}

	return nil
}
