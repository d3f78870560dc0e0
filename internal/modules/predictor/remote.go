// README: HTTP client for a model served by a separate inference service.
package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Remote posts rows to <endpoint>/predict and expects one prediction per row.
type Remote struct {
	endpoint string
	width    int
	client   *http.Client
}

func NewRemote(endpoint string, width int, client *http.Client) *Remote {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Remote{
		endpoint: strings.TrimRight(endpoint, "/"),
		width:    width,
		client:   client,
	}
}

type remoteRequest struct {
	Instances [][]float64 `json:"instances"`
}

type remoteResponse struct {
	Predictions []float64 `json:"predictions"`
}

func (r *Remote) Predict(ctx context.Context, rows [][]float64) ([]float64, error) {
	if err := checkRows(rows, r.width); err != nil {
		return nil, err
	}
	body, err := json.Marshal(remoteRequest{Instances: rows})
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: send request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code: %d", ErrUnavailable, resp.StatusCode)
	}

	var out remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	if err := checkOutputs(out.Predictions, len(rows)); err != nil {
		return nil, err
	}
	return out.Predictions, nil
}
