// Package oracle reaches the external scoring-model server over HTTP.
// The model is opaque to this service: features in, one score per
// catalog row out.
package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/tiketbola/matchrec/internal/config"
	"github.com/tiketbola/matchrec/internal/recommend"
)

const defaultTimeout = 5 * time.Second

// Client implements recommend.ScoringOracle against a model server.
//
// The first failure of any kind (transport, status, decode) trips a
// permanent degrade: Available reports false for the rest of the process
// lifetime and no further scoring calls are attempted. This mirrors a
// load-time model check without retry storms against a broken model.
type Client struct {
	baseURL  string
	httpc    *http.Client
	degraded atomic.Bool
}

func NewClient(conf *config.OracleConfig) *Client {
	timeout := defaultTimeout
	if conf.TimeoutSeconds > 0 {
		timeout = time.Duration(conf.TimeoutSeconds) * time.Second
	}

	return &Client{
		baseURL: conf.BaseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

func (c *Client) Available() bool {
	return !c.degraded.Load()
}

type scoreResponse struct {
	Scores []float64 `json:"scores"`
}

// Score posts the feature to the model server and returns its score
// vector in catalog order.
func (c *Client) Score(ctx context.Context, feature recommend.Feature) ([]float64, error) {
	body, err := json.Marshal(feature)
	if err != nil {
		return nil, c.degrade(fmt.Errorf("json.Marshal -> %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/score", bytes.NewReader(body))
	if err != nil {
		return nil, c.degrade(fmt.Errorf("http.NewRequestWithContext -> %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, c.degrade(fmt.Errorf("c.httpc.Do -> %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.degrade(fmt.Errorf("model server returned status %v", resp.StatusCode))
	}

	var decoded scoreResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, c.degrade(fmt.Errorf("json.Decode -> %w", err))
	}

	return decoded.Scores, nil
}

func (c *Client) degrade(err error) error {
	if c.degraded.CompareAndSwap(false, true) {
		zap.L().Error("scoring oracle degraded for process lifetime", zap.Error(err))
	}
	return err
}
