package emotion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	analysis "github.com/zhouzirui/samvaad/backend/internal/analysis/emotion"
)

var ErrEmptyPrediction = errors.New("inference endpoint returned no predictions")

// InferenceClient 调用托管的文本分类接口，响应为 [[{"label": ..., "score": ...}, ...]] 或扁平数组
type InferenceClient struct {
	url        string
	token      string
	httpClient *http.Client
}

// NewInferenceClient 创建分类接口客户端，token 非空时作为 Bearer 令牌发送
func NewInferenceClient(url, token string, httpClient *http.Client) *InferenceClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &InferenceClient{url: url, token: token, httpClient: httpClient}
}

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	TopK *int `json:"top_k"`
}

// Classify 实现 analysis.Classifier
func (c *InferenceClient) Classify(ctx context.Context, text string) ([]analysis.Score, error) {
	// top_k=null 返回全部标签
	body, err := json.Marshal(inferenceRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("failed to encode inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read inference response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference endpoint returned %d: %s", resp.StatusCode, bytes.TrimSpace(payload))
	}

	return parsePredictions(payload)
}

func parsePredictions(payload []byte) ([]analysis.Score, error) {
	var nested [][]analysis.Score
	if err := json.Unmarshal(payload, &nested); err == nil {
		if len(nested) == 0 || len(nested[0]) == 0 {
			return nil, ErrEmptyPrediction
		}
		return nested[0], nil
	}

	var flat []analysis.Score
	if err := json.Unmarshal(payload, &flat); err != nil {
		return nil, fmt.Errorf("failed to decode inference response: %w", err)
	}
	if len(flat) == 0 {
		return nil, ErrEmptyPrediction
	}
	return flat, nil
}
