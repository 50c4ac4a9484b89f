package knowledge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultHFBaseURL = "https://api-inference.huggingface.co/pipeline/feature-extraction"

// HuggingFace模型维度映射
var hfEmbeddingDimensions = map[string]int{
	"sentence-transformers/all-MiniLM-L6-v2":  384,
	"sentence-transformers/all-mpnet-base-v2": 768,
	"BAAI/bge-small-en-v1.5":                  384,
}

// HuggingFaceEmbedder 使用HuggingFace Inference API的feature-extraction端点
type HuggingFaceEmbedder struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	dimensions int
}

// NewHuggingFaceEmbedder 创建HuggingFace嵌入向量生成器
func NewHuggingFaceEmbedder(apiKey, model, baseURL string) Embedder {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return &NoopEmbedder{}
	}
	if model == "" {
		model = "sentence-transformers/all-MiniLM-L6-v2"
	}
	if baseURL == "" {
		baseURL = defaultHFBaseURL
	}

	dims, ok := hfEmbeddingDimensions[model]
	if !ok {
		dims = 384
	}

	return &HuggingFaceEmbedder{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		dimensions: dims,
	}
}

// EmbedBatch 逐条调用feature-extraction，任一失败则整批失败
func (e *HuggingFaceEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	results := make([][]float32, len(texts))
	for i, text := range texts {
		embedding, err := e.embedOne(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("embedding text %d/%d failed: %w", i+1, len(texts), err)
		}
		results[i] = embedding
	}
	return results, nil
}

func (e *HuggingFaceEmbedder) embedOne(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("text is empty")
	}

	payload, err := json.Marshal(map[string]interface{}{"inputs": text})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s", e.baseURL, e.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+e.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference api returned %d: %s", resp.StatusCode, string(body))
	}

	return normalizeEmbedding(body)
}

// normalizeEmbedding 归一化feature-extraction的两种响应形态
// 短文本返回扁平向量[0.1, ...]，批模式返回单元素嵌套[[0.1, ...]]
// 调用方始终拿到固定维度的扁平向量
func normalizeEmbedding(data []byte) ([]float32, error) {
	var flat []float32
	if err := json.Unmarshal(data, &flat); err == nil {
		if len(flat) == 0 {
			return nil, errors.New("embedding response empty")
		}
		return flat, nil
	}

	var nested [][]float32
	if err := json.Unmarshal(data, &nested); err == nil {
		if len(nested) == 0 || len(nested[0]) == 0 {
			return nil, errors.New("embedding response empty")
		}
		return nested[0], nil
	}

	return nil, errors.New("unexpected embedding response shape")
}

func (e *HuggingFaceEmbedder) Dimensions() int {
	return e.dimensions
}

func (e *HuggingFaceEmbedder) Ready() bool {
	return e.httpClient != nil && e.apiKey != ""
}
