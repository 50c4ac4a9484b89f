package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/modx/ai-service/internal/errors"
	"github.com/modx/ai-service/internal/knowledge"
	"github.com/modx/ai-service/internal/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RetrievalService 相似度检索服务
// k与doc_type过滤是调用方策略，这里只做通用检索
type RetrievalService struct {
	embedder knowledge.Embedder
	store    knowledge.VectorStore
	cache    *redis.Client
	cacheTTL time.Duration
}

// NewRetrievalService 创建检索服务，cache可为nil（关闭查询向量缓存）
func NewRetrievalService(embedder knowledge.Embedder, store knowledge.VectorStore, cache *redis.Client, cacheTTL time.Duration) *RetrievalService {
	return &RetrievalService{
		embedder: embedder,
		store:    store,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// FindSimilar 按相似度返回docID列表
func (s *RetrievalService) FindSimilar(ctx context.Context, queryText string, k int, docType string) ([]string, error) {
	embedding, err := s.embedQuery(ctx, queryText)
	if err != nil {
		return nil, err
	}

	ids, err := s.store.Query(ctx, embedding, k, docType)
	if err != nil {
		return nil, apperrors.NewVectorStoreError("similarity query failed", err)
	}
	return ids, nil
}

// FindContext 返回含原文的命中，供聊天上下文拼接
func (s *RetrievalService) FindContext(ctx context.Context, queryText string, k int) ([]knowledge.SearchMatch, error) {
	embedding, err := s.embedQuery(ctx, queryText)
	if err != nil {
		return nil, err
	}

	matches, err := s.store.QueryEntries(ctx, embedding, k, "")
	if err != nil {
		return nil, apperrors.NewVectorStoreError("similarity query failed", err)
	}
	return matches, nil
}

// embedQuery 将查询文本作为单元素批做embedding，命中缓存时跳过远程调用
func (s *RetrievalService) embedQuery(ctx context.Context, queryText string) ([]float32, error) {
	if strings.TrimSpace(queryText) == "" {
		return nil, apperrors.NewInvalidInputError("query text is empty")
	}

	if cached, ok := s.cacheGet(ctx, queryText); ok {
		return cached, nil
	}

	embeddings, err := s.embedder.EmbedBatch(ctx, []string{queryText})
	if err != nil {
		return nil, apperrors.NewEmbeddingError("failed to embed query", err)
	}
	if len(embeddings) != 1 {
		return nil, apperrors.NewEmbeddingError(
			fmt.Sprintf("embedder returned %d vectors for single query", len(embeddings)), nil)
	}

	s.cacheSet(ctx, queryText, embeddings[0])
	return embeddings[0], nil
}

func (s *RetrievalService) cacheGet(ctx context.Context, queryText string) ([]float32, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, err := s.cache.Get(ctx, queryEmbeddingKey(queryText)).Bytes()
	if err != nil {
		return nil, false
	}
	var embedding []float32
	if err := json.Unmarshal(data, &embedding); err != nil {
		return nil, false
	}
	return embedding, true
}

func (s *RetrievalService) cacheSet(ctx context.Context, queryText string, embedding []float32) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(embedding)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, queryEmbeddingKey(queryText), data, s.cacheTTL).Err(); err != nil {
		logger.Debug("Failed to cache query embedding", zap.Error(err))
	}
}

func queryEmbeddingKey(queryText string) string {
	sum := sha256.Sum256([]byte(queryText))
	return "query_embedding:" + hex.EncodeToString(sum[:])
}
