package di

import (
	"fmt"
	"time"

	"github.com/modx/ai-service/internal/config"
	"github.com/modx/ai-service/internal/database"
	"github.com/modx/ai-service/internal/knowledge"
	"github.com/modx/ai-service/internal/repository"
	"github.com/modx/ai-service/internal/server"
	"github.com/modx/ai-service/internal/services"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"gorm.io/gorm"
)

// resolveVectorSize 返回向量集合维度
// embedder维度是权威来源，NoopEmbedder等未就绪实现返回0时退回配置值
func resolveVectorSize(configured int, embedder knowledge.Embedder) int {
	if dims := embedder.Dimensions(); dims > 0 {
		return dims
	}
	return configured
}

// RegisterProviders 注册所有依赖提供者
func RegisterProviders(container *dig.Container) error {
	// 注册配置
	if err := container.Provide(func() (*config.Config, error) {
		cfg := config.GetAppConfig()
		if cfg == nil {
			return nil, fmt.Errorf("config not loaded")
		}
		return cfg, nil
	}); err != nil {
		return err
	}

	// 注册数据库
	if err := container.Provide(func() (*gorm.DB, error) {
		if database.DB == nil {
			return nil, fmt.Errorf("database not initialized")
		}
		return database.DB, nil
	}); err != nil {
		return err
	}

	// 注册源记录仓库
	if err := container.Provide(repository.NewSourceRepository); err != nil {
		return err
	}

	// 注册Embedder
	if err := container.Provide(func(cfg *config.Config) knowledge.Embedder {
		switch cfg.Embedding.Provider {
		case "openai":
			return knowledge.NewOpenAIEmbedder(cfg.Embedding.APIKey, cfg.Embedding.Model)
		default:
			return knowledge.NewHuggingFaceEmbedder(cfg.Embedding.APIKey, cfg.Embedding.Model, cfg.Embedding.BaseURL)
		}
	}); err != nil {
		return err
	}

	// 注册向量存储（集合维度跟随embedder，配置值只做兜底）
	if err := container.Provide(func(cfg *config.Config, embedder knowledge.Embedder) (knowledge.VectorStore, error) {
		m := cfg.VectorStore.Milvus
		return knowledge.NewMilvusVectorStore(knowledge.MilvusOptions{
			Address:    m.Address,
			Username:   m.Username,
			Password:   m.Password,
			Collection: m.Collection,
			VectorSize: resolveVectorSize(m.VectorSize, embedder),
			Distance:   m.Distance,
			Database:   m.Database,
			UseTLS:     m.TLS,
		})
	}); err != nil {
		return err
	}

	// 注册检索服务（Redis未启用时缓存为nil）
	if err := container.Provide(func(cfg *config.Config, embedder knowledge.Embedder, store knowledge.VectorStore) *services.RetrievalService {
		var cache *redis.Client
		if cfg.Redis.Enabled {
			cache = database.RedisClient
		}
		ttl := time.Duration(cfg.Redis.TTL) * time.Second
		return services.NewRetrievalService(embedder, store, cache, ttl)
	}); err != nil {
		return err
	}

	// 注册索引编排器
	if err := container.Provide(func(cfg *config.Config, repo repository.SourceRepository, embedder knowledge.Embedder, store knowledge.VectorStore) *services.IndexerService {
		return services.NewIndexerService(repo, embedder, store, cfg.Indexing.BatchSize)
	}); err != nil {
		return err
	}

	// 注册聊天服务
	if err := container.Provide(func(cfg *config.Config, retrieval *services.RetrievalService) *services.ChatService {
		return services.NewChatService(retrieval, cfg.AI.OpenAIAPIKey, cfg.AI.ChatModel, cfg.AI.MaxTokens, cfg.AI.Temperature)
	}); err != nil {
		return err
	}

	// 注册gRPC服务
	if err := container.Provide(server.NewAIServer); err != nil {
		return err
	}

	return nil
}
