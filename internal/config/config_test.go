package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	require.NoError(t, LoadConfig())
	cfg := GetAppConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "huggingface", cfg.Embedding.Provider)
	assert.Equal(t, "modx_knowledge_base", cfg.VectorStore.Milvus.Collection)
	assert.Equal(t, 384, cfg.VectorStore.Milvus.VectorSize)
	assert.Equal(t, 64, cfg.Indexing.BatchSize)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.ChatModel)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("GRPC_PORT", "6000")
	t.Setenv("REDIS_HOST", "redis.internal")
	t.Setenv("EMBEDDING_MODEL", "sentence-transformers/all-mpnet-base-v2")

	require.NoError(t, LoadConfig())
	cfg := GetAppConfig()

	assert.Equal(t, "6000", cfg.Server.GRPCPort)
	// REDIS_HOST存在时自动启用缓存
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis.internal", cfg.Redis.Host)
	assert.Equal(t, "sentence-transformers/all-mpnet-base-v2", cfg.Embedding.Model)
}
