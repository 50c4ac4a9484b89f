package knowledge

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/milvus-io/milvus-sdk-go/v2/client"
	"github.com/milvus-io/milvus-sdk-go/v2/entity"
	"github.com/modx/ai-service/internal/logger"
	"go.uber.org/zap"
)

// MilvusOptions Milvus客户端配置
type MilvusOptions struct {
	Address    string
	Username   string
	Password   string
	Collection string
	VectorSize int
	Distance   string
	Database   string
	UseTLS     bool
	Timeout    time.Duration
}

type milvusVectorStore struct {
	milvusClient client.Client
	collection   string
	vectorSize   int
	distance     string

	ensureOnce sync.Once
	ensureErr  error
}

// NewMilvusVectorStore 创建Milvus向量存储
func NewMilvusVectorStore(opts MilvusOptions) (VectorStore, error) {
	if opts.Address == "" {
		opts.Address = "localhost:19530"
	}
	if opts.Collection == "" {
		opts.Collection = "modx_knowledge_base"
	}
	if opts.VectorSize == 0 {
		opts.VectorSize = 384
	}
	if opts.Distance == "" {
		opts.Distance = "COSINE"
	}
	if opts.Database == "" {
		opts.Database = "default"
	}

	milvusClient, err := client.NewClient(
		context.Background(),
		client.Config{
			Address:       opts.Address,
			DBName:        opts.Database,
			Username:      opts.Username,
			Password:      opts.Password,
			EnableTLSAuth: opts.UseTLS,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create milvus client: %w", err)
	}

	return &milvusVectorStore{
		milvusClient: milvusClient,
		collection:   opts.Collection,
		vectorSize:   opts.VectorSize,
		distance:     formatMilvusDistance(opts.Distance),
	}, nil
}

func formatMilvusDistance(value string) string {
	switch strings.ToUpper(value) {
	case "DOT", "IP", "INNER_PRODUCT":
		return "IP"
	case "L2", "EUCLIDEAN":
		return "L2"
	default:
		return "COSINE"
	}
}

func (s *milvusVectorStore) ensureCollection(ctx context.Context) error {
	s.ensureOnce.Do(func() {
		s.ensureErr = s.createCollectionIfMissing(ctx)
	})
	return s.ensureErr
}

func (s *milvusVectorStore) createCollectionIfMissing(ctx context.Context) error {
	hasCollection, err := s.milvusClient.HasCollection(ctx, s.collection)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if !hasCollection {
		schema := &entity.Schema{
			CollectionName: s.collection,
			Description:    "Semantic index over relational source records",
			Fields: []*entity.Field{
				{
					Name:       "doc_id",
					DataType:   entity.FieldTypeVarChar,
					PrimaryKey: true,
					AutoID:     false,
					TypeParams: map[string]string{
						"max_length": "128",
					},
				},
				{
					Name:     "content",
					DataType: entity.FieldTypeVarChar,
					TypeParams: map[string]string{
						"max_length": "65535",
					},
				},
				{
					Name:     "doc_type",
					DataType: entity.FieldTypeVarChar,
					TypeParams: map[string]string{
						"max_length": "64",
					},
				},
				{
					Name:     "vector",
					DataType: entity.FieldTypeFloatVector,
					TypeParams: map[string]string{
						"dim": fmt.Sprintf("%d", s.vectorSize),
					},
				},
			},
		}

		if err := s.milvusClient.CreateCollection(ctx, schema, entity.DefaultShardNumber); err != nil {
			return fmt.Errorf("failed to create collection: %w", err)
		}

		index, indexErr := buildVectorIndex(entity.MetricType(s.distance))
		if indexErr != nil {
			return fmt.Errorf("failed to create index: %w", indexErr)
		}

		if err := s.milvusClient.CreateIndex(ctx, s.collection, "vector", index, false); err != nil {
			logger.Warn("Failed to create vector index", zap.String("collection", s.collection), zap.Error(err))
		}
	}

	if err := s.milvusClient.LoadCollection(ctx, s.collection, false); err != nil {
		return fmt.Errorf("failed to load collection: %w", err)
	}

	return nil
}

// buildVectorIndex HNSW优先，构建失败时回退IVF_FLAT
func buildVectorIndex(metricType entity.MetricType) (entity.Index, error) {
	index, err := entity.NewIndexHNSW(metricType, 8, 64)
	if err == nil {
		return index, nil
	}
	return entity.NewIndexIvfFlat(metricType, 128)
}

func (s *milvusVectorStore) Upsert(ctx context.Context, entries []IndexEntry) error {
	// 空批不发起远程调用
	if len(entries) == 0 {
		return nil
	}

	docIDs := make([]string, 0, len(entries))
	contents := make([]string, 0, len(entries))
	docTypes := make([]string, 0, len(entries))
	vectors := make([][]float32, 0, len(entries))

	for _, e := range entries {
		if len(e.Embedding) == 0 {
			return fmt.Errorf("embedding for %s is empty", e.DocID)
		}
		// 维度不匹配直接报错，不做填充或截断
		if len(e.Embedding) != s.vectorSize {
			return fmt.Errorf("embedding for %s has dimension %d, collection expects %d",
				e.DocID, len(e.Embedding), s.vectorSize)
		}
		docIDs = append(docIDs, e.DocID)
		contents = append(contents, e.Document)
		docTypes = append(docTypes, e.DocType)
		vectors = append(vectors, e.Embedding)
	}

	if err := s.ensureCollection(ctx); err != nil {
		return err
	}

	idColumn := entity.NewColumnVarChar("doc_id", docIDs)
	contentColumn := entity.NewColumnVarChar("content", contents)
	docTypeColumn := entity.NewColumnVarChar("doc_type", docTypes)
	vectorColumn := entity.NewColumnFloatVector("vector", s.vectorSize, vectors)

	if _, err := s.milvusClient.Upsert(ctx, s.collection, "", idColumn, contentColumn, docTypeColumn, vectorColumn); err != nil {
		return fmt.Errorf("milvus upsert failed: %w", err)
	}

	// 刷新失败不影响写入，只记录警告
	if err := s.milvusClient.Flush(ctx, s.collection, false); err != nil {
		logger.Warn("Failed to flush collection", zap.String("collection", s.collection), zap.Error(err))
	}

	return nil
}

func (s *milvusVectorStore) Query(ctx context.Context, embedding []float32, limit int, docType string) ([]string, error) {
	matches, err := s.QueryEntries(ctx, embedding, limit, docType)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.DocID)
	}
	return ids, nil
}

func (s *milvusVectorStore) QueryEntries(ctx context.Context, embedding []float32, limit int, docType string) ([]SearchMatch, error) {
	if len(embedding) == 0 {
		return nil, nil
	}
	if err := s.ensureCollection(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}

	expr := buildDocTypeExpr(docType)

	sp, _ := entity.NewIndexHNSWSearchParam(64)
	queryVector := entity.FloatVector(embedding)
	searchResults, err := s.milvusClient.Search(
		ctx,
		s.collection,
		[]string{},
		expr,
		[]string{"content", "doc_type"},
		[]entity.Vector{queryVector},
		"vector",
		entity.MetricType(s.distance),
		limit,
		sp,
	)
	if err != nil {
		return nil, fmt.Errorf("milvus search failed: %w", err)
	}

	if len(searchResults) == 0 {
		return []SearchMatch{}, nil
	}
	result := searchResults[0]
	if result.Err != nil {
		return nil, fmt.Errorf("milvus search error: %w", result.Err)
	}
	if result.ResultCount == 0 {
		return []SearchMatch{}, nil
	}

	idCol, ok := result.IDs.(*entity.ColumnVarChar)
	if !ok {
		return nil, fmt.Errorf("unexpected primary key column type %T", result.IDs)
	}
	ids := idCol.Data()

	var contents, docTypes []string
	for _, field := range result.Fields {
		switch field.Name() {
		case "content":
			if col, ok := field.(*entity.ColumnVarChar); ok {
				contents = col.Data()
			}
		case "doc_type":
			if col, ok := field.(*entity.ColumnVarChar); ok {
				docTypes = col.Data()
			}
		}
	}

	matches := make([]SearchMatch, 0, result.ResultCount)
	for i := 0; i < result.ResultCount && i < len(ids); i++ {
		match := SearchMatch{DocID: ids[i]}
		if i < len(contents) {
			match.Content = contents[i]
		}
		if i < len(docTypes) {
			match.DocType = docTypes[i]
		}
		if i < len(result.Scores) {
			match.Score = float64(result.Scores[i])
		}
		matches = append(matches, match)
	}
	return matches, nil
}

// buildDocTypeExpr 构建doc_type元数据过滤表达式，空过滤返回空表达式
func buildDocTypeExpr(docType string) string {
	if docType == "" {
		return ""
	}
	return fmt.Sprintf(`doc_type == "%s"`, docType)
}

func (s *milvusVectorStore) DeleteByID(ctx context.Context, docID string) DeleteResult {
	if err := s.ensureCollection(ctx); err != nil {
		logger.Error("Failed to prepare collection for delete", zap.String("doc_id", docID), zap.Error(err))
		return DeleteResult{Confirmed: false, Err: err}
	}

	expr := fmt.Sprintf(`doc_id in ["%s"]`, docID)
	if err := s.milvusClient.Delete(ctx, s.collection, "", expr); err != nil {
		logger.Error("Failed to delete document from vector store", zap.String("doc_id", docID), zap.Error(err))
		return DeleteResult{Confirmed: false, Err: fmt.Errorf("milvus delete failed: %w", err)}
	}

	if err := s.milvusClient.Flush(ctx, s.collection, false); err != nil {
		logger.Warn("Failed to flush after delete", zap.String("doc_id", docID), zap.Error(err))
	}

	logger.Info("Deleted document from vector store", zap.String("doc_id", docID))
	return DeleteResult{Confirmed: true}
}

func (s *milvusVectorStore) Ready() bool {
	if s.milvusClient == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := s.milvusClient.ListCollections(ctx)
	return err == nil
}
