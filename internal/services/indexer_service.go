package services

import (
	"context"
	"fmt"
	"sync"

	apperrors "github.com/modx/ai-service/internal/errors"
	"github.com/modx/ai-service/internal/kafka"
	"github.com/modx/ai-service/internal/knowledge"
	"github.com/modx/ai-service/internal/logger"
	"github.com/modx/ai-service/internal/metrics"
	"github.com/modx/ai-service/internal/repository"
	"go.uber.org/zap"
)

// SyncSummary 一次增量同步的结果统计
type SyncSummary struct {
	ProjectsIndexed int `json:"projects_indexed"`
	UsersIndexed    int `json:"users_indexed"`
}

// String 渲染为RPC响应用的状态文本
func (s *SyncSummary) String() string {
	return fmt.Sprintf("Indexed %d projects and %d users.", s.ProjectsIndexed, s.UsersIndexed)
}

// IndexerService 增量索引编排器
// 每个源表一个互斥锁：同一源表的并发同步串行执行，防止两批重叠的
// upsert相互竞争后各自推进indexed_at水位
type IndexerService struct {
	repo      repository.SourceRepository
	embedder  knowledge.Embedder
	store     knowledge.VectorStore
	batchSize int

	projectMu sync.Mutex
	userMu    sync.Mutex
}

// NewIndexerService 创建增量索引编排器
func NewIndexerService(repo repository.SourceRepository, embedder knowledge.Embedder, store knowledge.VectorStore, batchSize int) *IndexerService {
	if batchSize <= 0 {
		batchSize = 64
	}
	return &IndexerService{
		repo:      repo,
		embedder:  embedder,
		store:     store,
		batchSize: batchSize,
	}
}

// RunIncrementalSync 对所有被监听的源表执行一次增量同步
// 每个源表内步骤严格有序：查询待索引行 → 合成文档 → 批量embedding →
// 批量upsert → 仅在upsert成功后推进水位。embedding或upsert失败时
// 水位不动，下个周期重新选中同一批记录（at-least-once）
func (s *IndexerService) RunIncrementalSync(ctx context.Context) (*SyncSummary, error) {
	summary := &SyncSummary{}

	projectCount, err := s.syncProjects(ctx)
	if err != nil {
		return nil, err
	}
	summary.ProjectsIndexed = projectCount

	userCount, err := s.syncUsers(ctx)
	if err != nil {
		return nil, err
	}
	summary.UsersIndexed = userCount

	logger.Info("Incremental sync completed",
		zap.Int("projects_indexed", summary.ProjectsIndexed),
		zap.Int("users_indexed", summary.UsersIndexed))

	s.publishSyncEvent(summary)
	return summary, nil
}

func (s *IndexerService) syncProjects(ctx context.Context) (int, error) {
	s.projectMu.Lock()
	defer s.projectMu.Unlock()

	rows, err := s.repo.ListPendingProjects(ctx)
	if err != nil {
		metrics.SyncFailures.WithLabelValues("list").Inc()
		return 0, apperrors.NewDatabaseError("failed to list pending projects", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	docs := make([]Document, len(rows))
	ids := make([]uint, len(rows))
	for i, row := range rows {
		docs[i] = SynthesizeProject(row)
		ids[i] = row.ID
	}

	indexed := 0
	for start := 0; start < len(docs); start += s.batchSize {
		end := start + s.batchSize
		if end > len(docs) {
			end = len(docs)
		}
		if err := s.indexBatch(ctx, docs[start:end], func(c context.Context) error {
			return s.repo.MarkProjectsIndexed(c, ids[start:end])
		}); err != nil {
			return indexed, err
		}
		indexed += end - start
		metrics.DocumentsIndexed.WithLabelValues(DocTypeProject).Add(float64(end - start))
	}
	return indexed, nil
}

func (s *IndexerService) syncUsers(ctx context.Context) (int, error) {
	s.userMu.Lock()
	defer s.userMu.Unlock()

	rows, err := s.repo.ListPendingUsers(ctx)
	if err != nil {
		metrics.SyncFailures.WithLabelValues("list").Inc()
		return 0, apperrors.NewDatabaseError("failed to list pending users", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	docs := make([]Document, len(rows))
	ids := make([]uint, len(rows))
	for i, row := range rows {
		docs[i] = SynthesizeUser(row)
		ids[i] = row.ID
	}

	indexed := 0
	for start := 0; start < len(docs); start += s.batchSize {
		end := start + s.batchSize
		if end > len(docs) {
			end = len(docs)
		}
		if err := s.indexBatch(ctx, docs[start:end], func(c context.Context) error {
			return s.repo.MarkUsersIndexed(c, ids[start:end])
		}); err != nil {
			return indexed, err
		}
		indexed += end - start
		metrics.DocumentsIndexed.WithLabelValues(DocTypeUser).Add(float64(end - start))
	}
	return indexed, nil
}

// indexBatch 对一批文档执行embedding → upsert → 水位推进
// markIndexed只在upsert成功后调用
func (s *IndexerService) indexBatch(ctx context.Context, docs []Document, markIndexed func(context.Context) error) error {
	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Text
	}

	embeddings, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		metrics.SyncFailures.WithLabelValues("embed").Inc()
		return apperrors.NewEmbeddingError("failed to embed document batch", err)
	}
	if len(embeddings) != len(docs) {
		metrics.SyncFailures.WithLabelValues("embed").Inc()
		return apperrors.NewEmbeddingError(
			fmt.Sprintf("embedder returned %d vectors for %d texts", len(embeddings), len(docs)), nil)
	}

	entries := make([]knowledge.IndexEntry, len(docs))
	for i, doc := range docs {
		entries[i] = knowledge.IndexEntry{
			DocID:     doc.DocID,
			Embedding: embeddings[i],
			Document:  doc.Text,
			DocType:   doc.DocType(),
		}
	}

	if err := s.store.Upsert(ctx, entries); err != nil {
		metrics.SyncFailures.WithLabelValues("upsert").Inc()
		return apperrors.NewVectorStoreError("failed to upsert document batch", err)
	}

	if err := markIndexed(ctx); err != nil {
		// upsert已成功但水位未推进：下个周期会重索引这批记录，
		// 重复upsert是幂等的，不丢数据
		metrics.SyncFailures.WithLabelValues("mark").Inc()
		return apperrors.NewDatabaseError("failed to advance indexed_at watermark", err)
	}

	return nil
}

// DeleteDocument 从向量库删除文档（上游记录删除时触发的尽力而为清理）
func (s *IndexerService) DeleteDocument(ctx context.Context, docID string) knowledge.DeleteResult {
	result := s.store.DeleteByID(ctx, docID)
	if result.Confirmed {
		s.publishDeleteEvent(docID)
	}
	return result
}

func (s *IndexerService) publishSyncEvent(summary *SyncSummary) {
	producer := kafka.GetProducer()
	if producer == nil {
		return
	}
	if err := producer.PublishIndexEvent(&kafka.IndexEvent{
		Type:            kafka.EventSyncCompleted,
		ProjectsIndexed: summary.ProjectsIndexed,
		UsersIndexed:    summary.UsersIndexed,
	}); err != nil {
		logger.Warn("Failed to publish sync event", zap.Error(err))
	}
}

func (s *IndexerService) publishDeleteEvent(docID string) {
	producer := kafka.GetProducer()
	if producer == nil {
		return
	}
	if err := producer.PublishIndexEvent(&kafka.IndexEvent{
		Type:  kafka.EventDocumentDeleted,
		DocID: docID,
	}); err != nil {
		logger.Warn("Failed to publish delete event", zap.Error(err))
	}
}
