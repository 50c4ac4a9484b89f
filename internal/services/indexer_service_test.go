package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/modx/ai-service/internal/knowledge"
	"github.com/modx/ai-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	mu       sync.Mutex
	projects []models.PendingProject
	users    []models.PendingUser

	listErr error
	markErr error

	markedProjects [][]uint
	markedUsers    [][]uint

	inFlight    int32
	maxInFlight int32
	listDelay   time.Duration
}

func (r *fakeRepo) trackConcurrency() func() {
	cur := atomic.AddInt32(&r.inFlight, 1)
	for {
		max := atomic.LoadInt32(&r.maxInFlight)
		if cur <= max || atomic.CompareAndSwapInt32(&r.maxInFlight, max, cur) {
			break
		}
	}
	if r.listDelay > 0 {
		time.Sleep(r.listDelay)
	}
	return func() { atomic.AddInt32(&r.inFlight, -1) }
}

func (r *fakeRepo) ListPendingProjects(ctx context.Context) ([]models.PendingProject, error) {
	defer r.trackConcurrency()()
	if r.listErr != nil {
		return nil, r.listErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.projects
	r.projects = nil
	return out, nil
}

func (r *fakeRepo) ListPendingUsers(ctx context.Context) ([]models.PendingUser, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.users
	r.users = nil
	return out, nil
}

func (r *fakeRepo) MarkProjectsIndexed(ctx context.Context, ids []uint) error {
	if r.markErr != nil {
		return r.markErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.markedProjects = append(r.markedProjects, append([]uint(nil), ids...))
	return nil
}

func (r *fakeRepo) MarkUsersIndexed(ctx context.Context, ids []uint) error {
	if r.markErr != nil {
		return r.markErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.markedUsers = append(r.markedUsers, append([]uint(nil), ids...))
	return nil
}

// fakeEmbedder 按文本序号生成可辨识的向量，方便断言文档和向量的配对关系
type fakeEmbedder struct {
	mu      sync.Mutex
	batches [][]string
	err     error
	// 返回数量与输入不一致，模拟provider异常
	shortchange bool
}

func (e *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	e.mu.Lock()
	e.batches = append(e.batches, append([]string(nil), texts...))
	e.mu.Unlock()
	if e.err != nil {
		return nil, e.err
	}
	n := len(texts)
	if e.shortchange && n > 0 {
		n--
	}
	out := make([][]float32, n)
	for i := 0; i < n; i++ {
		out[i] = []float32{float32(len(texts[i])), float32(i)}
	}
	return out, nil
}

func (e *fakeEmbedder) Dimensions() int { return 2 }
func (e *fakeEmbedder) Ready() bool     { return true }

type fakeStore struct {
	mu        sync.Mutex
	upserts   [][]knowledge.IndexEntry
	upsertErr error
	deleted   []string
	deleteRes knowledge.DeleteResult
}

func (s *fakeStore) Upsert(ctx context.Context, entries []knowledge.IndexEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.upserts = append(s.upserts, append([]knowledge.IndexEntry(nil), entries...))
	return nil
}

func (s *fakeStore) Query(ctx context.Context, embedding []float32, k int, docType string) ([]string, error) {
	return nil, nil
}

func (s *fakeStore) QueryEntries(ctx context.Context, embedding []float32, k int, docType string) ([]knowledge.SearchMatch, error) {
	return nil, nil
}

func (s *fakeStore) DeleteByID(ctx context.Context, docID string) knowledge.DeleteResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, docID)
	return s.deleteRes
}

func (s *fakeStore) Ready() bool { return true }

func pendingProjects(n int) []models.PendingProject {
	rows := make([]models.PendingProject, n)
	for i := range rows {
		rows[i] = models.PendingProject{
			ID:         uint(i + 1),
			Title:      fmt.Sprintf("Project %d", i+1),
			LeaderName: "Lead",
		}
	}
	return rows
}

func TestRunIncrementalSync(t *testing.T) {
	repo := &fakeRepo{
		projects: pendingProjects(2),
		users: []models.PendingUser{
			{ID: 9, FullName: "Mia"},
		},
	}
	store := &fakeStore{}
	svc := NewIndexerService(repo, &fakeEmbedder{}, store, 64)

	summary, err := svc.RunIncrementalSync(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, summary.ProjectsIndexed)
	assert.Equal(t, 1, summary.UsersIndexed)
	assert.Equal(t, "Indexed 2 projects and 1 users.", summary.String())

	require.Len(t, store.upserts, 2)
	assert.Equal(t, "project_1", store.upserts[0][0].DocID)
	assert.Equal(t, "project_2", store.upserts[0][1].DocID)
	assert.Equal(t, DocTypeProject, store.upserts[0][0].DocType)
	assert.Equal(t, "user_9", store.upserts[1][0].DocID)
	assert.Equal(t, DocTypeUser, store.upserts[1][0].DocType)

	require.Len(t, repo.markedProjects, 1)
	assert.Equal(t, []uint{1, 2}, repo.markedProjects[0])
	require.Len(t, repo.markedUsers, 1)
	assert.Equal(t, []uint{9}, repo.markedUsers[0])
}

func TestRunIncrementalSyncNothingPending(t *testing.T) {
	repo := &fakeRepo{}
	embedder := &fakeEmbedder{}
	store := &fakeStore{}
	svc := NewIndexerService(repo, embedder, store, 64)

	summary, err := svc.RunIncrementalSync(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, summary.ProjectsIndexed)
	assert.Equal(t, 0, summary.UsersIndexed)
	// 没有待索引记录时不做任何远程调用
	assert.Empty(t, embedder.batches)
	assert.Empty(t, store.upserts)
	assert.Empty(t, repo.markedProjects)
	assert.Empty(t, repo.markedUsers)
}

func TestRunIncrementalSyncBatching(t *testing.T) {
	repo := &fakeRepo{projects: pendingProjects(5)}
	embedder := &fakeEmbedder{}
	store := &fakeStore{}
	svc := NewIndexerService(repo, embedder, store, 2)

	summary, err := svc.RunIncrementalSync(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, summary.ProjectsIndexed)
	require.Len(t, store.upserts, 3)
	assert.Len(t, store.upserts[0], 2)
	assert.Len(t, store.upserts[1], 2)
	assert.Len(t, store.upserts[2], 1)
	require.Len(t, repo.markedProjects, 3)
	assert.Equal(t, []uint{1, 2}, repo.markedProjects[0])
	assert.Equal(t, []uint{3, 4}, repo.markedProjects[1])
	assert.Equal(t, []uint{5}, repo.markedProjects[2])
}

func TestRunIncrementalSyncPreservesDocVectorPairing(t *testing.T) {
	repo := &fakeRepo{projects: pendingProjects(3)}
	embedder := &fakeEmbedder{}
	store := &fakeStore{}
	svc := NewIndexerService(repo, embedder, store, 64)

	_, err := svc.RunIncrementalSync(context.Background())
	require.NoError(t, err)

	require.Len(t, store.upserts, 1)
	for i, entry := range store.upserts[0] {
		// fakeEmbedder把批内序号写进向量第二维
		assert.Equal(t, float32(i), entry.Embedding[1], "entry %d got a vector from the wrong position", i)
		assert.Equal(t, float32(len(entry.Document)), entry.Embedding[0])
	}
}

func TestRunIncrementalSyncUpsertFailureKeepsWatermark(t *testing.T) {
	repo := &fakeRepo{projects: pendingProjects(2)}
	store := &fakeStore{upsertErr: errors.New("milvus unavailable")}
	svc := NewIndexerService(repo, &fakeEmbedder{}, store, 64)

	_, err := svc.RunIncrementalSync(context.Background())

	require.Error(t, err)
	// upsert失败时水位不推进，下个周期重试同一批
	assert.Empty(t, repo.markedProjects)
}

func TestRunIncrementalSyncEmbedFailureKeepsWatermark(t *testing.T) {
	repo := &fakeRepo{projects: pendingProjects(1)}
	store := &fakeStore{}
	svc := NewIndexerService(repo, &fakeEmbedder{err: errors.New("provider 503")}, store, 64)

	_, err := svc.RunIncrementalSync(context.Background())

	require.Error(t, err)
	assert.Empty(t, store.upserts)
	assert.Empty(t, repo.markedProjects)
}

func TestRunIncrementalSyncVectorCountMismatch(t *testing.T) {
	repo := &fakeRepo{projects: pendingProjects(3)}
	store := &fakeStore{}
	svc := NewIndexerService(repo, &fakeEmbedder{shortchange: true}, store, 64)

	_, err := svc.RunIncrementalSync(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "vectors")
	assert.Empty(t, store.upserts)
}

func TestRunIncrementalSyncListFailure(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("connection refused")}
	svc := NewIndexerService(repo, &fakeEmbedder{}, &fakeStore{}, 64)

	_, err := svc.RunIncrementalSync(context.Background())

	require.Error(t, err)
}

func TestConcurrentSyncSerialized(t *testing.T) {
	repo := &fakeRepo{projects: pendingProjects(2), listDelay: 20 * time.Millisecond}
	svc := NewIndexerService(repo, &fakeEmbedder{}, &fakeStore{}, 64)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.RunIncrementalSync(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// 同一源表的同步串行执行
	assert.Equal(t, int32(1), repo.maxInFlight)
	// 待索引记录只被消费一次
	require.Len(t, repo.markedProjects, 1)
}

func TestDeleteDocument(t *testing.T) {
	store := &fakeStore{deleteRes: knowledge.DeleteResult{Confirmed: true}}
	svc := NewIndexerService(&fakeRepo{}, &fakeEmbedder{}, store, 64)

	res := svc.DeleteDocument(context.Background(), "project_5")

	assert.True(t, res.Confirmed)
	assert.Equal(t, []string{"project_5"}, store.deleted)
}

func TestDeleteDocumentUnconfirmed(t *testing.T) {
	store := &fakeStore{deleteRes: knowledge.DeleteResult{Confirmed: false, Err: errors.New("timeout")}}
	svc := NewIndexerService(&fakeRepo{}, &fakeEmbedder{}, store, 64)

	res := svc.DeleteDocument(context.Background(), "project_5")

	assert.False(t, res.Confirmed)
	assert.Error(t, res.Err)
}
