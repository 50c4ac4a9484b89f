package knowledge

import "context"

// IndexEntry 向量库中的一条索引记录，docID唯一
type IndexEntry struct {
	DocID     string
	Embedding []float32
	Document  string
	DocType   string
}

// DeleteResult 删除操作结果
// 删除是尽力而为的清理：Confirmed为true表示已删除或本就不存在，
// false表示因瞬时错误无法确认，Err携带原因
type DeleteResult struct {
	Confirmed bool
	Err       error
}

// SearchMatch 相似度检索命中
type SearchMatch struct {
	DocID   string
	Content string
	DocType string
	Score   float64
}

// VectorStore 向量存储抽象
type VectorStore interface {
	// Upsert 整批写入，按DocID整条替换；空批不发起远程调用
	Upsert(ctx context.Context, entries []IndexEntry) error
	// Query 按相似度降序返回docID，docType非空时按元数据过滤；
	// 匹配不足limit时返回实际数量，不报错
	Query(ctx context.Context, embedding []float32, limit int, docType string) ([]string, error)
	// QueryEntries 同Query，但返回包含原文的完整命中（聊天上下文用）
	QueryEntries(ctx context.Context, embedding []float32, limit int, docType string) ([]SearchMatch, error)
	// DeleteByID 幂等删除，删除不存在的id不算错误
	DeleteByID(ctx context.Context, docID string) DeleteResult
	Ready() bool
}
