package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DocumentsIndexed 按文档类型统计成功索引的文档数
var DocumentsIndexed = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "modx_ai",
	Name:      "documents_indexed_total",
	Help:      "Number of documents successfully upserted into the vector index.",
}, []string{"doc_type"})

// SyncFailures 按失败阶段统计增量同步失败次数
var SyncFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "modx_ai",
	Name:      "sync_failures_total",
	Help:      "Number of incremental sync failures by stage.",
}, []string{"stage"})

// SimilarityQueries 按RPC操作统计相似度查询次数
var SimilarityQueries = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "modx_ai",
	Name:      "similarity_queries_total",
	Help:      "Number of similarity queries served, labelled by operation.",
}, []string{"operation"})
