package server

import (
	"context"
	"fmt"

	apperrors "github.com/modx/ai-service/internal/errors"
	"github.com/modx/ai-service/internal/logger"
	"github.com/modx/ai-service/internal/metrics"
	"github.com/modx/ai-service/internal/services"
	pb "github.com/modx/ai-service/proto"
	"go.uber.org/zap"
)

// 各RPC的检索策略（k与doc_type过滤是调用方策略，不属于检索服务本身）
const (
	recommendationTopK = 10
	relatedProjectTopK = 6
	searchTopK         = 6
)

// AIServer AIService gRPC实现，纯路由层
type AIServer struct {
	pb.UnimplementedAIServiceServer
	chat      *services.ChatService
	retrieval *services.RetrievalService
	indexer   *services.IndexerService
}

// NewAIServer 创建gRPC服务实例
func NewAIServer(chat *services.ChatService, retrieval *services.RetrievalService, indexer *services.IndexerService) *AIServer {
	return &AIServer{
		chat:      chat,
		retrieval: retrieval,
		indexer:   indexer,
	}
}

// GetChatbotResponse 聊天问答
func (s *AIServer) GetChatbotResponse(ctx context.Context, req *pb.ChatRequest) (*pb.ChatReply, error) {
	logger.Info("Received chatbot query", zap.String("query", req.GetQuery()))

	answer, err := s.chat.ProcessQuery(ctx, req.GetQuery())
	if err != nil {
		logger.Error("Chatbot query failed", zap.Error(err))
		return nil, apperrors.GRPCStatus(err)
	}
	return &pb.ChatReply{Answer: answer}, nil
}

// GetUserRecommendations 用户推荐：k=10，过滤doc_type=="project"
func (s *AIServer) GetUserRecommendations(ctx context.Context, req *pb.RecommendationRequest) (*pb.RecommendationReply, error) {
	metrics.SimilarityQueries.WithLabelValues("user_recommendations").Inc()

	ids, err := s.retrieval.FindSimilar(ctx, req.GetQueryText(), recommendationTopK, services.DocTypeProject)
	if err != nil {
		logger.Error("User recommendation query failed", zap.Error(err))
		return nil, apperrors.GRPCStatus(err)
	}
	return &pb.RecommendationReply{RecommendedIds: ids}, nil
}

// GetRelatedProjects 相关项目：k=6，过滤doc_type=="project"
func (s *AIServer) GetRelatedProjects(ctx context.Context, req *pb.RecommendationRequest) (*pb.RecommendationReply, error) {
	metrics.SimilarityQueries.WithLabelValues("related_projects").Inc()

	ids, err := s.retrieval.FindSimilar(ctx, req.GetQueryText(), relatedProjectTopK, services.DocTypeProject)
	if err != nil {
		logger.Error("Related project query failed", zap.Error(err))
		return nil, apperrors.GRPCStatus(err)
	}
	return &pb.RecommendationReply{RecommendedIds: ids}, nil
}

// SearchProjects 项目搜索：k=6，过滤doc_type=="project"
func (s *AIServer) SearchProjects(ctx context.Context, req *pb.SearchRequest) (*pb.RecommendationReply, error) {
	metrics.SimilarityQueries.WithLabelValues("search_projects").Inc()

	ids, err := s.retrieval.FindSimilar(ctx, req.GetSearchQuery(), searchTopK, services.DocTypeProject)
	if err != nil {
		logger.Error("Project search failed", zap.Error(err))
		return nil, apperrors.GRPCStatus(err)
	}
	return &pb.RecommendationReply{RecommendedIds: ids}, nil
}

// IndexNewData 触发一次增量同步
func (s *AIServer) IndexNewData(ctx context.Context, req *pb.IndexRequest) (*pb.IndexReply, error) {
	summary, err := s.indexer.RunIncrementalSync(ctx)
	if err != nil {
		logger.Error("Incremental sync failed", zap.Error(err))
		return nil, apperrors.GRPCStatus(err)
	}
	return &pb.IndexReply{Status: summary.String()}, nil
}

// DeleteProjectFromIndex 从向量库删除项目文档
// 删除是尽力而为的清理，瞬时错误不向外传播
func (s *AIServer) DeleteProjectFromIndex(ctx context.Context, req *pb.DeleteProjectRequest) (*pb.IndexingResponse, error) {
	docID := services.ProjectDocID(uint(req.GetProjectId()))

	result := s.indexer.DeleteDocument(ctx, docID)
	if !result.Confirmed {
		logger.Warn("Delete not confirmed", zap.String("doc_id", docID), zap.Error(result.Err))
		return &pb.IndexingResponse{
			Message: fmt.Sprintf("Delete of %s could not be confirmed", docID),
		}, nil
	}
	return &pb.IndexingResponse{Message: fmt.Sprintf("Deleted %s from index", docID)}, nil
}
