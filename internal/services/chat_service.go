package services

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/modx/ai-service/internal/errors"
	"github.com/modx/ai-service/internal/knowledge"
	"github.com/modx/ai-service/internal/logger"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// 聊天上下文检索的默认条数
const chatContextTopK = 5

const chatSystemPrompt = "You are the assistant of the modx collaboration platform. " +
	"Answer the user's question using the provided platform context about projects and members. " +
	"If the context is not relevant, answer from general knowledge and say so."

// ChatService 聊天问答服务：检索平台上下文后调用聊天模型生成回答
type ChatService struct {
	retrieval   *RetrievalService
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
}

// NewChatService 创建聊天服务，apiKey为空时返回降级提示而不报错
func NewChatService(retrieval *RetrievalService, apiKey, model string, maxTokens int, temperature float64) *ChatService {
	var client *openai.Client
	if strings.TrimSpace(apiKey) != "" {
		client = openai.NewClient(apiKey)
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &ChatService{
		retrieval:   retrieval,
		client:      client,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

// ProcessQuery 处理一次聊天查询
func (s *ChatService) ProcessQuery(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", apperrors.NewInvalidInputError("query is empty")
	}
	if s.client == nil {
		return "The AI assistant is not configured on this deployment.", nil
	}

	// 上下文检索失败不阻断回答，降级为无上下文
	contextBlock := ""
	matches, err := s.retrieval.FindContext(ctx, query, chatContextTopK)
	if err != nil {
		logger.Warn("Context retrieval failed, answering without context", zap.Error(err))
	} else {
		contextBlock = assembleContext(matches)
	}

	userContent := query
	if contextBlock != "" {
		userContent = fmt.Sprintf("Context:\n%s\n\nQuestion: %s", contextBlock, query)
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		MaxTokens:   s.maxTokens,
		Temperature: float32(s.temperature),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: chatSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userContent},
		},
	})
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeChatProvider, "chat completion failed", err)
	}
	if len(resp.Choices) == 0 {
		return "", apperrors.New(apperrors.ErrCodeChatProvider, "chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// assembleContext 将检索命中拼接为提示词上下文块
func assembleContext(matches []knowledge.SearchMatch) string {
	lines := make([]string, 0, len(matches))
	for _, m := range matches {
		if strings.TrimSpace(m.Content) == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("- [%s] %s", m.DocID, m.Content))
	}
	return strings.Join(lines, "\n")
}
