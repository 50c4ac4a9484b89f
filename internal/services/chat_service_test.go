package services

import (
	"context"
	"testing"

	apperrors "github.com/modx/ai-service/internal/errors"
	"github.com/modx/ai-service/internal/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessQueryEmptyQuery(t *testing.T) {
	retrieval := NewRetrievalService(&fakeEmbedder{}, &captureStore{}, nil, 0)
	svc := NewChatService(retrieval, "", "", 0, 0)

	_, err := svc.ProcessQuery(context.Background(), "  ")

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeInvalidInput, appErr.Code)
}

func TestProcessQueryWithoutAPIKey(t *testing.T) {
	retrieval := NewRetrievalService(&fakeEmbedder{}, &captureStore{}, nil, 0)
	svc := NewChatService(retrieval, "", "", 0, 0)

	answer, err := svc.ProcessQuery(context.Background(), "what projects use go?")

	require.NoError(t, err)
	assert.Equal(t, "The AI assistant is not configured on this deployment.", answer)
}

func TestAssembleContext(t *testing.T) {
	matches := []knowledge.SearchMatch{
		{DocID: "project_1", Content: "Project: Chat App. Led by: Ana.", DocType: DocTypeProject},
		{DocID: "user_2", Content: "User: Bo. Roles: backend.", DocType: DocTypeUser},
	}

	block := assembleContext(matches)

	assert.Equal(t, "- [project_1] Project: Chat App. Led by: Ana.\n- [user_2] User: Bo. Roles: backend.", block)
}

func TestAssembleContextSkipsEmptyContent(t *testing.T) {
	matches := []knowledge.SearchMatch{
		{DocID: "project_1", Content: "   "},
		{DocID: "user_2", Content: "User: Bo."},
	}

	block := assembleContext(matches)

	assert.Equal(t, "- [user_2] User: Bo.", block)
}

func TestAssembleContextEmpty(t *testing.T) {
	assert.Equal(t, "", assembleContext(nil))
}
