package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorCode 错误码类型
type ErrorCode string

// 预定义错误码
const (
	// 通用错误
	ErrCodeInternalServer ErrorCode = "INTERNAL_SERVER_ERROR"
	ErrCodeInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrCodeNotFound       ErrorCode = "NOT_FOUND"

	// 数据访问错误
	ErrCodeDatabaseError ErrorCode = "DATABASE_ERROR"

	// 外部服务错误
	ErrCodeEmbeddingProvider ErrorCode = "EMBEDDING_PROVIDER_ERROR"
	ErrCodeVectorStore       ErrorCode = "VECTOR_STORE_ERROR"
	ErrCodeChatProvider      ErrorCode = "CHAT_PROVIDER_ERROR"
)

// AppError 应用错误结构体
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

// Error 实现error接口
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap 返回底层错误
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New 创建应用错误
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap 包装底层错误为应用错误
func Wrap(code ErrorCode, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause}
}

// NewDatabaseError 创建数据访问错误
func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(ErrCodeDatabaseError, message, cause)
}

// NewEmbeddingError 创建向量化服务错误
func NewEmbeddingError(message string, cause error) *AppError {
	return Wrap(ErrCodeEmbeddingProvider, message, cause)
}

// NewVectorStoreError 创建向量库错误
func NewVectorStoreError(message string, cause error) *AppError {
	return Wrap(ErrCodeVectorStore, message, cause)
}

// NewInvalidInputError 创建参数错误
func NewInvalidInputError(message string) *AppError {
	return New(ErrCodeInvalidInput, message)
}

// GRPCStatus 将应用错误映射为gRPC status
func GRPCStatus(err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if !errors.As(err, &appErr) {
		return status.Error(codes.Internal, err.Error())
	}

	switch appErr.Code {
	case ErrCodeInvalidInput:
		return status.Error(codes.InvalidArgument, appErr.Error())
	case ErrCodeNotFound:
		return status.Error(codes.NotFound, appErr.Error())
	case ErrCodeDatabaseError, ErrCodeEmbeddingProvider, ErrCodeVectorStore, ErrCodeChatProvider:
		return status.Error(codes.Unavailable, appErr.Error())
	default:
		return status.Error(codes.Internal, appErr.Error())
	}
}
