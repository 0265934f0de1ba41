package qa

import (
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// 问答领域错误定义
var (
	// ErrQuestionNotFound 提问不存在
	ErrQuestionNotFound = apperrors.New(apperrors.ErrCodeQuestionNotFound, "提问不存在")

	// ErrInvalidQuestion 提问内容不合法
	ErrInvalidQuestion = apperrors.New(apperrors.ErrCodeInvalidParams, "提问内容不能为空且不超过300字符")

	// ErrInvalidAnswer 回答内容不合法
	ErrInvalidAnswer = apperrors.New(apperrors.ErrCodeInvalidParams, "回答内容不能为空且不超过300字符")
)
