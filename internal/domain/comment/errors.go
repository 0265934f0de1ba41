package comment

import (
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// 评论领域错误定义
var (
	// ErrCommentNotFound 评论不存在
	// 注意:打分接口遇到该错误时降级为通用"未知错误"响应(见handler)
	ErrCommentNotFound = apperrors.New(apperrors.ErrCodeCommentNotFound, "评论不存在")

	// ErrDuplicateComment 重复评论
	ErrDuplicateComment = apperrors.New(apperrors.ErrCodeDuplicateComment, "每位顾客对一本书只能发表一条评论，您已经评论过这本书")

	// ErrSelfRating 给自己的评论打分
	ErrSelfRating = apperrors.New(apperrors.ErrCodeSelfRating, "不能给自己的评论打分")

	// ErrBannedCustomer 被封禁顾客发表评论
	ErrBannedCustomer = apperrors.New(apperrors.ErrCodeBannedCustomer, "您已被封禁，不能发表评论")

	// ErrInvalidScore 评分超出范围
	ErrInvalidScore = apperrors.New(apperrors.ErrCodeInvalidParams, "评分必须在1-10之间")

	// ErrInvalidText 评论正文不合法
	ErrInvalidText = apperrors.New(apperrors.ErrCodeInvalidParams, "评论内容不能为空且不超过300字符")

	// ErrInvalidTier 未知的打分档位
	ErrInvalidTier = apperrors.New(apperrors.ErrCodeInvalidParams, "未知的打分档位")
)
