package cart

import (
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// 购物车领域错误定义
var (
	// ErrItemNotFound 购物车条目不存在
	ErrItemNotFound = apperrors.New(apperrors.ErrCodeCartItemNotFound, "购物车中没有这本书")

	// ErrCartEmpty 购物车为空
	ErrCartEmpty = apperrors.New(apperrors.ErrCodeCartEmpty, "购物车是空的，无法结算")

	// ErrInvalidAction 未知的数量调整动作
	ErrInvalidAction = apperrors.New(apperrors.ErrCodeInvalidParams, "未知的购物车操作")
)
