package order

import (
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "订单不存在")

	// ErrInvalidItems 订单明细不合法
	ErrInvalidItems = apperrors.New(apperrors.ErrCodeInvalidParams, "订单明细不能为空")
)
