package catalog

import (
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// 目录领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrInvalidISBN ISBN格式不正确
	ErrInvalidISBN = apperrors.New(apperrors.ErrCodeInvalidParams, "ISBN格式不正确")

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "价格不能为负数")

	// ErrInvalidStock 无效的库存
	ErrInvalidStock = apperrors.New(apperrors.ErrCodeInvalidParams, "库存不能为负数")

	// ErrInvalidPageCount 无效的页数
	ErrInvalidPageCount = apperrors.New(apperrors.ErrCodeInvalidParams, "页数不能为负数")

	// ErrInvalidQuantity 无效的数量
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "数量必须大于0")

	// ErrInsufficientStock 库存不足
	ErrInsufficientStock = apperrors.New(apperrors.ErrCodeInsufficientStock, "库存不足")

	// ErrEmptySearch 搜索条件全部为空
	ErrEmptySearch = apperrors.New(apperrors.ErrCodeEmptySearch, "搜索条件不能全部为空，请至少填写一项")

	// ErrInvalidAuthorToken 作者搜索项格式错误(应为 first_last)
	ErrInvalidAuthorToken = apperrors.New(apperrors.ErrCodeInvalidParams, "作者格式错误，应为\"名_姓\"(如 John_Smith)")

	// ErrInvalidSortKey 未知的排序方式
	ErrInvalidSortKey = apperrors.New(apperrors.ErrCodeInvalidParams, "未知的排序方式")

	// ErrTrustSortRequiresLogin 未登录时不能按信任评分排序
	ErrTrustSortRequiresLogin = apperrors.New(apperrors.ErrCodeBusinessError, "未登录无法按\"信任顾客评分\"排序，请先登录")

	// ErrInvalidDegree 度数只支持1或2
	ErrInvalidDegree = apperrors.New(apperrors.ErrCodeInvalidParams, "度分离搜索只支持1度或2度")

	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeNotFound, "作者不存在")
)
