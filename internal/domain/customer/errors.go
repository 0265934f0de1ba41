package customer

import (
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// 顾客领域错误定义
var (
	// ErrCustomerNotFound 顾客不存在
	ErrCustomerNotFound = apperrors.New(apperrors.ErrCodeCustomerNotFound, "顾客不存在")

	// ErrUsernameDuplicate 用户名已存在
	ErrUsernameDuplicate = apperrors.New(apperrors.ErrCodeUsernameDuplicate, "用户名已被占用，请换一个")

	// ErrInvalidUsername 用户名不合法
	ErrInvalidUsername = apperrors.New(apperrors.ErrCodeInvalidParams, "用户名长度应为2-30个字符")

	// ErrWeakPassword 密码强度不足
	ErrWeakPassword = apperrors.New(apperrors.ErrCodeInvalidParams, "密码强度不足（需8-30位，包含字母和数字）")

	// ErrInvalidPhone 电话号码不合法
	ErrInvalidPhone = apperrors.New(apperrors.ErrCodeInvalidParams, "电话号码应为不超过10位的数字")

	// ErrInvalidDirection 未知的信任方向
	ErrInvalidDirection = apperrors.New(apperrors.ErrCodeInvalidParams, "未知的信任操作")

	// ErrTrustSelf 不能信任/不信任自己
	ErrTrustSelf = apperrors.New(apperrors.ErrCodeTrustSelf, "不能对自己执行信任操作")
)
