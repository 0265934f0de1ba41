package customer

import (
	"context"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// Service 顾客领域服务
// 设计说明:
// 1. 封装注册/登录相关的密码加密与校验
// 2. 依赖Repository接口,不依赖具体实现(依赖倒置)
// 3. 信任切换涉及两张边表的事务,编排放在application层
type Service interface {
	// Register 顾客注册
	Register(ctx context.Context, username, password, firstName, lastName, address, phone string) (*Customer, error)

	// Login 顾客登录
	Login(ctx context.Context, username, password string) (*Customer, error)
}

type service struct {
	repo Repository
}

// NewService 创建顾客服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register 顾客注册
// 业务规则:
// 1. 用户名2-30字符
// 2. 密码强度校验(8-30位,包含字母和数字)
// 3. 电话号码不超过10位数字
// 4. 用户名唯一性由数据库UNIQUE索引保证,冲突转换为ErrUsernameDuplicate
func (s *service) Register(ctx context.Context, username, password, firstName, lastName, address, phone string) (*Customer, error) {
	// 1. 用户名校验
	if len(username) < 2 || len(username) > 30 {
		return nil, ErrInvalidUsername
	}

	// 2. 密码强度校验
	if err := validatePasswordStrength(password); err != nil {
		return nil, err
	}

	// 3. 电话号码校验
	if !isValidPhone(phone) {
		return nil, ErrInvalidPhone
	}

	// 4. 密码加密
	// bcrypt自动加盐,cost=12平衡安全性与性能
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, apperrors.Wrap(err, "密码加密失败")
	}

	// 5. 创建顾客实体并持久化
	customer := NewCustomer(username, string(hashedPassword), firstName, lastName, address, phone)
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err // Repository已转换为业务错误
	}

	return customer, nil
}

// Login 顾客登录
func (s *service) Login(ctx context.Context, username, password string) (*Customer, error) {
	// 1. 根据用户名查找顾客
	c, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err // Repository已转换为ErrCustomerNotFound
	}

	// 2. 验证密码
	if err := bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(password)); err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return nil, apperrors.ErrInvalidPassword
		}
		return nil, apperrors.Wrap(err, "密码验证失败")
	}

	return c, nil
}

// =========================================
// 辅助函数:业务规则校验
// =========================================

// validatePasswordStrength 密码强度校验
// 规则:8-30位,必须包含字母和数字
func validatePasswordStrength(password string) error {
	if len(password) < 8 || len(password) > 30 {
		return ErrWeakPassword
	}

	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasDigit := regexp.MustCompile(`[0-9]`).MatchString(password)

	if !hasLetter || !hasDigit {
		return ErrWeakPassword
	}

	return nil
}

// isValidPhone 电话号码校验:1-10位数字
func isValidPhone(phone string) bool {
	matched, _ := regexp.MatchString(`^[0-9]{1,10}$`, phone)
	return matched
}
