package customer

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/customer"
)

// SignUpUseCase 顾客注册用例
type SignUpUseCase struct {
	customerService customer.Service
}

// NewSignUpUseCase 创建注册用例
func NewSignUpUseCase(customerService customer.Service) *SignUpUseCase {
	return &SignUpUseCase{customerService: customerService}
}

// SignUpRequest 注册请求DTO
type SignUpRequest struct {
	Username  string `json:"username" binding:"required,min=2,max=30"`
	Password  string `json:"password" binding:"required,min=8,max=30"`
	FirstName string `json:"first_name" binding:"required,max=30"`
	LastName  string `json:"last_name" binding:"required,max=30"`
	Address   string `json:"address" binding:"max=100"`
	Phone     string `json:"phone" binding:"required,max=10"`
}

// SignUpResponse 注册响应DTO
type SignUpResponse struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

// Execute 执行注册
func (uc *SignUpUseCase) Execute(ctx context.Context, req SignUpRequest) (*SignUpResponse, error) {
	c, err := uc.customerService.Register(ctx,
		req.Username, req.Password, req.FirstName, req.LastName, req.Address, req.Phone)
	if err != nil {
		return nil, err
	}

	return &SignUpResponse{UserID: c.ID, Username: c.Username}, nil
}
