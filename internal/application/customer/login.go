package customer

import (
	"context"
	"log"
	"time"

	"github.com/xiebiao/bookmall/internal/domain/customer"
	"github.com/xiebiao/bookmall/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookmall/pkg/jwt"
)

// LoginUseCase 顾客登录用例
// 设计说明：
// 1. 验证用户名密码
// 2. 生成JWT Token对
// 3. 保存会话到Redis
type LoginUseCase struct {
	customerService customer.Service
	jwtManager      *jwt.Manager
	sessionStore    *redis.SessionStore
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(
	customerService customer.Service,
	jwtManager *jwt.Manager,
	sessionStore *redis.SessionStore,
) *LoginUseCase {
	return &LoginUseCase{
		customerService: customerService,
		jwtManager:      jwtManager,
		sessionStore:    sessionStore,
	}
}

// LoginRequest 登录请求DTO
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CustomerInfo 顾客信息DTO
type CustomerInfo struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Staff     bool   `json:"staff"`
}

// LoginResponse 登录响应DTO
type LoginResponse struct {
	Customer     CustomerInfo `json:"customer"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"` // Access Token过期时间（秒）
}

// Execute 执行登录
// 被封禁的顾客仍可登录查看,只是不能发表评论
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	// 1. 验证用户名密码（调用领域服务）
	c, err := uc.customerService.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	// 2. 生成JWT Token对
	tokenPair, err := uc.jwtManager.GenerateToken(c.ID, c.Username, c.Staff)
	if err != nil {
		return nil, err
	}

	// 3. 保存会话到Redis,有效期与Refresh Token一致
	if uc.sessionStore != nil {
		sessionData := map[string]interface{}{
			"user_id":  c.ID,
			"username": c.Username,
			"staff":    c.Staff,
			"login_at": time.Now().Unix(),
		}
		if err := uc.sessionStore.SaveSession(ctx, c.ID, sessionData, 7*24*time.Hour); err != nil {
			// 会话保存失败不影响登录
			log.Printf("保存会话失败: username=%s, err=%v", c.Username, err)
		}
	}

	return &LoginResponse{
		Customer: CustomerInfo{
			UserID:    c.ID,
			Username:  c.Username,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Staff:     c.Staff,
		},
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}

// LogoutUseCase 顾客登出用例
type LogoutUseCase struct {
	sessionStore *redis.SessionStore
}

// NewLogoutUseCase 创建登出用例
func NewLogoutUseCase(sessionStore *redis.SessionStore) *LogoutUseCase {
	return &LogoutUseCase{sessionStore: sessionStore}
}

// Execute 执行登出
// 删除会话并把Access Token拉黑,拉黑时长与Token剩余有效期同阶
func (uc *LogoutUseCase) Execute(ctx context.Context, userID uint, accessToken string) error {
	if uc.sessionStore == nil {
		return nil
	}

	if err := uc.sessionStore.DeleteSession(ctx, userID); err != nil {
		return err
	}

	if err := uc.sessionStore.AddToBlacklist(ctx, accessToken, 2*time.Hour); err != nil {
		return err
	}

	return nil
}
