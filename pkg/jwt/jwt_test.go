package jwt

import (
	"testing"
	"time"

	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// TestGenerateAndParseToken 测试Token生成和解析往返
func TestGenerateAndParseToken(t *testing.T) {
	manager := NewManager("test-secret", 2*time.Hour, 7*24*time.Hour)

	pair, err := manager.GenerateToken(42, "zhangsan", false)
	if err != nil {
		t.Fatalf("生成Token失败: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("Token不应为空")
	}
	if pair.ExpiresIn != 7200 {
		t.Errorf("过期时间错误: expected=7200, got=%d", pair.ExpiresIn)
	}

	claims, err := manager.ParseToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("解析Token失败: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID错误: expected=42, got=%d", claims.UserID)
	}
	if claims.Username != "zhangsan" {
		t.Errorf("Username错误: expected=zhangsan, got=%s", claims.Username)
	}
	if claims.Staff {
		t.Error("普通顾客的Staff标记应为false")
	}
	if claims.Issuer != "bookmall" {
		t.Errorf("Issuer错误: got=%s", claims.Issuer)
	}
}

// TestStaffClaim 测试经理账号的Staff标记
func TestStaffClaim(t *testing.T) {
	manager := NewManager("test-secret", 2*time.Hour, 7*24*time.Hour)

	pair, err := manager.GenerateToken(1, "manager", true)
	if err != nil {
		t.Fatalf("生成Token失败: %v", err)
	}

	claims, err := manager.ParseToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("解析Token失败: %v", err)
	}
	if !claims.Staff {
		t.Error("经理账号的Staff标记应为true")
	}
}

// TestParseToken_WrongSecret 测试密钥不匹配
func TestParseToken_WrongSecret(t *testing.T) {
	manager := NewManager("secret-a", 2*time.Hour, 7*24*time.Hour)
	other := NewManager("secret-b", 2*time.Hour, 7*24*time.Hour)

	pair, err := manager.GenerateToken(1, "zhangsan", false)
	if err != nil {
		t.Fatalf("生成Token失败: %v", err)
	}

	if _, err := other.ParseToken(pair.AccessToken); err != apperrors.ErrInvalidToken {
		t.Errorf("期望ErrInvalidToken, got=%v", err)
	}
}

// TestParseToken_Expired 测试过期Token
func TestParseToken_Expired(t *testing.T) {
	// Access Token有效期为负,生成即过期
	manager := NewManager("test-secret", -time.Hour, 7*24*time.Hour)

	pair, err := manager.GenerateToken(1, "zhangsan", false)
	if err != nil {
		t.Fatalf("生成Token失败: %v", err)
	}

	if _, err := manager.ParseToken(pair.AccessToken); err != apperrors.ErrTokenExpired {
		t.Errorf("期望ErrTokenExpired, got=%v", err)
	}
}

// TestParseToken_Garbage 测试非法字符串
func TestParseToken_Garbage(t *testing.T) {
	manager := NewManager("test-secret", 2*time.Hour, 7*24*time.Hour)

	if _, err := manager.ParseToken("not-a-jwt"); err != apperrors.ErrInvalidToken {
		t.Errorf("期望ErrInvalidToken, got=%v", err)
	}
}
