package customer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

type memoryRepo struct {
	customers map[string]*Customer
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{customers: map[string]*Customer{}}
}

func (m *memoryRepo) Create(ctx context.Context, c *Customer) error {
	if _, ok := m.customers[c.Username]; ok {
		return ErrUsernameDuplicate
	}
	m.customers[c.Username] = c
	return nil
}

func (m *memoryRepo) FindByUsername(ctx context.Context, username string) (*Customer, error) {
	c, ok := m.customers[username]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return c, nil
}

func (m *memoryRepo) UpdateBanned(ctx context.Context, username string, banned bool) error {
	c, ok := m.customers[username]
	if !ok {
		return ErrCustomerNotFound
	}
	c.Banned = banned
	return nil
}

func (m *memoryRepo) IncrOffense(ctx context.Context, username string) (*Offense, error) {
	return &Offense{Username: username, OffenseCount: 1}, nil
}

// TestRegisterAndLogin 测试注册登录往返:密码加密存储且可验证
func TestRegisterAndLogin(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	c, err := svc.Register(ctx, "zhangsan", "Passw0rd123", "三", "张", "北京市海淀区", "13800138")
	require.NoError(t, err)
	assert.NotEqual(t, "Passw0rd123", c.Password, "密码不应明文存储")

	logged, err := svc.Login(ctx, "zhangsan", "Passw0rd123")
	require.NoError(t, err)
	assert.Equal(t, "zhangsan", logged.Username)

	_, err = svc.Login(ctx, "zhangsan", "wrong-password")
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)

	_, err = svc.Login(ctx, "ghost", "Passw0rd123")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

// TestRegister_Validation 测试注册参数校验
func TestRegister_Validation(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	t.Run("用户名太短", func(t *testing.T) {
		_, err := svc.Register(ctx, "a", "Passw0rd123", "", "", "", "123")
		assert.ErrorIs(t, err, ErrInvalidUsername)
	})

	t.Run("密码太弱", func(t *testing.T) {
		// 纯字母
		_, err := svc.Register(ctx, "zhangsan", "onlyletters", "", "", "", "123")
		assert.ErrorIs(t, err, ErrWeakPassword)
		// 太短
		_, err = svc.Register(ctx, "zhangsan", "a1", "", "", "", "123")
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("电话号码超长", func(t *testing.T) {
		_, err := svc.Register(ctx, "zhangsan", "Passw0rd123", "", "", "", "12345678901")
		assert.ErrorIs(t, err, ErrInvalidPhone)
	})

	t.Run("用户名重复", func(t *testing.T) {
		_, err := svc.Register(ctx, "lisi", "Passw0rd123", "", "", "", "123")
		require.NoError(t, err)
		_, err = svc.Register(ctx, "lisi", "Passw0rd456", "", "", "", "123")
		assert.ErrorIs(t, err, ErrUsernameDuplicate)
	})
}
