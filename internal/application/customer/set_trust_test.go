package customer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookmall/internal/domain/customer"
)

// ========================================
// 内存桩:用两个set模拟信任/不信任边表
// ========================================

type fakeCustomerRepo struct {
	customers map[string]*customer.Customer
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c *customer.Customer) error {
	if _, ok := f.customers[c.Username]; ok {
		return customer.ErrUsernameDuplicate
	}
	f.customers[c.Username] = c
	return nil
}

func (f *fakeCustomerRepo) FindByUsername(ctx context.Context, username string) (*customer.Customer, error) {
	c, ok := f.customers[username]
	if !ok {
		return nil, customer.ErrCustomerNotFound
	}
	return c, nil
}

func (f *fakeCustomerRepo) UpdateBanned(ctx context.Context, username string, banned bool) error {
	c, ok := f.customers[username]
	if !ok {
		return customer.ErrCustomerNotFound
	}
	c.Banned = banned
	return nil
}

func (f *fakeCustomerRepo) IncrOffense(ctx context.Context, username string) (*customer.Offense, error) {
	return &customer.Offense{Username: username, OffenseCount: 1}, nil
}

type edge struct{ username, target string }

type fakeTrustRepo struct {
	trusted   map[edge]bool
	untrusted map[edge]bool
}

func newFakeTrustRepo() *fakeTrustRepo {
	return &fakeTrustRepo{trusted: map[edge]bool{}, untrusted: map[edge]bool{}}
}

func (f *fakeTrustRepo) EnsureTrust(ctx context.Context, username, target string) error {
	f.trusted[edge{username, target}] = true
	return nil
}

func (f *fakeTrustRepo) DeleteTrust(ctx context.Context, username, target string) error {
	delete(f.trusted, edge{username, target})
	return nil
}

func (f *fakeTrustRepo) EnsureUntrust(ctx context.Context, username, target string) error {
	f.untrusted[edge{username, target}] = true
	return nil
}

func (f *fakeTrustRepo) DeleteUntrust(ctx context.Context, username, target string) error {
	delete(f.untrusted, edge{username, target})
	return nil
}

func (f *fakeTrustRepo) IsTrusted(ctx context.Context, username, target string) (bool, error) {
	return f.trusted[edge{username, target}], nil
}

func (f *fakeTrustRepo) IsUntrusted(ctx context.Context, username, target string) (bool, error) {
	return f.untrusted[edge{username, target}], nil
}

func (f *fakeTrustRepo) ListTrusted(ctx context.Context, username string) ([]string, error) {
	var targets []string
	for e := range f.trusted {
		if e.username == username {
			targets = append(targets, e.target)
		}
	}
	return targets, nil
}

func (f *fakeTrustRepo) ListUntrusted(ctx context.Context, username string) ([]string, error) {
	var targets []string
	for e := range f.untrusted {
		if e.username == username {
			targets = append(targets, e.target)
		}
	}
	return targets, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newSetTrustUseCase(trustRepo *fakeTrustRepo) *SetTrustUseCase {
	customerRepo := &fakeCustomerRepo{customers: map[string]*customer.Customer{
		"zhangsan": {Username: "zhangsan"},
		"lisi":     {Username: "lisi"},
	}}
	return NewSetTrustUseCase(customerRepo, trustRepo, &fakeTxManager{})
}

// ========================================
// 测试用例
// ========================================

// TestSetTrust_Exclusive 测试信任与不信任互斥:切换方向时另一侧的边被删除
func TestSetTrust_Exclusive(t *testing.T) {
	trustRepo := newFakeTrustRepo()
	uc := newSetTrustUseCase(trustRepo)
	ctx := context.Background()

	// 先信任
	resp, err := uc.Execute(ctx, SetTrustRequest{Username: "zhangsan", Target: "lisi", Direction: "trust"})
	require.NoError(t, err)
	assert.Equal(t, "trust", resp.Direction)

	trusted, _ := trustRepo.IsTrusted(ctx, "zhangsan", "lisi")
	untrusted, _ := trustRepo.IsUntrusted(ctx, "zhangsan", "lisi")
	assert.True(t, trusted)
	assert.False(t, untrusted)

	// 再切换到不信任:信任边消失,不信任边出现
	_, err = uc.Execute(ctx, SetTrustRequest{Username: "zhangsan", Target: "lisi", Direction: "untrust"})
	require.NoError(t, err)

	trusted, _ = trustRepo.IsTrusted(ctx, "zhangsan", "lisi")
	untrusted, _ = trustRepo.IsUntrusted(ctx, "zhangsan", "lisi")
	assert.False(t, trusted)
	assert.True(t, untrusted)
}

// TestSetTrust_Idempotent 测试重复点击幂等:已信任再点信任不报错
func TestSetTrust_Idempotent(t *testing.T) {
	trustRepo := newFakeTrustRepo()
	uc := newSetTrustUseCase(trustRepo)
	ctx := context.Background()

	_, err := uc.Execute(ctx, SetTrustRequest{Username: "zhangsan", Target: "lisi", Direction: "trust"})
	require.NoError(t, err)
	_, err = uc.Execute(ctx, SetTrustRequest{Username: "zhangsan", Target: "lisi", Direction: "trust"})
	require.NoError(t, err)

	targets, _ := trustRepo.ListTrusted(ctx, "zhangsan")
	assert.Equal(t, []string{"lisi"}, targets)
}

// TestSetTrust_Self 测试对自己表态被拒绝
func TestSetTrust_Self(t *testing.T) {
	uc := newSetTrustUseCase(newFakeTrustRepo())

	_, err := uc.Execute(context.Background(), SetTrustRequest{Username: "zhangsan", Target: "zhangsan", Direction: "trust"})
	assert.ErrorIs(t, err, customer.ErrTrustSelf)
}

// TestSetTrust_TargetNotFound 测试目标顾客不存在
func TestSetTrust_TargetNotFound(t *testing.T) {
	uc := newSetTrustUseCase(newFakeTrustRepo())

	_, err := uc.Execute(context.Background(), SetTrustRequest{Username: "zhangsan", Target: "ghost", Direction: "trust"})
	assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
}

// TestSetTrust_InvalidDirection 测试未知方向被拒绝
func TestSetTrust_InvalidDirection(t *testing.T) {
	uc := newSetTrustUseCase(newFakeTrustRepo())

	_, err := uc.Execute(context.Background(), SetTrustRequest{Username: "zhangsan", Target: "lisi", Direction: "like"})
	assert.ErrorIs(t, err, customer.ErrInvalidDirection)
}
