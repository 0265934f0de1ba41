package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookmall/internal/domain/report"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// fakeReportRepo 记录收到的n和since,返回固定榜单
type fakeReportRepo struct {
	lastN     int
	lastSince time.Time
}

func (f *fakeReportRepo) TopTrustedCustomers(ctx context.Context, n int) ([]*report.TrustedCustomerRow, error) {
	f.lastN = n
	return []*report.TrustedCustomerRow{
		{Username: "zhangsan", FirstName: "三", LastName: "张", TrustedCount: 12},
		{Username: "lisi", FirstName: "四", LastName: "李", TrustedCount: 8},
	}, nil
}

func (f *fakeReportRepo) TopUsefulCustomers(ctx context.Context, n int) ([]*report.UsefulCustomerRow, error) {
	return []*report.UsefulCustomerRow{
		{Username: "wangwu", AvgUsefulness: 2.5},
	}, nil
}

func (f *fakeReportRepo) TopBooks(ctx context.Context, since time.Time, n int) ([]*report.BookSalesRow, error) {
	f.lastSince = since
	f.lastN = n
	return []*report.BookSalesRow{{ISBN: "9787111213826", Title: "深入理解计算机系统", Units: 42}}, nil
}

func (f *fakeReportRepo) TopAuthors(ctx context.Context, since time.Time, n int) ([]*report.AuthorSalesRow, error) {
	return []*report.AuthorSalesRow{{FirstName: "Randal", LastName: "Bryant", Units: 42}}, nil
}

func (f *fakeReportRepo) TopPublishers(ctx context.Context, since time.Time, n int) ([]*report.PublisherSalesRow, error) {
	return []*report.PublisherSalesRow{{Publisher: "机械工业出版社", Units: 42}}, nil
}

// TestUserReport 测试顾客榜单
func TestUserReport(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := NewUserReportUseCase(repo)

	resp, err := uc.Execute(context.Background(), UserReportRequest{N: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.lastN)
	require.Len(t, resp.MostTrusted, 2)
	assert.Equal(t, "zhangsan", resp.MostTrusted[0].Username)
	assert.Equal(t, int64(12), resp.MostTrusted[0].TrustedCount)
	require.Len(t, resp.MostUseful, 1)
	assert.InDelta(t, 2.5, resp.MostUseful[0].AvgUsefulness, 1e-9)
}

// TestUserReport_InvalidN 测试榜单长度必须为正整数
func TestUserReport_InvalidN(t *testing.T) {
	uc := NewUserReportUseCase(&fakeReportRepo{})

	for _, n := range []int{0, -1} {
		_, err := uc.Execute(context.Background(), UserReportRequest{N: n})
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidParams, apperrors.GetAppError(err).Code)
	}
}

// TestBookReport 测试图书榜单,销量统计窗口为近90天
func TestBookReport(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := NewBookReportUseCase(repo)

	resp, err := uc.Execute(context.Background(), BookReportRequest{N: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, repo.lastN)
	require.Len(t, resp.TopBooks, 1)
	assert.Equal(t, int64(42), resp.TopBooks[0].Units)
	require.Len(t, resp.TopAuthors, 1)
	require.Len(t, resp.TopPublishers, 1)

	// since大约是90天前(允许测试执行期间的少量漂移)
	expected := time.Now().Add(-90 * 24 * time.Hour)
	assert.WithinDuration(t, expected, repo.lastSince, time.Minute)
}

// TestBookReport_InvalidN 测试图书榜单长度校验
func TestBookReport_InvalidN(t *testing.T) {
	uc := NewBookReportUseCase(&fakeReportRepo{})

	_, err := uc.Execute(context.Background(), BookReportRequest{N: 0})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidParams, apperrors.GetAppError(err).Code)
}
