package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookmall/internal/domain/customer"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// trustRepository 信任关系仓储实现(MySQL)
// 设计说明:
// 1. 信任/不信任是两张互斥的边表,互斥由应用层的切换事务保证
// 2. Ensure*用INSERT IGNORE语义(OnConflict DoNothing),重复点击不报错
// 3. 全部方法走getDB,切换时两条语句落在同一事务里
type trustRepository struct {
	db *gorm.DB
}

// NewTrustRepository 创建信任关系仓储
func NewTrustRepository(db *gorm.DB) customer.TrustRepository {
	return &trustRepository{db: db}
}

// EnsureTrust 建立信任边(get-or-create)
func (r *trustRepository) EnsureTrust(ctx context.Context, username, target string) error {
	model := &TrustModel{Username: username, Target: target}
	err := getDB(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(model).Error
	if err != nil {
		return apperrors.Wrap(err, "建立信任关系失败")
	}
	return nil
}

// DeleteTrust 删除信任边(不存在则忽略)
func (r *trustRepository) DeleteTrust(ctx context.Context, username, target string) error {
	err := getDB(ctx, r.db).
		Where("username = ? AND target = ?", username, target).
		Delete(&TrustModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "删除信任关系失败")
	}
	return nil
}

// EnsureUntrust 建立不信任边(get-or-create)
func (r *trustRepository) EnsureUntrust(ctx context.Context, username, target string) error {
	model := &UntrustModel{Username: username, Target: target}
	err := getDB(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(model).Error
	if err != nil {
		return apperrors.Wrap(err, "建立不信任关系失败")
	}
	return nil
}

// DeleteUntrust 删除不信任边(不存在则忽略)
func (r *trustRepository) DeleteUntrust(ctx context.Context, username, target string) error {
	err := getDB(ctx, r.db).
		Where("username = ? AND target = ?", username, target).
		Delete(&UntrustModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "删除不信任关系失败")
	}
	return nil
}

// IsTrusted username是否信任target
func (r *trustRepository) IsTrusted(ctx context.Context, username, target string) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&TrustModel{}).
		Where("username = ? AND target = ?", username, target).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询信任关系失败")
	}
	return count > 0, nil
}

// IsUntrusted username是否不信任target
func (r *trustRepository) IsUntrusted(ctx context.Context, username, target string) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&UntrustModel{}).
		Where("username = ? AND target = ?", username, target).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询不信任关系失败")
	}
	return count > 0, nil
}

// ListTrusted username信任的全部顾客用户名
func (r *trustRepository) ListTrusted(ctx context.Context, username string) ([]string, error) {
	var targets []string
	err := getDB(ctx, r.db).Model(&TrustModel{}).
		Where("username = ?", username).
		Order("target").
		Pluck("target", &targets).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询信任列表失败")
	}
	return targets, nil
}

// ListUntrusted username不信任的全部顾客用户名
func (r *trustRepository) ListUntrusted(ctx context.Context, username string) ([]string, error) {
	var targets []string
	err := getDB(ctx, r.db).Model(&UntrustModel{}).
		Where("username = ?", username).
		Order("target").
		Pluck("target", &targets).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询不信任列表失败")
	}
	return targets, nil
}
