package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookmall/internal/domain/customer"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// customerRepository 顾客仓储实现(MySQL)
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository 创建顾客仓储
func NewCustomerRepository(db *gorm.DB) customer.Repository {
	return &customerRepository{db: db}
}

// Create 创建顾客
func (r *customerRepository) Create(ctx context.Context, c *customer.Customer) error {
	model := toCustomerModel(c)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		// 用户名唯一索引冲突
		if isDuplicateError(err) {
			return customer.ErrUsernameDuplicate
		}
		return apperrors.Wrap(err, "创建顾客失败")
	}

	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByUsername 根据用户名查找顾客
func (r *customerRepository) FindByUsername(ctx context.Context, username string) (*customer.Customer, error) {
	var model CustomerModel
	err := getDB(ctx, r.db).Where("username = ?", username).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, apperrors.Wrap(err, "查询顾客失败")
	}

	return toCustomerEntity(&model), nil
}

// UpdateBanned 切换封禁状态
func (r *customerRepository) UpdateBanned(ctx context.Context, username string, banned bool) error {
	result := getDB(ctx, r.db).Model(&CustomerModel{}).
		Where("username = ?", username).
		Update("banned", banned)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新封禁状态失败")
	}
	if result.RowsAffected == 0 {
		// RowsAffected为0也可能是值没变,再确认顾客存在
		var count int64
		if err := getDB(ctx, r.db).Model(&CustomerModel{}).
			Where("username = ?", username).Count(&count).Error; err != nil {
			return apperrors.Wrap(err, "查询顾客失败")
		}
		if count == 0 {
			return customer.ErrCustomerNotFound
		}
	}
	return nil
}

// IncrOffense 违规次数+1,无记录时插入count=1
// INSERT ... ON DUPLICATE KEY UPDATE,并发稽查也只会留一条记录
func (r *customerRepository) IncrOffense(ctx context.Context, username string) (*customer.Offense, error) {
	db := getDB(ctx, r.db)

	model := &OffenseModel{Username: username, OffenseCount: 1}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"offense_count": gorm.Expr("offense_count + 1"),
		}),
	}).Create(model).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "累计违规次数失败")
	}

	// 回读累计后的次数
	var saved OffenseModel
	if err := db.Where("username = ?", username).First(&saved).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询违规记录失败")
	}

	return &customer.Offense{ID: saved.ID, Username: saved.Username, OffenseCount: saved.OffenseCount}, nil
}

// toCustomerEntity GORM模型 → 领域实体
func toCustomerEntity(model *CustomerModel) *customer.Customer {
	return &customer.Customer{
		ID:        model.ID,
		Username:  model.Username,
		Password:  model.Password,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Address:   model.Address,
		Phone:     model.Phone,
		Banned:    model.Banned,
		Staff:     model.Staff,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// toCustomerModel 领域实体 → GORM模型
func toCustomerModel(c *customer.Customer) *CustomerModel {
	return &CustomerModel{
		ID:        c.ID,
		Username:  c.Username,
		Password:  c.Password,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Address:   c.Address,
		Phone:     c.Phone,
		Banned:    c.Banned,
		Staff:     c.Staff,
	}
}
