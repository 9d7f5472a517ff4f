package auth

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/vincibarbearia/app-agendamento/internal/models"
)

var ErrNotFound = errors.New("customer not found")

type Repository interface {
	FindByPhone(ctx context.Context, phone string) (*models.Customer, error)
	FindByID(ctx context.Context, id string) (*models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	TouchLastAccess(ctx context.Context, id string, at time.Time) error
}

// --------------------------------------------------
// GORM
// --------------------------------------------------

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) FindByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *GormRepository) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *GormRepository) Create(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *GormRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

func (r *GormRepository) TouchLastAccess(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", id).
		Update("last_access_at", at).Error
}

var _ Repository = (*GormRepository)(nil)
