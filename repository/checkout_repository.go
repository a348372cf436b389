package repository

import (
	"time"

	"burgerhouse/entity"

	"gorm.io/gorm"
)

type CheckoutRepository struct {
	DB *gorm.DB
}

func NewCheckoutRepository(db *gorm.DB) *CheckoutRepository {
	return &CheckoutRepository{DB: db}
}

func (r *CheckoutRepository) Create(tx *gorm.DB, s *entity.CheckoutSession) error {
	return tx.Create(s).Error
}

func (r *CheckoutRepository) FindByID(id string) (*entity.CheckoutSession, error) {
	var s entity.CheckoutSession
	if err := r.DB.Preload("PaymentStatus").Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateStatusGuard moves a session out of fromID; paidAt is stored when set.
func (r *CheckoutRepository) UpdateStatusGuard(tx *gorm.DB, id string, fromID, toID uint, paidAt *time.Time) (int64, error) {
	updates := map[string]any{
		"payment_status_id": toID,
	}
	if paidAt != nil {
		updates["paid_at"] = paidAt
	}
	res := tx.Model(&entity.CheckoutSession{}).
		Where("id = ? AND payment_status_id = ?", id, fromID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *CheckoutRepository) GetStatusIDByName(name string) (uint, error) {
	var id uint
	err := r.DB.Model(&entity.PaymentStatus{}).Select("id").Where("status_name = ?", name).Scan(&id).Error
	return id, err
}
