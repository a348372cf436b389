package repository

import (
	"burgerhouse/entity"

	"gorm.io/gorm"
)

type ToppingRepository struct {
	DB *gorm.DB
}

func NewToppingRepository(db *gorm.DB) *ToppingRepository {
	return &ToppingRepository{DB: db}
}

// List pages through toppings, optionally hiding unavailable ones.
func (r *ToppingRepository) List(page, limit int, onlyAvailable bool) ([]entity.Topping, int64, error) {
	_, limit, offset := paging(page, limit)
	scope := func() *gorm.DB {
		q := r.DB.Model(&entity.Topping{})
		if onlyAvailable {
			q = q.Where("available = ?", true)
		}
		return q
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var toppings []entity.Topping
	err := scope().Order("name ASC").Limit(limit).Offset(offset).Find(&toppings).Error
	return toppings, total, err
}

func (r *ToppingRepository) FindByName(name string) (*entity.Topping, error) {
	var t entity.Topping
	if err := r.DB.Where("name = ?", name).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *ToppingRepository) CountByName(name string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Topping{}).Where("name = ?", name).Count(&n).Error
	return n, err
}

func (r *ToppingRepository) FindByIDs(ids []uint) (map[uint]entity.Topping, error) {
	out := make(map[uint]entity.Topping, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []entity.Topping
	if err := r.DB.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, t := range rows {
		out[t.ID] = t
	}
	return out, nil
}

func (r *ToppingRepository) Create(t *entity.Topping) error {
	return r.DB.Create(t).Error
}

func (r *ToppingRepository) Update(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.Topping{}).Where("id = ?", id).Updates(fields).Error
}

func (r *ToppingRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Topping{}, id).Error
}
