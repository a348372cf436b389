package repository

import (
	"burgerhouse/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

// List pages through products, optionally hiding unavailable ones.
func (r *ProductRepository) List(page, limit int, onlyAvailable bool) ([]entity.Product, int64, error) {
	_, limit, offset := paging(page, limit)
	scope := func() *gorm.DB {
		q := r.DB.Model(&entity.Product{})
		if onlyAvailable {
			q = q.Where("available = ?", true)
		}
		return q
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []entity.Product
	err := scope().Order("category ASC, name ASC").Limit(limit).Offset(offset).Find(&products).Error
	return products, total, err
}

func (r *ProductRepository) FindByName(name string) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.Where("name = ?", name).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) CountByName(name string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Product{}).Where("name = ?", name).Count(&n).Error
	return n, err
}

// FindByIDs returns the products keyed by id; missing ids are simply absent.
func (r *ProductRepository) FindByIDs(ids []uint) (map[uint]entity.Product, error) {
	out := make(map[uint]entity.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []entity.Product
	if err := r.DB.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, p := range rows {
		out[p.ID] = p
	}
	return out, nil
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) Update(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.Product{}).Where("id = ?", id).Updates(fields).Error
}

func (r *ProductRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Product{}, id).Error
}
