package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
)

const categoryPrimaryKeyConstraint = "categories_pkey"

type Category struct {
	ID        string `gorm:"primaryKey;type:varchar(64)"`
	Name      string `gorm:"not null"`
	Color     string `gorm:"type:varchar(16)"`
	BackColor string `gorm:"type:varchar(16)"`
}

type CategoryDAO struct {
	db *gorm.DB
}

func NewCategoryDAO(db *gorm.DB) *CategoryDAO {
	return &CategoryDAO{
		db: db,
	}
}

func (d *CategoryDAO) Insert(ctx context.Context, category Category) (Category, error) {
	result := d.db.WithContext(ctx).Create(&category)
	if result.Error != nil {
		if isUniqueViolation(result.Error, categoryPrimaryKeyConstraint) {
			return Category{}, ErrCategoryExists
		}

		return Category{}, result.Error
	}

	return category, nil
}

func (d *CategoryDAO) FindByID(ctx context.Context, id string) (Category, error) {
	var category Category

	result := d.db.WithContext(ctx).First(&category, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Category{}, ErrCategoryNotFound
		}

		return Category{}, result.Error
	}

	return category, nil
}

func (d *CategoryDAO) FindAll(ctx context.Context) ([]Category, error) {
	var categories []Category

	result := d.db.WithContext(ctx).Order("id ASC").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

func (d *CategoryDAO) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Category{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}
