package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUserEmailExists = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
)

const userEmailUniqueConstraint = "uni_users_email"

type User struct {
	ID string `gorm:"primaryKey;type:varchar(36)"`

	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`

	Roles []UserRole `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	return nil
}

type Role struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"unique;not null"`
}

type UserRole struct {
	UserID string `gorm:"primaryKey;type:varchar(36)"`
	RoleID uint   `gorm:"primaryKey"`

	Role Role `gorm:"foreignKey:RoleID"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

// InsertWithRole creates the user, finds or creates roleName and links the two
// in a single transaction.
func (d *UserDAO) InsertWithRole(ctx context.Context, user User, roleName string) (User, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Roles").Create(&user).Error; err != nil {
			if isUniqueViolation(err, userEmailUniqueConstraint) {
				return ErrUserEmailExists
			}

			return err
		}

		role := Role{Name: roleName}
		if err := tx.Where(Role{Name: roleName}).FirstOrCreate(&role).Error; err != nil {
			return err
		}

		link := UserRole{UserID: user.ID, RoleID: role.ID, Role: role}
		if err := tx.Omit("Role").Create(&link).Error; err != nil {
			return err
		}
		user.Roles = []UserRole{link}

		return nil
	})
	if err != nil {
		return User{}, err
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id string) (User, error) {
	return d.findOne(ctx, "id = ?", id)
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	return d.findOne(ctx, "email = ?", email)
}

func (d *UserDAO) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&User{}).Where("email = ?", email).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *UserDAO) findOne(ctx context.Context, query string, args ...any) (User, error) {
	var user User

	result := d.db.WithContext(ctx).Where(query, args...).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

// FindRoleNames lists the names of every role linked to userID.
func (d *UserDAO) FindRoleNames(ctx context.Context, userID string) ([]string, error) {
	var names []string

	result := d.db.WithContext(ctx).
		Model(&Role{}).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Order("roles.name ASC").
		Pluck("roles.name", &names)
	if result.Error != nil {
		return nil, result.Error
	}

	return names, nil
}
