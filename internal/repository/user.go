package repository

import (
	"context"
	"errors"

	"github.com/dukamart/storefront/internal/model"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound  = errors.New("USER_NOT_FOUND")
	ErrUserDuplicate = errors.New("USER_DUPLICATE")
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type user struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &user{db: db}
}

func (u *user) Create(ctx context.Context, usr *model.User) error {
	err := GetTx(ctx, u.db).Create(usr).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrUserDuplicate
	}

	return err
}

func (u *user) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var usr model.User

	err := GetTx(ctx, u.db).Where("id = ?", id).First(&usr).Error
	if err == nil {
		return &usr, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	return nil, err
}

func (u *user) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var usr model.User

	err := GetTx(ctx, u.db).Where("email = ?", email).First(&usr).Error
	if err == nil {
		return &usr, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	return nil, err
}
