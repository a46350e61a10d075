package repository

import (
	"context"
	"errors"
	"time"

	"github.com/dukamart/storefront/internal/model"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound  = errors.New("TRANSACTION_NOT_FOUND")
	ErrTransactionDuplicate = errors.New("TRANSACTION_DUPLICATE")
	ErrNoRowsAffected       = errors.New("NO_ROWS_AFFECTED")
)

type TransactionRepository interface {
	Create(ctx context.Context, tx *model.Transaction) error
	GetByID(ctx context.Context, id int64) (*model.Transaction, error)
	GetByProviderRef(ctx context.Context, method model.PaymentMethod, ref string) (*model.Transaction, error)
	Finalize(ctx context.Context, method model.PaymentMethod, ref string,
		status model.TransactionStatus, description string, secondaryRef *string) error
	ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]model.Transaction, error)
}

type transaction struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transaction{db: db}
}

func (t *transaction) Create(ctx context.Context, tx *model.Transaction) error {
	db := GetTx(ctx, t.db)

	err := db.Create(tx).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrTransactionDuplicate
	}

	return err
}

func (t *transaction) GetByID(ctx context.Context, id int64) (*model.Transaction, error) {
	var tx model.Transaction

	err := GetTx(ctx, t.db).Where("id = ?", id).First(&tx).Error
	if err == nil {
		return &tx, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}

	return nil, err
}

func (t *transaction) GetByProviderRef(ctx context.Context, method model.PaymentMethod, ref string) (*model.Transaction, error) {
	var tx model.Transaction

	err := GetTx(ctx, t.db).
		Where("payment_method = ? AND provider_ref = ?", method, ref).
		First(&tx).Error
	if err == nil {
		return &tx, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}

	return nil, err
}

// Finalize applies a terminal outcome as a single guarded update. The status
// predicate keeps a duplicate callback from ever rewriting a terminal row.
func (t *transaction) Finalize(ctx context.Context, method model.PaymentMethod, ref string,
	status model.TransactionStatus, description string, secondaryRef *string) error {

	updates := map[string]any{
		"status":             status,
		"result_description": description,
		"updated_at":         time.Now(),
	}

	if secondaryRef != nil {
		updates["provider_secondary_ref"] = *secondaryRef
	}

	result := GetTx(ctx, t.db).Model(&model.Transaction{}).
		Where("payment_method = ? AND provider_ref = ? AND status = ?",
			method, ref, model.TransactionStatusPending).
		Updates(updates)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func (t *transaction) ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]model.Transaction, error) {
	var txs []model.Transaction

	err := GetTx(ctx, t.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&txs).Error
	if err != nil {
		return nil, err
	}

	return txs, nil
}
