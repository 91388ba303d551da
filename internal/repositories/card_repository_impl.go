package repositories

import (
	"fmt"

	"bankcards/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type cardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{
		db: db,
	}
}

func (r *cardRepository) Create(card *models.Card) error {
	result := r.db.Create(card)
	if result.Error != nil {
		return fmt.Errorf("failed to create card: %w", result.Error)
	}
	return nil
}

func (r *cardRepository) GetByID(id uint) (*models.Card, error) {
	var card models.Card
	if err := r.db.First(&card, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return &card, nil
}

func (r *cardRepository) GetByUserID(userID uint) ([]*models.Card, error) {
	var cards []*models.Card
	if err := r.db.Where("user_id = ?", userID).Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to get user cards: %w", err)
	}
	return cards, nil
}

func (r *cardRepository) FindByUserIDPaginated(userID uint, limit, offset int) ([]*models.Card, int64, error) {
	var cards []*models.Card
	var total int64

	query := r.db.Model(&models.Card{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count user cards: %w", err)
	}
	if err := query.Order("id").Limit(limit).Offset(offset).Find(&cards).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list user cards: %w", err)
	}
	return cards, total, nil
}

func (r *cardRepository) FindAllPaginated(limit, offset int) ([]*models.Card, int64, error) {
	var cards []*models.Card
	var total int64

	if err := r.db.Model(&models.Card{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count cards: %w", err)
	}
	if err := r.db.Order("id").Limit(limit).Offset(offset).Find(&cards).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, total, nil
}

func (r *cardRepository) Update(card *models.Card) error {
	result := r.db.Save(card)
	if result.Error != nil {
		return fmt.Errorf("failed to update card: %w", result.Error)
	}
	return nil
}

func (r *cardRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Card{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete card: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// AdjustBalance performs the signed balance change as one conditional
// UPDATE so concurrent adjustments against the same card serialize at
// the row level and a debit can never take the balance below zero.
func (r *cardRepository) AdjustBalance(cardID uint, delta decimal.Decimal) error {
	result := r.db.Model(&models.Card{}).
		Where("id = ? AND balance + ? >= 0", cardID, delta).
		Update("balance", gorm.Expr("balance + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("failed to adjust balance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Card{}).Where("id = ?", cardID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to adjust balance: %w", err)
		}
		if count == 0 {
			return ErrCardNotFound
		}
		return ErrBalanceConstraint
	}
	return nil
}

func (r *cardRepository) CreateTransfer(transfer *models.Transfer) error {
	result := r.db.Create(transfer)
	if result.Error != nil {
		return fmt.Errorf("failed to create transfer: %w", result.Error)
	}
	return nil
}

func (r *cardRepository) ExecuteInTransaction(fn func(CardRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := &cardRepository{db: tx}
		return fn(txRepo)
	})
}
