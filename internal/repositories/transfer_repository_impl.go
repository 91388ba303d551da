package repositories

import (
	"fmt"

	"bankcards/internal/models"

	"gorm.io/gorm"
)

type transferRepository struct {
	db *gorm.DB
}

func NewTransferRepository(db *gorm.DB) TransferRepository {
	return &transferRepository{
		db: db,
	}
}

func (r *transferRepository) GetByID(id uint) (*models.Transfer, error) {
	var transfer models.Transfer
	if err := r.db.First(&transfer, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}
	return &transfer, nil
}

func (r *transferRepository) FindByUserIDPaginated(userID uint, limit, offset int) ([]*models.Transfer, int64, error) {
	var transfers []*models.Transfer
	var total int64

	query := r.db.Model(&models.Transfer{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count user transfers: %w", err)
	}
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&transfers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list user transfers: %w", err)
	}
	return transfers, total, nil
}

func (r *transferRepository) FindByUserIDAndCardIDPaginated(userID, cardID uint, limit, offset int) ([]*models.Transfer, int64, error) {
	var transfers []*models.Transfer
	var total int64

	query := r.db.Model(&models.Transfer{}).
		Where("user_id = ? AND (from_card_id = ? OR to_card_id = ?)", userID, cardID, cardID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count card transfers: %w", err)
	}
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&transfers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list card transfers: %w", err)
	}
	return transfers, total, nil
}

func (r *transferRepository) FindByCardIDPaginated(cardID uint, limit, offset int) ([]*models.Transfer, int64, error) {
	var transfers []*models.Transfer
	var total int64

	query := r.db.Model(&models.Transfer{}).Where("from_card_id = ? OR to_card_id = ?", cardID, cardID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count card transfers: %w", err)
	}
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&transfers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list card transfers: %w", err)
	}
	return transfers, total, nil
}
