package repository

import (
	"brainstorm-api/internal/models"

	"gorm.io/gorm"
)

// CardRepository is the narrow store surface the card handlers need.
type CardRepository interface {
	List() ([]models.Card, error)
	Create(card *models.Card) error
	UpdateColumn(id uint, columnName string) error
	Delete(id uint) error
}

type cardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) List() ([]models.Card, error) {
	cards := make([]models.Card, 0)
	if err := r.db.Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *cardRepository) Create(card *models.Card) error {
	return r.db.Create(card).Error
}

// UpdateColumn moves a card to a new column. Zero rows affected is not
// an error: moving an unknown id is a silent no-op.
func (r *cardRepository) UpdateColumn(id uint, columnName string) error {
	return r.db.Model(&models.Card{}).Where("id = ?", id).
		Update("column_name", columnName).Error
}

// Delete removes a card. Like UpdateColumn, an unknown id succeeds.
func (r *cardRepository) Delete(id uint) error {
	return r.db.Delete(&models.Card{}, id).Error
}
