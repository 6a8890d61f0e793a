package models

// Card represents a single movable unit of board content.
// ColumnName is a free-form label, not an enumeration: the board
// accepts any string, including ones never seen before.
type Card struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Text       string `json:"text"`
	ColumnName string `json:"columnName" gorm:"column:column_name"`
}

// TableName specifies the table name for the Card model
func (Card) TableName() string {
	return "cards"
}
