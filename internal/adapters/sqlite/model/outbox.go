package model

import "time"

type OutboxModel struct {
	ID         string    `gorm:"primaryKey;type:text"`
	EventName  string    `gorm:"type:text;not null"`
	EntityName string    `gorm:"type:text;not null"`
	EventData  string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

func (OutboxModel) TableName() string {
	return "outbox"
}

// All lists every model in migration order.
func All() []any {
	return []any{&ProductModel{}, &ProductOptionModel{}, &OutboxModel{}}
}
