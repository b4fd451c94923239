package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PriceModel struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	Timestamp time.Time       `gorm:"column:timestamp;not null"`
	Market    string          `gorm:"type:varchar(50);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(18,8);not null"`
}

func (PriceModel) TableName() string {
	return "prices"
}
