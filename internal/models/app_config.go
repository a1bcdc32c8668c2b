package models

import "time"

// AppConfig is the persisted configuration row. Single-row table (ID=1).
// Nil fields were never written and are filled from defaults on read.
type AppConfig struct {
	ID        uint    `gorm:"primaryKey"`
	Version   int     `gorm:"not null;default:1"`
	Model     *string `gorm:"size:255"`
	BaseURL   *string `gorm:"size:1024"`
	SystemMsg *string `gorm:"type:text"`
	UpdatedAt time.Time

	Examples []Example `gorm:"foreignKey:ConfigID;constraint:OnDelete:CASCADE"`
}

// Example is a persisted example pair. Position keeps display order.
type Example struct {
	ID        uint   `gorm:"primaryKey"`
	ConfigID  uint   `gorm:"not null;index:idx_example_config_position"`
	Position  int    `gorm:"not null;index:idx_example_config_position"`
	FromStr   string `gorm:"type:text;not null"`
	ResultStr string `gorm:"type:text;not null"`
}
