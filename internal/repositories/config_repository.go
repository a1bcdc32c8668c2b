package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"elemental/internal/models"
)

// configRowID is the primary key of the single configuration row.
const configRowID uint = 1

var (
	// ErrStoreUnavailable is returned when the configuration cannot be read.
	ErrStoreUnavailable = errors.New("config store unavailable")
	// ErrStoreWriteFailed is returned when a write did not go through. The
	// stored configuration is left as it was before the call.
	ErrStoreWriteFailed = errors.New("config store write failed")
)

type ConfigRepository interface {
	Get(ctx context.Context) (*models.ConfigRecord, error)
	Set(ctx context.Context, record *models.ConfigRecord) error
	RemoveExample(ctx context.Context, pair models.ExamplePair) error
}

type configRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) ConfigRepository {
	return &configRepository{db: db}
}

// Get returns the stored configuration. A missing row yields the full
// defaults; missing columns are filled from the defaults individually.
func (r *configRepository) Get(ctx context.Context) (*models.ConfigRecord, error) {
	row, err := loadConfigRow(r.db.WithContext(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			record := models.DefaultConfig()
			return &record, nil
		}
		return nil, fmt.Errorf("%w: loading config: %w", ErrStoreUnavailable, err)
	}
	record := recordFromRow(row)
	return &record, nil
}

// Set replaces the stored configuration, examples included, in one transaction.
func (r *configRepository) Set(ctx context.Context, record *models.ConfigRecord) error {
	if record == nil {
		return fmt.Errorf("%w: config record is required", ErrStoreWriteFailed)
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return writeRecord(tx, *record)
	})
	if err != nil {
		return fmt.Errorf("%w: saving config: %w", ErrStoreWriteFailed, err)
	}
	return nil
}

// RemoveExample deletes the first stored example equal to pair and closes the
// gap in positions. No match is not an error.
func (r *configRepository) RemoveExample(ctx context.Context, pair models.ExamplePair) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := loadConfigRow(tx); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			// Nothing stored yet: the defaults are what the user sees, so
			// persist them before removing from them.
			if err := writeRecord(tx, models.DefaultConfig()); err != nil {
				return err
			}
		}

		var match models.Example
		err := tx.Where("config_id = ? AND from_str = ? AND result_str = ?", configRowID, pair.FromStr, pair.ResultStr).
			Order("position ASC").
			First(&match).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if err := tx.Delete(&models.Example{}, match.ID).Error; err != nil {
			return err
		}
		return tx.Model(&models.Example{}).
			Where("config_id = ? AND position > ?", configRowID, match.Position).
			Update("position", gorm.Expr("position - 1")).Error
	})
	if err != nil {
		return fmt.Errorf("%w: removing example: %w", ErrStoreWriteFailed, err)
	}
	return nil
}

func loadConfigRow(db *gorm.DB) (*models.AppConfig, error) {
	var row models.AppConfig
	err := db.Preload("Examples", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&row, configRowID).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func writeRecord(tx *gorm.DB, record models.ConfigRecord) error {
	version := 1
	var current models.AppConfig
	if err := tx.Select("id", "version").First(&current, configRowID).Error; err == nil {
		version = current.Version + 1
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row := models.AppConfig{
		ID:        configRowID,
		Version:   version,
		Model:     &record.Model,
		BaseURL:   &record.BaseURL,
		SystemMsg: &record.SystemMsg,
	}
	if err := tx.Omit(clause.Associations).Save(&row).Error; err != nil {
		return err
	}

	if err := tx.Where("config_id = ?", configRowID).Delete(&models.Example{}).Error; err != nil {
		return err
	}
	if len(record.Examples) == 0 {
		return nil
	}

	examples := make([]models.Example, 0, len(record.Examples))
	for i, ex := range record.Examples {
		examples = append(examples, models.Example{
			ConfigID:  configRowID,
			Position:  i,
			FromStr:   ex.FromStr,
			ResultStr: ex.ResultStr,
		})
	}
	return tx.Create(&examples).Error
}

func recordFromRow(row *models.AppConfig) models.ConfigRecord {
	record := models.ConfigRecord{
		Model:     stringOr(row.Model, models.DefaultModel),
		BaseURL:   stringOr(row.BaseURL, models.DefaultBaseURL),
		SystemMsg: stringOr(row.SystemMsg, models.DefaultSystemMsg),
		Examples:  make([]models.ExamplePair, 0, len(row.Examples)),
	}
	for _, ex := range row.Examples {
		record.Examples = append(record.Examples, models.ExamplePair{
			FromStr:   ex.FromStr,
			ResultStr: ex.ResultStr,
		})
	}
	return record
}

func stringOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
