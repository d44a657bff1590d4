package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/parvenuprompting/shiftshift/internal/models"
)

// GetSettings returns the settings row, creating it with defaults on first use
func GetSettings() (*models.Settings, error) {
	var settings models.Settings

	err := DB.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.Settings{
			NetWageFactor: 0.69,
			ShowEarnings:  true,
		}
		if err := DB.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

// SetHourlyWage updates the hourly wage. Zero suppresses earnings output.
func SetHourlyWage(wage float64) (*models.Settings, error) {
	if wage < 0 {
		return nil, fmt.Errorf("hourly wage cannot be negative")
	}

	settings, err := GetSettings()
	if err != nil {
		return nil, err
	}

	settings.HourlyWage = wage
	if err := DB.Save(settings).Error; err != nil {
		return nil, err
	}

	return settings, nil
}

// SetUsername updates the display name used on reports
func SetUsername(name string) (*models.Settings, error) {
	settings, err := GetSettings()
	if err != nil {
		return nil, err
	}

	settings.Username = name
	if err := DB.Save(settings).Error; err != nil {
		return nil, err
	}

	return settings, nil
}

// SetShowEarnings toggles earnings display on reports
func SetShowEarnings(show bool) (*models.Settings, error) {
	settings, err := GetSettings()
	if err != nil {
		return nil, err
	}

	settings.ShowEarnings = show
	if err := DB.Save(settings).Error; err != nil {
		return nil, err
	}

	return settings, nil
}
