package models

import "time"

// Settings is the single-row user profile. A closed set of typed fields
// rather than a key-value map so new settings are compile-time checked.
type Settings struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UpdatedAt time.Time `json:"updated_at"`

	Username      string  `json:"username"`
	HourlyWage    float64 `gorm:"default:0" json:"hourly_wage"` // 0 suppresses earnings output
	NetWageFactor float64 `gorm:"default:0.69" json:"net_wage_factor"`
	ShowEarnings  bool    `gorm:"default:true" json:"show_earnings"`
}
