package model

import "time"

// WellnessLog 每日健康记录，(user_id, date) 唯一
// swagger:model WellnessLog
type WellnessLog struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_wellness_user_date,priority:1" json:"userId"`
	Date         string    `gorm:"size:10;not null;uniqueIndex:idx_wellness_user_date,priority:2" json:"date"`
	Mood         int       `gorm:"default:0" json:"mood"` // 1-5，0 表示未填写
	SleepHours   float64   `gorm:"default:0" json:"sleepHours"`
	WaterGlasses int       `gorm:"default:0" json:"waterGlasses"`
	Note         string    `gorm:"type:text" json:"note"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (WellnessLog) TableName() string {
	return "wellness_logs"
}

func (w *WellnessLog) Validate() error {
	if w.Mood < 0 || w.Mood > 5 {
		return invalidField("mood", "must be between 1 and 5")
	}
	if w.SleepHours < 0 || w.SleepHours > 24 {
		return invalidField("sleepHours", "must be between 0 and 24")
	}
	if w.WaterGlasses < 0 || w.WaterGlasses > 50 {
		return invalidField("waterGlasses", "must be between 0 and 50")
	}
	return nil
}
