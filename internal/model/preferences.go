package model

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"

	MaxGoals      = 20
	MaxGoalLength = 200
)

// Preferences 客户端的主题与目标设置，每个用户一行
// swagger:model Preferences
type Preferences struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"userId"`
	Theme     string    `gorm:"size:16;not null" json:"theme"`
	Goals     []string  `gorm:"serializer:json;type:text" json:"goals"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Preferences) TableName() string {
	return "preferences"
}

func DefaultPreferences(userID uint) *Preferences {
	return &Preferences{
		UserID: userID,
		Theme:  ThemeSystem,
		Goals:  []string{},
	}
}

func (p *Preferences) Validate() error {
	switch p.Theme {
	case ThemeLight, ThemeDark, ThemeSystem:
	default:
		return invalidField("theme", "must be one of light, dark, system")
	}
	if len(p.Goals) > MaxGoals {
		return invalidField("goals", "has too many items")
	}
	for _, g := range p.Goals {
		if strings.TrimSpace(g) == "" {
			return invalidField("goals", "must not contain empty items")
		}
		if utf8.RuneCountInString(g) > MaxGoalLength {
			return invalidField("goals", "contains an item that is too long")
		}
	}
	return nil
}
