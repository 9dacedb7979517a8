package model

import (
	"strings"
	"unicode/utf8"
)

const (
	FrequencyDaily    = "daily"
	FrequencyWeekdays = "weekdays"
	FrequencyWeekly   = "weekly"
)

// swagger:model Habit
type Habit struct {
	BaseModel
	UserID      uint   `gorm:"index;not null" json:"userId"`
	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Frequency   string `gorm:"size:16;default:'daily'" json:"frequency"`
	Color       string `gorm:"size:16" json:"color"`
	Archived    bool   `gorm:"default:false" json:"archived"`
}

func (Habit) TableName() string {
	return "habits"
}

func validFrequency(f string) bool {
	return f == FrequencyDaily || f == FrequencyWeekdays || f == FrequencyWeekly
}

func validTitle(field, title string, max int) error {
	if strings.TrimSpace(title) == "" {
		return invalidField(field, "must not be empty")
	}
	if utf8.RuneCountInString(title) > max {
		return invalidField(field, "is too long")
	}
	return nil
}

// HabitPatch 习惯的部分更新，nil 字段表示不修改
// swagger:model HabitPatch
type HabitPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Frequency   *string `json:"frequency"`
	Color       *string `json:"color"`
	Archived    *bool   `json:"archived"`
}

func (p HabitPatch) Validate() error {
	if p.Title == nil && p.Description == nil && p.Frequency == nil && p.Color == nil && p.Archived == nil {
		return ErrEmptyPatch
	}
	if p.Title != nil {
		if err := validTitle("title", *p.Title, 100); err != nil {
			return err
		}
	}
	if p.Frequency != nil && !validFrequency(*p.Frequency) {
		return invalidField("frequency", "must be one of daily, weekdays, weekly")
	}
	if p.Color != nil && utf8.RuneCountInString(*p.Color) > 16 {
		return invalidField("color", "is too long")
	}
	return nil
}

// Changes 返回允许更新的列及其新值
func (p HabitPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.Title != nil {
		changes["title"] = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Frequency != nil {
		changes["frequency"] = *p.Frequency
	}
	if p.Color != nil {
		changes["color"] = *p.Color
	}
	if p.Archived != nil {
		changes["archived"] = *p.Archived
	}
	return changes
}

// Validate 创建时校验，空频率按 daily 处理
func (h *Habit) Validate() error {
	if err := validTitle("title", h.Title, 100); err != nil {
		return err
	}
	if h.Frequency == "" {
		h.Frequency = FrequencyDaily
	}
	if !validFrequency(h.Frequency) {
		return invalidField("frequency", "must be one of daily, weekdays, weekly")
	}
	if utf8.RuneCountInString(h.Color) > 16 {
		return invalidField("color", "is too long")
	}
	return nil
}
