package model

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Event 日程事件
// swagger:model Event
type Event struct {
	BaseModel
	UserID   uint       `gorm:"index;not null" json:"userId"`
	Title    string     `gorm:"size:150;not null" json:"title"`
	Notes    string     `gorm:"type:text" json:"notes"`
	Location string     `gorm:"size:255" json:"location"`
	StartsAt time.Time  `gorm:"index;not null" json:"startsAt"`
	EndsAt   *time.Time `json:"endsAt"`
	AllDay   bool       `gorm:"default:false" json:"allDay"`
}

func (Event) TableName() string {
	return "events"
}

func (e *Event) Validate() error {
	if err := validTitle("title", e.Title, 150); err != nil {
		return err
	}
	if e.StartsAt.IsZero() {
		return invalidField("startsAt", "is required")
	}
	if e.EndsAt != nil && e.EndsAt.Before(e.StartsAt) {
		return invalidField("endsAt", "must not be before startsAt")
	}
	return nil
}

// NormalizeTimes 入库前统一转为 UTC
func (e *Event) NormalizeTimes() {
	e.StartsAt = e.StartsAt.UTC()
	if e.EndsAt != nil {
		end := e.EndsAt.UTC()
		e.EndsAt = &end
	}
}

// swagger:model EventPatch
type EventPatch struct {
	Title    *string    `json:"title"`
	Notes    *string    `json:"notes"`
	Location *string    `json:"location"`
	StartsAt *time.Time `json:"startsAt"`
	EndsAt   *time.Time `json:"endsAt"`
	AllDay   *bool      `json:"allDay"`
}

func (p EventPatch) Validate() error {
	if p.Title == nil && p.Notes == nil && p.Location == nil && p.StartsAt == nil && p.EndsAt == nil && p.AllDay == nil {
		return ErrEmptyPatch
	}
	if p.Title != nil {
		if err := validTitle("title", *p.Title, 150); err != nil {
			return err
		}
	}
	if p.Location != nil && utf8.RuneCountInString(*p.Location) > 255 {
		return invalidField("location", "is too long")
	}
	if p.StartsAt != nil && p.StartsAt.IsZero() {
		return invalidField("startsAt", "is required")
	}
	return nil
}

// ApplyTo 将补丁合并到已有事件上，用于合并后的整体校验
func (p EventPatch) ApplyTo(e *Event) {
	if p.Title != nil {
		e.Title = strings.TrimSpace(*p.Title)
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.StartsAt != nil {
		e.StartsAt = *p.StartsAt
	}
	if p.EndsAt != nil {
		e.EndsAt = p.EndsAt
	}
	if p.AllDay != nil {
		e.AllDay = *p.AllDay
	}
}

func (p EventPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.Title != nil {
		changes["title"] = strings.TrimSpace(*p.Title)
	}
	if p.Notes != nil {
		changes["notes"] = *p.Notes
	}
	if p.Location != nil {
		changes["location"] = *p.Location
	}
	if p.StartsAt != nil {
		changes["starts_at"] = p.StartsAt.UTC()
	}
	if p.EndsAt != nil {
		changes["ends_at"] = p.EndsAt.UTC()
	}
	if p.AllDay != nil {
		changes["all_day"] = *p.AllDay
	}
	return changes
}
