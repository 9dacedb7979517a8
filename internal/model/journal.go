package model

import "strings"

// swagger:model JournalEntry
type JournalEntry struct {
	BaseModel
	UserID    uint   `gorm:"index;not null" json:"userId"`
	EntryDate string `gorm:"size:10;index;not null" json:"entryDate"`
	Title     string `gorm:"size:150;not null" json:"title"`
	Body      string `gorm:"type:text" json:"body"`
	Mood      string `gorm:"size:32" json:"mood"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}

// swagger:model JournalPatch
type JournalPatch struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
	Mood  *string `json:"mood"`
}

func (p JournalPatch) Validate() error {
	if p.Title == nil && p.Body == nil && p.Mood == nil {
		return ErrEmptyPatch
	}
	if p.Title != nil {
		if err := validTitle("title", *p.Title, 150); err != nil {
			return err
		}
	}
	if p.Mood != nil && len(*p.Mood) > 32 {
		return invalidField("mood", "is too long")
	}
	return nil
}

func (p JournalPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.Title != nil {
		changes["title"] = strings.TrimSpace(*p.Title)
	}
	if p.Body != nil {
		changes["body"] = *p.Body
	}
	if p.Mood != nil {
		changes["mood"] = *p.Mood
	}
	return changes
}

func (e *JournalEntry) Validate() error {
	if err := validTitle("title", e.Title, 150); err != nil {
		return err
	}
	if len(e.Mood) > 32 {
		return invalidField("mood", "is too long")
	}
	return nil
}
