package model

import (
	"time"
)

// swagger:model User
type User struct {
	BaseModel
	Name      string     `gorm:"size:100;not null" json:"name"`
	Email     string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password  string     `gorm:"size:100;not null" json:"-"`
	Avatar    string     `gorm:"size:255" json:"avatar"`
	Disabled  bool       `gorm:"default:false" json:"disabled"`
	LastLogin *time.Time `json:"lastLogin"`
	LastSeen  *time.Time `json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
