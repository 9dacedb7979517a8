package model

import "time"

// 可追踪的每日活动类型
const (
	ActivityWorkout    = "workout"
	ActivityMeditation = "meditation"
	ActivityReading    = "reading"
	ActivityHydration  = "hydration"
)

var ActivityKinds = []string{ActivityWorkout, ActivityMeditation, ActivityReading, ActivityHydration}

func IsActivityKind(kind string) bool {
	for _, k := range ActivityKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// ActivityEntry 用户某一天某类活动的完成记录，(user_id, kind, date) 唯一
// swagger:model ActivityEntry
type ActivityEntry struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_activity_user_kind_date,priority:1" json:"userId"`
	Kind      string    `gorm:"size:32;not null;uniqueIndex:idx_activity_user_kind_date,priority:2" json:"kind"`
	Date      string    `gorm:"size:10;not null;uniqueIndex:idx_activity_user_kind_date,priority:3" json:"date"` // YYYY-MM-DD
	Completed bool      `gorm:"not null" json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ActivityEntry) TableName() string {
	return "activity_entries"
}
