package model

import "time"

// Badge 连续打卡里程碑徽章，一经颁发不再修改
// swagger:model Badge
type Badge struct {
	ID                  uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID              uint      `gorm:"not null;uniqueIndex:idx_badge_user_type_threshold,priority:1" json:"userId"`
	BadgeType           string    `gorm:"size:32;not null;uniqueIndex:idx_badge_user_type_threshold,priority:2" json:"badgeType"`
	StreakDaysThreshold int       `gorm:"not null;uniqueIndex:idx_badge_user_type_threshold,priority:3" json:"streakDaysThreshold"`
	BadgeName           string    `gorm:"size:100;not null" json:"badgeName"`
	Message             string    `gorm:"size:255" json:"message"`
	EarnedDate          string    `gorm:"size:10;not null" json:"earnedDate"`
	CreatedAt           time.Time `json:"createdAt"`
}

func (Badge) TableName() string {
	return "badges"
}

// Milestone 徽章里程碑定义
type Milestone struct {
	Threshold int    `json:"threshold"`
	Name      string `json:"name"`
	Message   string `json:"message"`
}

// WorkoutMilestones 按阈值升序排列
var WorkoutMilestones = []Milestone{
	{Threshold: 3, Name: "Getting Started", Message: "Three days in a row. The habit is taking shape, keep showing up!"},
	{Threshold: 7, Name: "Consistency Queen", Message: "A full week of workouts. Consistency is your superpower."},
	{Threshold: 30, Name: "LevelUP Legend", Message: "Thirty days straight. You are officially a legend."},
}

// DefaultMilestones 每种活动类型对应的里程碑表，未列出的类型不颁发徽章
func DefaultMilestones() map[string][]Milestone {
	return map[string][]Milestone{
		ActivityWorkout: WorkoutMilestones,
	}
}
