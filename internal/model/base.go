package model

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel 用户可删除的规划类实体共用字段（软删除）。
// 活动记录与徽章不嵌入它，二者依赖唯一索引，软删除会让唯一约束失效
type BaseModel struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
}
