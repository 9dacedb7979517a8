package repository

import (
	"errors"

	"planner_backend/internal/util"

	"gorm.io/gorm"
)

// translate 将 gorm 的未找到错误统一为 util.ErrNotFound
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrNotFound
	}
	return err
}

// dateRange 追加可选的日期区间条件
func dateRange(db *gorm.DB, column, from, to string) *gorm.DB {
	if from != "" {
		db = db.Where(column+" >= ?", from)
	}
	if to != "" {
		db = db.Where(column+" <= ?", to)
	}
	return db
}
