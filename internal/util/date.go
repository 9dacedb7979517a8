package util

import (
	"fmt"
	"time"
)

// ParseDate 解析 YYYY-MM-DD，返回 UTC 零点，便于按自然日加减
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// DateIn 返回 t 在 loc 时区下的日历日期
func DateIn(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DateFormat)
}

// AddDays 对日期字符串做自然日加减
func AddDays(date string, days int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, days)), nil
}

// ValidateRange 校验 from <= to，空值表示不限
func ValidateRange(from, to string) error {
	if from != "" {
		if _, err := ParseDate(from); err != nil {
			return err
		}
	}
	if to != "" {
		if _, err := ParseDate(to); err != nil {
			return err
		}
	}
	if from != "" && to != "" && from > to {
		return ErrInvalidRange
	}
	return nil
}
