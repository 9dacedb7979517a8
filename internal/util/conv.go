package util

import (
	"errors"
	"strconv"
)

var ErrInvalidID = errors.New("invalid id")

// ParseID 解析路径中的正整数 ID
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}

// ClampInt 解析查询参数，无效时取 def，并限制在 [min, max]
func ClampInt(s string, def, min, max int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		n = def
	}
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
