package service

import (
	stderrors "errors"

	"gorm.io/gorm"
)

// isNotFound 判断是否 gorm 未命中
func isNotFound(err error) bool {
	return stderrors.Is(err, gorm.ErrRecordNotFound)
}
