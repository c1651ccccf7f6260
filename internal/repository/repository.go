package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const mysqlDuplicateEntry = 1062

// isDuplicateEntry reports whether err is a unique-constraint violation.
// 동시 요청으로 같은 (channel, user) 구독 행이 중복 삽입되는 경우를
// "이미 구독 중" 에러로 번역하기 위해 사용한다.
func isDuplicateEntry(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}
	return false
}
