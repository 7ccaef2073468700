// Package access проверяет вызывающего: непустой идентификатор и принадлежность к корню авторизации.
package access

import (
	"errors"
	"strings"
)

// Ошибки валидации вызывающего.
var (
	ErrEmptyCaller    = errors.New("caller identity is empty")
	ErrNotAuthority   = errors.New("caller is not the authorization root")
	ErrEmptyAuthority = errors.New("authorization root is not configured")
)

// Authority — единственный привилегированный аккаунт:
// верифицирует гидов и разрешает споры.
type Authority struct {
	account string
}

func NewAuthority(account string) (Authority, error) {
	account = strings.TrimSpace(account)
	if account == "" {
		return Authority{}, ErrEmptyAuthority
	}
	return Authority{account: account}, nil
}

func (a Authority) Account() string {
	return a.account
}

// Check возвращает ErrNotAuthority, если caller не корень авторизации.
func (a Authority) Check(caller string) error {
	if a.account == "" || caller != a.account {
		return ErrNotAuthority
	}
	return nil
}

// ValidateCaller:
//   - отбрасывает пустой идентификатор;
//   - не нормализует значение: идентичность задаёт окружение исполнения.
func ValidateCaller(caller string) error {
	if strings.TrimSpace(caller) == "" {
		return ErrEmptyCaller
	}
	return nil
}
