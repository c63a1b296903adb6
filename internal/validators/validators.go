package validators

import (
	"strings"

	"github.com/google/uuid"
)

// CheckOrderID проверяет, что идентификатор заказа - корректный UUID
func CheckOrderID(orderID string) bool {
	if _, err := uuid.Parse(strings.TrimSpace(orderID)); err != nil {
		return false
	}
	return true
}

// CheckEmail - минимальная проверка адреса почты: непустые локальная
// часть и домен, ровно один символ @
func CheckEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	domain := email[at+1:]
	return len(domain) > 0 && strings.Contains(domain, ".")
}
