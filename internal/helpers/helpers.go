package helpers

import (
	"context"
	"fmt"

	"github.com/denmor86/laundromat/internal/logger"
	"github.com/go-chi/jwtauth/v5"
)

// GetUserEmail - извлекает почту сотрудника из контекста JWT токена
func GetUserEmail(context context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(context)
	email, ok := claims["email"].(string)
	if !ok {
		logger.Warn("Undefined email from token")
		return "", fmt.Errorf("undefined email")
	}
	return email, nil
}

// GetUserShop - извлекает точку сотрудника из контекста JWT токена.
// Пустая строка - сотрудник не привязан к точке.
func GetUserShop(context context.Context) string {
	_, claims, _ := jwtauth.FromContext(context)
	shopID, _ := claims["shop_id"].(string)
	return shopID
}
