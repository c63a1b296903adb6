package models

// Роли сотрудников
const (
	UserRoleAdmin = "admin"
	UserRoleStaff = "staff"
)

// UserRequest - модель для регистрации и аутентификации сотрудника, приходит извне
type UserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
	ShopID   string `json:"shopId,omitempty"`
}

// UserData - модель сотрудника из хранилища
type UserData struct {
	UserID       string
	Email        string
	PasswordHash string
	Role         string
	ShopID       string
}
