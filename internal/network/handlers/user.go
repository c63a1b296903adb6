package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/denmor86/laundromat/internal/logger"
	"github.com/denmor86/laundromat/internal/models"
	"github.com/denmor86/laundromat/internal/services"
	"github.com/denmor86/laundromat/internal/validators"
)

// LoginResponse - данные сотрудника после входа
type LoginResponse struct {
	Email  string `json:"email"`
	Role   string `json:"role"`
	ShopID string `json:"shopId,omitempty"`
}

// RegisterUserHandler — регистрация нового сотрудника
func RegisterUserHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var user models.UserRequest
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if !validators.CheckEmail(user.Email) || user.Password == "" {
			logger.Warn("Invalid credentials format", user.Email)
			http.Error(w, "Email and password are required", http.StatusBadRequest)
			return
		}

		if err := i.RegisterUser(r.Context(), user); err != nil {
			// сотрудник уже существует
			if errors.Is(err, services.ErrUserAlreadyExists) {
				logger.Warn("Error register user", user.Email)
				http.Error(w, "email already exist", http.StatusConflict)
			} else {
				logger.Error("Error register user", err)
				http.Error(w, "Server error", http.StatusInternalServerError)
			}
			return
		}

		logger.Info("User registered", user.Email)
		w.WriteHeader(http.StatusOK)
	})
}

// AuthenticateUserHandle — аутентификация сотрудника
func AuthenticateUserHandle(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var user models.UserRequest
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if user.Email == "" || user.Password == "" {
			http.Error(w, "Email and password are required", http.StatusBadRequest)
			return
		}

		data, err := i.AuthenticateUser(r.Context(), user)
		if err != nil {
			logger.Error("Error authenticate user", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}
		// проверка авторизации
		if data == nil {
			logger.Warn("Authentication failed", user.Email)
			http.Error(w, "Invalid email/password", http.StatusUnauthorized)
			return
		}
		// генерация токена
		token, err := i.GenerateJWT(data)
		if err != nil {
			logger.Error("Failed to generate token", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}

		logger.Info("User authenticated", user.Email)
		w.Header().Set("Authorization", "Bearer "+token)
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(LoginResponse{
			Email:  data.Email,
			Role:   data.Role,
			ShopID: data.ShopID,
		}); err != nil {
			logger.Error("Failed to encode JSON response:", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}
