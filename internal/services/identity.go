package services

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/laundromat/internal/config"
	"github.com/denmor86/laundromat/internal/logger"
	"github.com/denmor86/laundromat/internal/models"
	"github.com/denmor86/laundromat/internal/storage"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserAlreadyExists = errors.New("user already exists")
)

const (
	TokenSecterAlgo     = "HS256"
	TokenExpirationTime = 24 * time.Hour
)

type IdentityService interface {
	RegisterUser(ctx context.Context, user models.UserRequest) error
	AuthenticateUser(ctx context.Context, user models.UserRequest) (*models.UserData, error)
	GenerateJWT(user *models.UserData) (string, error)
	GetTokenAuth() *jwtauth.JWTAuth
}

type Identity struct {
	JWTAuth *jwtauth.JWTAuth
	Storage storage.UsersStorage
}

// Создание сервиса
func NewIdentity(cfg config.Config, storage storage.UsersStorage) IdentityService {
	tokenAuth := jwtauth.New(TokenSecterAlgo, []byte(cfg.Server.JWTSecret), nil)
	return &Identity{JWTAuth: tokenAuth, Storage: storage}
}

// Регистрация нового сотрудника.
func (i *Identity) RegisterUser(ctx context.Context, user models.UserRequest) error {
	logger.Info("Register user:", user.Email)

	existing, _ := i.Storage.GetUser(ctx, user.Email)
	if existing != nil {
		logger.Warn("User already exist")
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", err)
		return err
	}

	role := user.Role
	if role == "" {
		role = models.UserRoleStaff
	}

	err = i.Storage.AddUser(ctx, models.UserData{
		Email:        user.Email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		ShopID:       user.ShopID,
	})
	if err != nil {
		// гонка двух регистраций - конфликт по почте
		if errors.Is(err, storage.ErrAlreadyExists) {
			return ErrUserAlreadyExists
		}
		logger.Error("Error registering user", user.Email, err)
		return err
	}
	return nil
}

// Аутентификация сотрудника. Неверный пароль - nil без ошибки.
func (i *Identity) AuthenticateUser(ctx context.Context, user models.UserRequest) (*models.UserData, error) {
	logger.Info("Authenticate user", user.Email)

	data, err := i.Storage.GetUser(ctx, user.Email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			logger.Warn("User not found", user.Email)
			return nil, nil
		}
		logger.Error("Error getting user", err)
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(data.PasswordHash), []byte(user.Password))
	if err != nil {
		logger.Warn("Invalid password", user.Email)
		return nil, nil
	}

	logger.Info("User authenticated", user.Email)
	return data, nil
}

// Создание строки JWT токена c ролью и точкой сотрудника
func (i *Identity) GenerateJWT(user *models.UserData) (string, error) {
	expirationTime := time.Now().Add(TokenExpirationTime)

	_, tokenString, err := i.JWTAuth.Encode(map[string]interface{}{
		"email":   user.Email,
		"role":    user.Role,
		"shop_id": user.ShopID,
		"exp":     expirationTime,
	})
	return tokenString, err
}

// Возвращаем указатель на JWTAuth (chi)
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}
