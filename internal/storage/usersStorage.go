package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/laundromat/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	InsertUser = `INSERT INTO USERS (id, email, password, role, shop_id)
						VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid)
						ON CONFLICT (email) DO NOTHING
						RETURNING email;`
	GetUser = `SELECT id, email, password, role, COALESCE(shop_id::text, '') FROM USERS WHERE email=$1;`
)

type UserDatabase struct {
	DB *Database
}

// Создание хранилища
func NewUsersStorage(db *Database) UsersStorage {
	return &UserDatabase{DB: db}
}

func (s *UserDatabase) GetUser(ctx context.Context, email string) (*models.UserData, error) {
	var user models.UserData
	err := s.DB.Pool.QueryRow(ctx, GetUser, email).Scan(
		&user.UserID,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.ShopID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (s *UserDatabase) AddUser(ctx context.Context, user models.UserData) error {
	var prevEmail string
	userID := uuid.New().String()

	err := s.DB.Pool.QueryRow(ctx, InsertUser, userID, user.Email, user.PasswordHash, user.Role, user.ShopID).Scan(&prevEmail)

	// Успешное добавление
	if err == nil {
		return nil
	}

	// DO NOTHING при конфликте не возвращает строку
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrAlreadyExists
	}

	// Проверяем именно нарушение уникальности (код 23505)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadyExists
	}

	// Все остальные ошибки
	return fmt.Errorf("failed to add user: %w", err)
}
