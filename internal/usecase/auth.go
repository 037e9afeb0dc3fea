package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/vendapro/crm-api/internal/entity"
	"github.com/vendapro/crm-api/pkg/token"
)

type AuthUseCase struct {
	UserRepo  UserRepositoryInterface
	JWTSecret string
}

func NewAuthUseCase(userRepo UserRepositoryInterface, jwtSecret string) *AuthUseCase {
	return &AuthUseCase{UserRepo: userRepo, JWTSecret: jwtSecret}
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	var fieldErrors []FieldError
	if strings.TrimSpace(input.FullName) == "" {
		fieldErrors = append(fieldErrors, FieldError{"full_name", "is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		fieldErrors = append(fieldErrors, FieldError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		fieldErrors = append(fieldErrors, FieldError{"email", "is invalid"})
	}
	if len(input.Password) < 6 {
		fieldErrors = append(fieldErrors, FieldError{"password", "must have at least 6 characters"})
	}
	if len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, backendErr("register", err)
	}

	user := entity.NewUser(input.FullName, strings.ToLower(input.Email), string(hash))

	if err := uc.UserRepo.Create(ctx, user); err != nil {
		if errors.Is(err, entity.ErrDuplicateEmail) {
			return nil, &ValidationError{Fields: []FieldError{{"email", "already registered"}}}
		}
		return nil, backendErr("register", err)
	}

	return user, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, &ValidationError{Fields: []FieldError{{"credentials", "email and password are required"}}}
	}

	user, err := uc.UserRepo.FindByEmail(ctx, strings.ToLower(input.Email))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, &NotFoundError{Entity: "user", ID: input.Email}
		}
		return nil, backendErr("login", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, &NotFoundError{Entity: "user", ID: input.Email}
	}

	signed, err := token.Generate(uc.JWTSecret, user.ID, user.Email)
	if err != nil {
		return nil, backendErr("login", err)
	}

	return &LoginOutput{Token: signed, User: user}, nil
}
