package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"qnaboard/config"
	"qnaboard/internal/dto"
	"qnaboard/internal/model"
	"qnaboard/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers unknown user ids and wrong passwords alike, so
// a login response does not reveal which of the two failed.
var ErrInvalidCredentials = errors.New("invalid user id or password")

type AuthService interface {
	Register(req dto.UserCreateDTO) (*dto.UserResponseDTO, error)
	Login(req dto.LoginDTO) (*dto.LoginResponseDTO, error)
	// Authenticate resolves a bearer token to the acting user.
	Authenticate(tokenString string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, cfg: cfg}
}

func (s *authService) Register(req dto.UserCreateDTO) (*dto.UserResponseDTO, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		UserID:   req.UserID,
		Password: string(hashed),
		Name:     req.Name,
		Email:    req.Email,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("userID", req.UserID).Msg("Register: failed to create user")
		return nil, err
	}
	var resp dto.UserResponseDTO
	copier.Copy(&resp, &user)
	return &resp, nil
}

func (s *authService) Login(req dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	user, err := s.userRepo.FindByUserID(req.UserID)
	if err != nil {
		log.Warn().Str("userID", req.UserID).Msg("Login: unknown user id")
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Warn().Str("userID", req.UserID).Msg("Login: password mismatch")
		return nil, ErrInvalidCredentials
	}

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(user.ID), 10),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	resp := dto.LoginResponseDTO{Token: signed}
	copier.Copy(&resp.User, user)
	return &resp, nil
}

func (s *authService) Authenticate(tokenString string) (*model.User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	user, err := s.userRepo.FindByID(uint(id))
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
