package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/Seishinryoku00/Medical-Management-App/config"
	"github.com/Seishinryoku00/Medical-Management-App/internal/domain"
	"github.com/Seishinryoku00/Medical-Management-App/internal/repository"
	"github.com/Seishinryoku00/Medical-Management-App/pkg/auth"
)

type tokenClaims struct {
	jwt.RegisteredClaims
	Role domain.Role `json:"role"`
}

type AuthService struct {
	doctors  repository.DoctorRepository
	patients repository.PatientRepository
	jwt      config.JWTConfig
	logger   *zap.Logger
}

func NewAuthService(deps Deps) *AuthService {
	return &AuthService{
		doctors:  deps.Repos.Doctor,
		patients: deps.Repos.Patient,
		jwt:      deps.Config.JWT,
		logger:   deps.Logger,
	}
}

func (s *AuthService) LoginPatient(ctx context.Context, req domain.LoginRequest) (*domain.TokenResponse, error) {
	patient, err := s.patients.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.verify(req.Password, patient.PasswordHash, patient.Active); err != nil {
		return nil, err
	}

	return s.issueToken(patient.ID, domain.RolePatient, patient.FirstName, patient.LastName)
}

func (s *AuthService) LoginDoctor(ctx context.Context, req domain.LoginRequest) (*domain.TokenResponse, error) {
	doctor, err := s.doctors.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrDoctorNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.verify(req.Password, doctor.PasswordHash, doctor.Active); err != nil {
		return nil, err
	}

	return s.issueToken(doctor.ID, domain.RoleDoctor, doctor.FirstName, doctor.LastName)
}

func (s *AuthService) verify(password, passwordHash string, active bool) error {
	ok, err := auth.VerifyPassword(password, passwordHash)
	if err != nil {
		return fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return domain.ErrInvalidCredentials
	}
	if !active {
		return domain.ErrAccountInactive
	}
	return nil
}

func (s *AuthService) issueToken(id int64, role domain.Role, firstName, lastName string) (*domain.TokenResponse, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(id, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwt.AccessTokenTTL)),
		},
		Role: role,
	})

	signed, err := token.SignedString([]byte(s.jwt.SigningKey))
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}

	return &domain.TokenResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		Role:        role,
		UserID:      id,
		FirstName:   firstName,
		LastName:    lastName,
	}, nil
}

// ParseToken validates the access token and resolves the caller identity.
func (s *AuthService) ParseToken(accessToken string) (domain.Actor, error) {
	token, err := jwt.ParseWithClaims(accessToken, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwt.SigningKey), nil
	})
	if err != nil {
		return domain.Actor{}, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return domain.Actor{}, errors.New("invalid token claims")
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("parsing token subject: %w", err)
	}
	if claims.Role != domain.RolePatient && claims.Role != domain.RoleDoctor {
		return domain.Actor{}, errors.New("unknown token role")
	}

	return domain.Actor{ID: id, Role: claims.Role}, nil
}
