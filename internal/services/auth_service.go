package services

import (
	"brigada-service/internal/models"
	"brigada-service/internal/repository"
	"context"
	"fmt"
	"log"

	"firebase.google.com/go/v4/auth"
)

// TokenVerifier is the slice of the Firebase auth client this service needs;
// tests substitute a fake.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type IAuthService interface {
	VerifyAndGetUserData(ctx context.Context, idToken string) (*models.UserData, error)
	GetUserNameByUID(uid string) (string, error)
	Logout(uid string) bool
}

type AuthService struct {
	verifier TokenVerifier
	repo     repository.IBrigadistaRepository
}

func NewAuthService(verifier TokenVerifier, repo repository.IBrigadistaRepository) IAuthService {
	return &AuthService{
		verifier: verifier,
		repo:     repo,
	}
}

// VerifyAndGetUserData verifies the Firebase ID token and joins the decoded
// subject with the brigadista row to produce the login profile.
func (s *AuthService) VerifyAndGetUserData(ctx context.Context, idToken string) (*models.UserData, error) {
	token, err := s.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("error de autenticación: %w", err)
	}

	nombre, err := s.repo.GetNombreByUID(token.UID)
	if err != nil {
		return nil, fmt.Errorf("error al consultar datos de usuario: %w", err)
	}
	if nombre == "" {
		return nil, fmt.Errorf("usuario no encontrado en la base de datos")
	}

	email, _ := token.Claims["email"].(string)
	return &models.UserData{
		UID:    token.UID,
		Email:  email,
		Nombre: nombre,
	}, nil
}

func (s *AuthService) GetUserNameByUID(uid string) (string, error) {
	nombre, err := s.repo.GetNombreByUID(uid)
	if err != nil {
		return "", fmt.Errorf("error al obtener nombre de usuario: %w", err)
	}
	if nombre == "" {
		return "", ErrNotFound
	}
	return nombre, nil
}

// Logout has no server-side session to tear down; kept for surface parity
// with the mobile client.
func (s *AuthService) Logout(uid string) bool {
	log.Printf("logout processed for UID %s", uid)
	return true
}
