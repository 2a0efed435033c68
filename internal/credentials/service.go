// Package credentials is the local implementation of the credential
// service: bcrypt-hashed passwords, emailed confirmation codes and
// HS256-signed access/refresh tokens. Callers only depend on
// domain.CredentialService and never see any of this.
package credentials

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/snapfeed-app/snapfeed-backend/domain"
)

const refreshTTLFactor = 24 // refresh tokens live 24x longer than access tokens

type Service struct {
	credRepo  domain.CredentialRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

var _ domain.CredentialService = (*Service)(nil)

// NewService will create a new credential service object
func NewService(credRepo domain.CredentialRepository, jwtSecret []byte, tokenTTL time.Duration) *Service {
	return &Service{
		credRepo:  credRepo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *Service) SignUp(ctx context.Context, email, password string) (string, error) {
	if _, err := s.credRepo.GetByEmail(ctx, email); err == nil {
		return "", domain.ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	cred := domain.Credential{
		Email:        email,
		SubjectID:    uuid.NewString(),
		PasswordHash: string(hash),
		ConfirmCode:  newCode(),
	}
	if err := s.credRepo.Insert(ctx, &cred); err != nil {
		return "", err
	}

	// Delivery of the code is a mail concern outside this service.
	logrus.Infof("confirmation code issued for new account")
	return cred.SubjectID, nil
}

func (s *Service) ConfirmEmail(ctx context.Context, email, code string) error {
	cred, err := s.credRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if cred.Confirmed {
		return nil
	}
	if cred.ConfirmCode == "" || cred.ConfirmCode != code {
		return domain.ErrBadParamInput
	}

	cred.Confirmed = true
	cred.ConfirmCode = ""
	return s.credRepo.Update(ctx, &cred)
}

func (s *Service) Login(ctx context.Context, email, password string) (domain.Tokens, error) {
	cred, err := s.credRepo.GetByEmail(ctx, email)
	if err != nil {
		return domain.Tokens{}, err
	}
	if !cred.Confirmed {
		return domain.Tokens{}, domain.ErrInvalidOperation
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return domain.Tokens{}, domain.ErrBadParamInput
	}

	access, err := s.signToken(cred.SubjectID, s.tokenTTL)
	if err != nil {
		return domain.Tokens{}, err
	}
	refresh, err := s.signToken(cred.SubjectID, s.tokenTTL*refreshTTLFactor)
	if err != nil {
		return domain.Tokens{}, err
	}

	return domain.Tokens{
		Email:        email,
		Token:        access,
		RefreshToken: refresh,
	}, nil
}

func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	cred, err := s.credRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	cred.ResetCode = newCode()
	if err := s.credRepo.Update(ctx, &cred); err != nil {
		return err
	}

	logrus.Infof("password reset code issued")
	return nil
}

func (s *Service) ConfirmPassword(ctx context.Context, email, password, code string) error {
	cred, err := s.credRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if cred.ResetCode == "" || cred.ResetCode != code {
		return domain.ErrBadParamInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	cred.PasswordHash = string(hash)
	cred.ResetCode = ""
	return s.credRepo.Update(ctx, &cred)
}

func (s *Service) signToken(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// newCode returns a 6-digit numeric code.
func newCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		// crypto/rand only fails when the platform source is broken
		panic(err)
	}
	return fmt.Sprintf("%06d", n.Int64())
}
