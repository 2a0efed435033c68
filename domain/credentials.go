package domain

import (
	"context"
	"time"
)

// Tokens is the credential set returned by a successful login.
type Tokens struct {
	Email        string `json:"email"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// CredentialService is the opaque identity collaborator. It owns everything
// about credential issuance; the rest of the system only ever sees the
// subject id it returns.
type CredentialService interface {
	// SignUp registers the email/password pair and returns the new subject
	// id. A confirmation code is issued out of band.
	// Returns ErrConflict if the email is already registered.
	SignUp(ctx context.Context, email, password string) (string, error)

	// ConfirmEmail verifies the confirmation code and activates the account.
	ConfirmEmail(ctx context.Context, email, code string) error

	// Login verifies the credentials of a confirmed account and issues
	// access and refresh tokens.
	Login(ctx context.Context, email, password string) (Tokens, error)

	// ForgotPassword issues a password-reset code for the email.
	ForgotPassword(ctx context.Context, email string) error

	// ConfirmPassword sets a new password after verifying the reset code.
	ConfirmPassword(ctx context.Context, email, password, code string) error
}

// Credential is the stored credential record backing the local credential
// service. It lives in its own table and is never embedded in User.
type Credential struct {
	Email        string
	SubjectID    string
	PasswordHash string
	Confirmed    bool
	ConfirmCode  string
	ResetCode    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CredentialRepository persists credential records.
type CredentialRepository interface {
	// GetByEmail returns ErrNotFound when the email is not registered.
	GetByEmail(ctx context.Context, email string) (Credential, error)
	Insert(ctx context.Context, c *Credential) error
	Update(ctx context.Context, c *Credential) error
}
