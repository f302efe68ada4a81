package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
	ErrResetTokenInvalid   = errors.New("reset token is invalid or expired")
	ErrPasswordMismatch    = errors.New("current password is incorrect")
	ErrAccountLocked       = errors.New("account is locked")
	ErrOAuthStateMismatch  = errors.New("oauth state mismatch")
)
