package dto

// LoginRequest carries login credentials. The username is the matricule
// for teachers and students.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents an issued token pair.
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	TokenType        string `json:"tokenType"`
	ExpiresIn        int64  `json:"expiresIn"`
	RefreshExpiresIn int64  `json:"refreshExpiresIn"`
}

// RefreshTokenRequest carries a refresh token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ChangePasswordRequest carries a credential change for the
// authenticated account.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// ProfileResponse describes the authenticated account and its bound
// profile record, when one exists.
type ProfileResponse struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	RoleType  string  `json:"roleType"`
	FullName  *string `json:"fullName,omitempty"`
	Matricule *string `json:"matricule,omitempty"`
}
