package service

import (
	"errors"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apperrors "sourcing-system/pkg/errors"
)

// Roles the platform issues in its access tokens.
const (
	RoleBuyer      = "buyer"
	RoleSales      = "sales"
	RoleOperations = "operations"
	RoleAdmin      = "admin"
)

// JwtCustomClaim mirrors the claims of access tokens issued by the platform
// auth service. This service only validates tokens, it never issues them.
type JwtCustomClaim struct {
	UserID   int64  `json:"userId"`
	Role     string `json:"role"`
	TenantID string `json:"tenantId"`
	jwt.RegisteredClaims
}

type JWTService interface {
	ValidateToken(tokenString string) (*JwtCustomClaim, error)
}

type jwtService struct {
	secretKey string
	logger    *zap.Logger
}

func NewJWTService(secretKey string, logger *zap.Logger) JWTService {
	return &jwtService{secretKey: secretKey, logger: logger}
}

func (s *jwtService) ValidateToken(tokenString string) (*JwtCustomClaim, error) {
	claims := &JwtCustomClaim{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidSigningMethod
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		s.logger.Debug("token validation failed", zap.Error(err))
		return nil, apperrors.ErrInvalidToken
	}
	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
