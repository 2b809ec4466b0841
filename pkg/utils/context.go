package utils

import (
	"context"

	"sourcing-system/pkg/contextkeys"
	apperrors "sourcing-system/pkg/errors"
)

// UserIDFromContext returns the authenticated user's ID placed there by the
// auth middleware.
func UserIDFromContext(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(contextkeys.UserIDKey).(int64)
	if !ok {
		return 0, apperrors.ErrClaimsNotFoundInContext
	}
	return id, nil
}

func RoleFromContext(ctx context.Context) (string, error) {
	role, ok := ctx.Value(contextkeys.UserRoleKey).(string)
	if !ok {
		return "", apperrors.ErrClaimsNotFoundInContext
	}
	return role, nil
}

func TenantIDFromContext(ctx context.Context) (string, error) {
	tenant, ok := ctx.Value(contextkeys.TenantIDKey).(string)
	if !ok {
		return "", apperrors.ErrClaimsNotFoundInContext
	}
	return tenant, nil
}
