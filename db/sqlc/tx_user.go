package db

import (
	"context"
	"fmt"
)

// CreateUserTxParams contains the input parameters of the user registration transaction
type CreateUserTxParams struct {
	CreateUserParams
	Roles []string // roles granted at registration, defaults to resident only
}

// CreateUserTxResult is the result of the user registration transaction
type CreateUserTxResult struct {
	User  User
	Roles []UserRole
}

// CreateUserTx creates a new user and grants the initial roles in a single transaction
func (store *SQLStore) CreateUserTx(ctx context.Context, arg CreateUserTxParams) (CreateUserTxResult, error) {
	var result CreateUserTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		// 1. Create the user account
		result.User, err = q.CreateUser(ctx, arg.CreateUserParams)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		// 2. Grant the initial roles
		for _, role := range arg.Roles {
			userRole, err := q.CreateUserRole(ctx, CreateUserRoleParams{
				UserID: result.User.ID,
				Role:   role,
			})
			if err != nil {
				return fmt.Errorf("create user role %s: %w", role, err)
			}
			result.Roles = append(result.Roles, userRole)
		}

		return nil
	})

	return result, err
}
