package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/glen-sharp/emission-calculator-app/internal/domain"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/store/xpgx"
)

var userColumns = []string{"id", "email", "first_name", "last_name", "password_hash"}

func (s *pgStore) CreateUser(ctx context.Context, user *domain.User) error {
	query := builder().Insert(tableUsers).
		Columns(userColumns[1:]...).
		Values(user.Email, user.FirstName, user.LastName, user.PasswordHash).
		Suffix("RETURNING id")

	inserted, err := xpgx.Getx[domain.User](ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}

	user.ID = inserted.ID
	return nil
}

func (s *pgStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		Where(squirrel.Eq{"email": email})

	selected, err := xpgx.Getx[domain.User](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
