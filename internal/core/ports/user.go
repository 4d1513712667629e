package ports

import (
	"context"

	"github.com/Hadjerbacha/cetic-ged/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, username, email, passwordHash, role string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByID(ctx context.Context, id uint64) (domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
	// CountByIDs returns how many of the given ids reference an existing
	// user, as a single set-membership query.
	CountByIDs(ctx context.Context, ids []uint64) (int, error)
	Update(ctx context.Context, id uint64, input domain.UpdateUserInput) error
	Delete(ctx context.Context, id uint64) error
}

type AuthService interface {
	Register(ctx context.Context, input domain.RegisterInput) (domain.User, error)
	Login(ctx context.Context, creds domain.Credentials) (string, domain.User, error)
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id uint64) (domain.User, error)
	Update(ctx context.Context, id uint64, input domain.UpdateUserInput) error
	Delete(ctx context.Context, id uint64) error
}
