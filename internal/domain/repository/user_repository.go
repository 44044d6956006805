package repository

import (
	"context"

	"github.com/jhoicas/master-auth-service/internal/domain/entity"
	"github.com/jhoicas/master-auth-service/internal/domain/types"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven (nil, nil) cuando no hay registro.
type UserRepository interface {
	ExistsByEmail(ctx context.Context, email types.Email) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	// FindByIDForUpdate es FindByID reservando la fila para escribirla en la misma transacción.
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email types.Email) (*entity.User, error)
	// Save inserta si user.ID es 0 (y asigna el ID) o actualiza en otro caso.
	// Una violación de unicidad de email se devuelve como failure.EmailAlreadyExists y una
	// actualización que no encuentra la fila como failure.IdNotExists.
	Save(ctx context.Context, user *entity.User) error
	RemoveByID(ctx context.Context, id int64) error
}
