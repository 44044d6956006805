package usecase

import (
	"context"

	"github.com/jhoicas/master-auth-service/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción del almacén, con repositorios atados a ella.
// Si fn devuelve error se hace rollback y el error se propaga sin modificar.
type TxRunner interface {
	Run(ctx context.Context, fn func(users repository.UserRepository, roles repository.RoleRepository) error) error
}
