package entity

import "github.com/jhoicas/master-auth-service/internal/domain/types"

// Role rol sembrado en el almacén. Inmutable; se referencia desde User, no se embebe.
type Role struct {
	ID   int64
	Name types.RoleName
}
