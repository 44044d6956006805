package entity

import (
	"time"

	"github.com/jhoicas/master-auth-service/internal/domain/types"
)

// User cuenta de usuario. Email es único en todo el almacén.
type User struct {
	ID          int64 // 0 hasta que se persiste
	Email       types.Email
	FirstName   types.Name
	LastName    types.Name
	Password    types.PasswordHash // nunca la contraseña en claro
	CompanyName types.Optional[types.CompanyName]
	Role        Role
	Enabled     bool
	Locked      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
