// Package record traduce entre las filas persistidas y las entidades de dominio.
// Lo comparten los adaptadores de PostgreSQL y SQLite.
package record

import (
	"fmt"
	"time"

	"github.com/jhoicas/master-auth-service/internal/domain/entity"
	"github.com/jhoicas/master-auth-service/internal/domain/types"
)

// User fila de la tabla users unida con roles.
type User struct {
	ID           int64
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	CompanyName  *string
	RoleID       int64
	RoleName     string
	Enabled      bool
	Locked       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ToEntity rehidrata la entidad pasando cada columna por su constructor. Una fila que ya
// no cumple las reglas se reporta como error de datos, no como Failure.
func (r User) ToEntity() (*entity.User, error) {
	email, ef := types.NewEmail(r.Email)
	if ef != nil {
		return nil, corrupt(r.ID, "email", ef)
	}
	first, nf := types.NewName(r.FirstName)
	if nf != nil {
		return nil, corrupt(r.ID, "first_name", nf)
	}
	last, nf := types.NewName(r.LastName)
	if nf != nil {
		return nil, corrupt(r.ID, "last_name", nf)
	}
	role, rf := types.ParseRoleName(r.RoleName)
	if rf != nil {
		return nil, corrupt(r.ID, "role", rf)
	}
	company := types.None[types.CompanyName]()
	if r.CompanyName != nil {
		c, cf := types.NewCompanyName(*r.CompanyName)
		if cf != nil {
			return nil, corrupt(r.ID, "company_name", cf)
		}
		company = types.Some(c)
	}
	return &entity.User{
		ID:          r.ID,
		Email:       email,
		FirstName:   first,
		LastName:    last,
		Password:    types.NewPasswordHash(r.PasswordHash),
		CompanyName: company,
		Role:        entity.Role{ID: r.RoleID, Name: role},
		Enabled:     r.Enabled,
		Locked:      r.Locked,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

// FromEntity aplana la entidad a columnas.
func FromEntity(u *entity.User) User {
	r := User{
		ID:           u.ID,
		Email:        u.Email.String(),
		FirstName:    u.FirstName.String(),
		LastName:     u.LastName.String(),
		PasswordHash: u.Password.Encoded(),
		RoleID:       u.Role.ID,
		RoleName:     u.Role.Name.String(),
		Enabled:      u.Enabled,
		Locked:       u.Locked,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	if c, ok := u.CompanyName.Get(); ok {
		s := c.String()
		r.CompanyName = &s
	}
	return r
}

func corrupt(id int64, column string, cause error) error {
	return fmt.Errorf("user %d: columna %s inválida: %s", id, column, cause.Error())
}
