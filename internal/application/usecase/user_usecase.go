package usecase

import (
	"context"
	"errors"

	"github.com/jonboulle/clockwork"
	"github.com/samber/oops"

	"github.com/jhoicas/master-auth-service/internal/application/dto"
	"github.com/jhoicas/master-auth-service/internal/application/ports"
	"github.com/jhoicas/master-auth-service/internal/domain/entity"
	"github.com/jhoicas/master-auth-service/internal/domain/failure"
	"github.com/jhoicas/master-auth-service/internal/domain/repository"
	"github.com/jhoicas/master-auth-service/internal/domain/types"
	"github.com/jhoicas/master-auth-service/internal/metrics"
)

// UserService aplica las reglas de negocio del ciclo de vida de las cuentas.
// Los errores devueltos son failure.Failure (el resolver HTTP los traduce) o fallas de
// infraestructura envueltas con código USER_STORE / CREDENTIALS.
type UserService struct {
	tx      TxRunner
	users   repository.UserRepository
	encoder ports.PasswordEncoder
	clock   clockwork.Clock
}

// NewUserService construye el servicio. users se usa para las lecturas fuera de transacción.
func NewUserService(tx TxRunner, users repository.UserRepository, encoder ports.PasswordEncoder, clock clockwork.Clock) *UserService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &UserService{tx: tx, users: users, encoder: encoder, clock: clock}
}

// CreateUser registra una cuenta nueva y devuelve su ID.
// Falla con EmailAlreadyExists si el email ya está tomado (también si otra petición lo
// insertó entre la comprobación y el guardado) y con RoleNotFound si el rol no está sembrado.
func (s *UserService) CreateUser(ctx context.Context, in dto.ValidatedRegistration) (int64, error) {
	var id int64
	err := s.tx.Run(ctx, func(users repository.UserRepository, roles repository.RoleRepository) error {
		exists, err := users.ExistsByEmail(ctx, in.Email)
		if err != nil {
			return storeErr(err, "exists by email")
		}
		if exists {
			return failure.EmailAlreadyExists{}
		}
		role, err := roles.FindByName(ctx, in.Role)
		if err != nil {
			return storeErr(err, "find role")
		}
		if role == nil {
			return failure.RoleNotFound{}
		}
		hash, err := s.encoder.Hash(in.Password)
		if err != nil {
			return oops.Code("CREDENTIALS").With("operation", "hash password").Wrap(err)
		}
		now := s.clock.Now().UTC()
		user := &entity.User{
			Email:       in.Email,
			FirstName:   in.FirstName,
			LastName:    in.LastName,
			Password:    hash,
			CompanyName: in.CompanyName,
			Role:        *role,
			Enabled:     true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := users.Save(ctx, user); err != nil {
			return storeErr(err, "save user")
		}
		id = user.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	metrics.UsersRegistered.Inc()
	return id, nil
}

// RemoveUser elimina la cuenta; IdNotExists si no existe.
func (s *UserService) RemoveUser(ctx context.Context, id int64) error {
	return s.tx.Run(ctx, func(users repository.UserRepository, _ repository.RoleRepository) error {
		exists, err := users.ExistsByID(ctx, id)
		if err != nil {
			return storeErr(err, "exists by id")
		}
		if !exists {
			return failure.IdNotExists{}
		}
		return storeErr(users.RemoveByID(ctx, id), "remove user")
	})
}

// RoleOf devuelve el rol actual de la cuenta; IdNotExists si no existe.
func (s *UserService) RoleOf(ctx context.Context, id int64) (types.RoleName, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return types.RoleName{}, storeErr(err, "find user")
	}
	if user == nil {
		return types.RoleName{}, failure.IdNotExists{}
	}
	return user.Role.Name, nil
}

// GetUser devuelve la proyección pública de la cuenta.
func (s *UserService) GetUser(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "find user")
	}
	if user == nil {
		return nil, failure.IdNotExists{}
	}
	return ToUserResponse(user), nil
}

// UpdateUser aplica los campos presentes en una sola escritura. El rol se resuelve antes
// de modificar nada, así un RoleNotFound no deja cambios a medias. La fila queda reservada
// desde la lectura, de modo que un cambio de contraseña concurrente no se pisa.
func (s *UserService) UpdateUser(ctx context.Context, id int64, in dto.ValidatedUserUpdate) (*dto.UserResponse, error) {
	var out *dto.UserResponse
	err := s.tx.Run(ctx, func(users repository.UserRepository, roles repository.RoleRepository) error {
		user, err := users.FindByIDForUpdate(ctx, id)
		if err != nil {
			return storeErr(err, "find user")
		}
		if user == nil {
			return failure.IdNotExists{}
		}
		if name, ok := in.Role.Get(); ok {
			role, err := roles.FindByName(ctx, name)
			if err != nil {
				return storeErr(err, "find role")
			}
			if role == nil {
				return failure.RoleNotFound{}
			}
			user.Role = *role
		}
		if v, ok := in.FirstName.Get(); ok {
			user.FirstName = v
		}
		if v, ok := in.LastName.Get(); ok {
			user.LastName = v
		}
		if in.CompanyName.IsSet() {
			user.CompanyName = in.CompanyName
		}
		user.UpdatedAt = s.clock.Now().UTC()
		if err := users.Save(ctx, user); err != nil {
			return storeErr(err, "save user")
		}
		out = ToUserResponse(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdatePassword reemplaza el hash de la contraseña.
func (s *UserService) UpdatePassword(ctx context.Context, id int64, in dto.ValidatedChangePassword) error {
	return s.tx.Run(ctx, func(users repository.UserRepository, _ repository.RoleRepository) error {
		user, err := users.FindByIDForUpdate(ctx, id)
		if err != nil {
			return storeErr(err, "find user")
		}
		if user == nil {
			return failure.IdNotExists{}
		}
		hash, err := s.encoder.Hash(in.Password)
		if err != nil {
			return oops.Code("CREDENTIALS").With("operation", "hash password").Wrap(err)
		}
		user.Password = hash
		user.UpdatedAt = s.clock.Now().UTC()
		return storeErr(users.Save(ctx, user), "save user")
	})
}

// ToUserResponse proyecta la entidad sin exponer el hash.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	out := &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email.String(),
		FirstName: u.FirstName.String(),
		LastName:  u.LastName.String(),
		Role:      u.Role.Name.String(),
	}
	if company, ok := u.CompanyName.Get(); ok {
		s := company.String()
		out.CompanyName = &s
	}
	return out
}

// storeErr deja pasar los failure.Failure (p. ej. la violación de unicidad que el
// repositorio ya tradujo) y envuelve el resto como falla del almacén.
func storeErr(err error, operation string) error {
	if err == nil {
		return nil
	}
	var f failure.Failure
	if errors.As(err, &f) {
		return f
	}
	return oops.Code("USER_STORE").With("operation", operation).Wrap(err)
}
