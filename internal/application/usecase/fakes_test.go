package usecase_test

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/master-auth-service/internal/domain/entity"
	"github.com/jhoicas/master-auth-service/internal/domain/failure"
	"github.com/jhoicas/master-auth-service/internal/domain/repository"
	"github.com/jhoicas/master-auth-service/internal/domain/types"
)

var errStoreDown = errors.New("store down")

// memStore implementa UserRepository, RoleRepository y TxRunner en memoria.
type memStore struct {
	mu          sync.Mutex
	users       map[int64]entity.User
	roles       map[types.RoleName]entity.Role
	nextID      int64
	saves       int
	lockedReads int // lecturas con reserva de fila
	// failOn hace fallar la operación indicada con errStoreDown.
	failOn      string
}

func newMemStore(seed ...types.RoleName) *memStore {
	s := &memStore{users: map[int64]entity.User{}, roles: map[types.RoleName]entity.Role{}}
	for i, name := range seed {
		s.roles[name] = entity.Role{ID: int64(i + 1), Name: name}
	}
	return s
}

func (s *memStore) Run(ctx context.Context, fn func(repository.UserRepository, repository.RoleRepository) error) error {
	return fn(s, roleView{s})
}

func (s *memStore) fail(op string) error {
	if s.failOn == op {
		return errStoreDown
	}
	return nil
}

func (s *memStore) ExistsByEmail(_ context.Context, email types.Email) (bool, error) {
	if err := s.fail("ExistsByEmail"); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[id]
	return ok, nil
}

func (s *memStore) FindByID(_ context.Context, id int64) (*entity.User, error) {
	if err := s.fail("FindByID"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *memStore) FindByIDForUpdate(ctx context.Context, id int64) (*entity.User, error) {
	s.mu.Lock()
	s.lockedReads++
	s.mu.Unlock()
	return s.FindByID(ctx, id)
}

func (s *memStore) FindByEmail(_ context.Context, email types.Email) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *memStore) Save(_ context.Context, user *entity.User) error {
	if err := s.fail("Save"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOn == "SaveUnique" {
		return failure.EmailAlreadyExists{}
	}
	if user.ID == 0 {
		s.nextID++
		user.ID = s.nextID
	} else if _, ok := s.users[user.ID]; !ok {
		return failure.IdNotExists{}
	}
	s.saves++
	s.users[user.ID] = *user
	return nil
}

func (s *memStore) RemoveByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	return nil
}

type roleView struct{ s *memStore }

func (r roleView) FindByName(_ context.Context, name types.RoleName) (*entity.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	role, ok := r.s.roles[name]
	if !ok {
		return nil, nil
	}
	return &role, nil
}

func (r roleView) Seed(_ context.Context, names []types.RoleName) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, n := range names {
		if _, ok := r.s.roles[n]; !ok {
			r.s.roles[n] = entity.Role{ID: int64(len(r.s.roles) + 1), Name: n}
		}
	}
	return nil
}

// plainEncoder codificador trivial: el hash es "h:" + contraseña.
type plainEncoder struct{ err error }

func (e plainEncoder) Hash(p types.Password) (types.PasswordHash, error) {
	if e.err != nil {
		return types.PasswordHash{}, e.err
	}
	return types.NewPasswordHash("h:" + p.Plaintext()), nil
}

func (e plainEncoder) Verify(p types.Password, h types.PasswordHash) (bool, error) {
	return h.Encoded() == "h:"+p.Plaintext(), nil
}
