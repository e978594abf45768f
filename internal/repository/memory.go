package repository

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/gymverse/internal/error_values"
	"github.com/limbo/gymverse/pkg/entity"
)

// MemoryUsersRepo keeps users in process memory. Used when no database is configured.
type MemoryUsersRepo struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*entity.User
	byEmail map[string]uuid.UUID
	now     func() time.Time
}

func NewMemoryUsersRepo() *MemoryUsersRepo {
	return &MemoryUsersRepo{
		byID:    make(map[uuid.UUID]*entity.User),
		byEmail: make(map[string]uuid.UUID),
		now:     time.Now,
	}
}

func (m *MemoryUsersRepo) Create(ctx context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := strings.ToLower(user.Email)
	if _, ok := m.byEmail[key]; ok {
		return errorvalues.ErrUserExists
	}
	user.ID = uuid.New()
	user.CreatedAt = m.now().UTC()
	m.byID[user.ID] = user.Clone()
	m.byEmail[key] = user.ID
	return nil
}

func (m *MemoryUsersRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	return m.byID[id].Clone(), nil
}

func (m *MemoryUsersRepo) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.byID[uid]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	return user.Clone(), nil
}

// Update never changes the email.
func (m *MemoryUsersRepo) Update(ctx context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.byID[user.ID]
	if !ok {
		return errorvalues.ErrUserNotFound
	}
	updated := user.Clone()
	updated.Email = stored.Email
	updated.CreatedAt = stored.CreatedAt
	m.byID[user.ID] = updated
	return nil
}

func (m *MemoryUsersRepo) Delete(ctx context.Context, uid uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.byID[uid]
	if !ok {
		return errorvalues.ErrUserNotFound
	}
	delete(m.byEmail, strings.ToLower(user.Email))
	delete(m.byID, uid)
	return nil
}

// MemoryRoutinesRepo keeps routines in process memory.
type MemoryRoutinesRepo struct {
	mu       sync.RWMutex
	routines map[uuid.UUID]*entity.Routine
}

func NewMemoryRoutinesRepo() *MemoryRoutinesRepo {
	return &MemoryRoutinesRepo{
		routines: make(map[uuid.UUID]*entity.Routine),
	}
}

func (m *MemoryRoutinesRepo) Create(ctx context.Context, routine *entity.Routine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routines[routine.ID] = routine.Clone()
	return nil
}

func (m *MemoryRoutinesRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Routine, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	routine, ok := m.routines[id]
	if !ok {
		return nil, errorvalues.ErrRoutineNotFound
	}
	return routine.Clone(), nil
}

func (m *MemoryRoutinesRepo) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Routine, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*entity.Routine, 0)
	for _, r := range m.routines {
		if r.UserID == uid {
			out = append(out, r.Clone())
		}
	}
	slices.SortFunc(out, func(a, b *entity.Routine) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), strings.Compare(a.ID.String(), b.ID.String()))
	})
	return out, nil
}

func (m *MemoryRoutinesRepo) Update(ctx context.Context, routine *entity.Routine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.routines[routine.ID]; !ok {
		return errorvalues.ErrRoutineNotFound
	}
	m.routines[routine.ID] = routine.Clone()
	return nil
}

func (m *MemoryRoutinesRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.routines[id]; !ok {
		return errorvalues.ErrRoutineNotFound
	}
	delete(m.routines, id)
	return nil
}
