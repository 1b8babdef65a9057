// Package session - вход вендора и профиль вендора для терминального клиента,
// с кешем на диске, чтобы переживать перезапуск.
package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/ibeloyar/chawp-vendor/internal/model"
	"go.uber.org/zap"
)

// Identity - данные входа: пользователь и его bearer токен
type Identity struct {
	UserID   uuid.UUID `json:"user_id"`
	VendorID uuid.UUID `json:"vendor_id"`
	Email    string    `json:"email"`
	Token    string    `json:"token"`
}

type Store interface {
	// LoadIdentity - nil без ошибки, если входа не было
	LoadIdentity() (*Identity, error)
	SaveIdentity(identity Identity) error
	ClearIdentity() error

	// LoadVendor - nil без ошибки, если для userID ничего не закешировано
	LoadVendor(userID uuid.UUID) (*model.VendorProfile, error)
	SaveVendor(userID uuid.UUID, vendor model.VendorProfile) error
	ClearVendor(userID uuid.UUID) error
}

type Session struct {
	mu sync.RWMutex

	store Store
	lg    *zap.SugaredLogger

	identity *Identity
	vendor   *model.VendorProfile
}

func New(store Store, lg *zap.SugaredLogger) *Session {
	return &Session{
		store: store,
		lg:    lg,
	}
}

// Restore - читает прошлую сессию из хранилища и сообщает, найден ли вход.
// Отсутствующий или битый кеш вендора не ошибка: вход восстанавливается без вендора.
func (s *Session) Restore() (bool, error) {
	identity, err := s.store.LoadIdentity()
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = identity
	s.vendor = nil

	if identity == nil {
		return false, nil
	}

	vendor, err := s.store.LoadVendor(identity.UserID)
	if err != nil {
		s.lg.Warnf("failed to load vendor cache for user %s: %v", identity.UserID, err)
		return true, nil
	}
	s.vendor = vendor

	return true, nil
}

// OnSignIn запоминает вход; ошибки кеша только логируются
func (s *Session) OnSignIn(identity Identity, vendor model.VendorProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = &identity
	s.vendor = &vendor

	if err := s.store.SaveIdentity(identity); err != nil {
		s.lg.Warnf("failed to save session: %v", err)
	}
	if err := s.store.SaveVendor(identity.UserID, vendor); err != nil {
		s.lg.Warnf("failed to save vendor cache: %v", err)
	}
}

// OnSignOut - память очищается всегда, даже если хранилище вернуло ошибку
func (s *Session) OnSignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity != nil {
		if err := s.store.ClearVendor(s.identity.UserID); err != nil {
			s.lg.Warnf("failed to clear vendor cache: %v", err)
		}
	}
	if err := s.store.ClearIdentity(); err != nil {
		s.lg.Warnf("failed to clear session: %v", err)
	}

	s.identity = nil
	s.vendor = nil
}

// UpdateVendor - замена профиля после обновления или редактирования.
// Без входа ничего не делает.
func (s *Session) UpdateVendor(vendor model.VendorProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return
	}

	s.vendor = &vendor
	if err := s.store.SaveVendor(s.identity.UserID, vendor); err != nil {
		s.lg.Warnf("failed to save vendor cache: %v", err)
	}
}

func (s *Session) Identity() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

func (s *Session) Vendor() (model.VendorProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.vendor == nil {
		return model.VendorProfile{}, false
	}
	return *s.vendor, true
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return ""
	}
	return s.identity.Token
}
