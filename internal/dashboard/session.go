package dashboard

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"

	"github.com/nextup-mentor/nextup-api/internal/dto"
	"github.com/nextup-mentor/nextup-api/internal/models"
)

// ErrLocked is returned by every operation before Unlock succeeds.
var ErrLocked = errors.New("dashboard is locked")

// ErrWrongPassword is returned by Unlock for any other string.
var ErrWrongPassword = errors.New("incorrect password")

// API is the subset of the admin API the dashboard drives.
type API interface {
	Dashboard(ctx context.Context) (*models.DashboardSnapshot, error)
	UpdateEnrollmentStatus(ctx context.Context, id string, req dto.UpdateEnrollmentStatusRequest) (*models.Enrollment, error)
	UpdateMessageStatus(ctx context.Context, id, status string) (*models.Message, error)
	CreatePackage(ctx context.Context, req dto.CreatePackageRequest) (*models.Package, error)
	UpdatePackage(ctx context.Context, id string, req dto.UpdatePackageRequest) (*models.Package, error)
	DeletePackage(ctx context.Context, id string) error
	CreateDestination(ctx context.Context, req dto.CreateDestinationRequest) (*models.Destination, error)
	UpdateDestination(ctx context.Context, id string, req dto.UpdateDestinationRequest) (*models.Destination, error)
	DeleteDestination(ctx context.Context, id string) error
}

// Session is the dashboard store. It is safe for concurrent use; API calls
// run outside the lock and their results are applied atomically.
type Session struct {
	api      API
	password string

	mu    sync.Mutex
	state State
}

// NewSession builds a locked session gated by password.
func NewSession(api API, password string) *Session {
	return &Session{api: api, password: password, state: State{Tab: TabOverview}}
}

// Unlock flips the in-memory gate when password matches exactly. There is no
// lockout after failed attempts.
func (s *Session) Unlock(password string) error {
	if s.password == "" || subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return ErrWrongPassword
	}
	s.apply(Event{Kind: EventUnlocked})
	return nil
}

// Lock clears the gate and all loaded data.
func (s *Session) Lock() {
	s.apply(Event{Kind: EventLocked})
}

// State returns a copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SelectTab switches the visible section without fetching anything.
func (s *Session) SelectTab(tab Tab) error {
	if !tab.Valid() {
		return fmt.Errorf("unknown tab %q", tab)
	}
	if err := s.requireUnlocked(); err != nil {
		return err
	}
	s.apply(Event{Kind: EventTabSelected, Tab: tab})
	return nil
}

// Load fetches all four collections. A failed fetch leaves the previous data
// in place.
func (s *Session) Load(ctx context.Context) error {
	if err := s.requireUnlocked(); err != nil {
		return err
	}
	snapshot, err := s.api.Dashboard(ctx)
	if err != nil {
		return fmt.Errorf("load dashboard: %w", err)
	}
	s.apply(Event{Kind: EventLoaded, Snapshot: snapshot})
	return nil
}

// SetEnrollmentStatus verifies or rejects an enrollment.
func (s *Session) SetEnrollmentStatus(ctx context.Context, id string, status models.EnrollmentStatus, notes *string) (*models.Enrollment, error) {
	if err := s.requireUnlocked(); err != nil {
		return nil, err
	}
	updated, err := s.api.UpdateEnrollmentStatus(ctx, id, dto.UpdateEnrollmentStatusRequest{Status: string(status), AdminNotes: notes})
	if err != nil {
		return nil, err
	}
	s.apply(Event{Kind: EventEnrollmentSaved, Enrollment: updated})
	return updated, nil
}

// SetMessageStatus marks a message unread, read or replied.
func (s *Session) SetMessageStatus(ctx context.Context, id string, status models.MessageStatus) (*models.Message, error) {
	if err := s.requireUnlocked(); err != nil {
		return nil, err
	}
	updated, err := s.api.UpdateMessageStatus(ctx, id, string(status))
	if err != nil {
		return nil, err
	}
	s.apply(Event{Kind: EventMessageSaved, Message: updated})
	return updated, nil
}

// CreatePackage adds a package and appends it to the list.
func (s *Session) CreatePackage(ctx context.Context, req dto.CreatePackageRequest) (*models.Package, error) {
	if err := s.requireUnlocked(); err != nil {
		return nil, err
	}
	created, err := s.api.CreatePackage(ctx, req)
	if err != nil {
		return nil, err
	}
	s.apply(Event{Kind: EventPackageSaved, Package: created})
	return created, nil
}

// UpdatePackage edits a package in place.
func (s *Session) UpdatePackage(ctx context.Context, id string, req dto.UpdatePackageRequest) (*models.Package, error) {
	if err := s.requireUnlocked(); err != nil {
		return nil, err
	}
	updated, err := s.api.UpdatePackage(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if updated.IsActive {
		s.apply(Event{Kind: EventPackageSaved, Package: updated})
	} else {
		s.apply(Event{Kind: EventPackageRemoved, ID: updated.ID})
	}
	return updated, nil
}

// DeletePackage deactivates a package and drops it from the list.
func (s *Session) DeletePackage(ctx context.Context, id string) error {
	if err := s.requireUnlocked(); err != nil {
		return err
	}
	if err := s.api.DeletePackage(ctx, id); err != nil {
		return err
	}
	s.apply(Event{Kind: EventPackageRemoved, ID: id})
	return nil
}

// CreateDestination adds a destination and appends it to the list.
func (s *Session) CreateDestination(ctx context.Context, req dto.CreateDestinationRequest) (*models.Destination, error) {
	if err := s.requireUnlocked(); err != nil {
		return nil, err
	}
	created, err := s.api.CreateDestination(ctx, req)
	if err != nil {
		return nil, err
	}
	s.apply(Event{Kind: EventDestinationSaved, Destination: created})
	return created, nil
}

// UpdateDestination edits a destination in place.
func (s *Session) UpdateDestination(ctx context.Context, id string, req dto.UpdateDestinationRequest) (*models.Destination, error) {
	if err := s.requireUnlocked(); err != nil {
		return nil, err
	}
	updated, err := s.api.UpdateDestination(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.apply(Event{Kind: EventDestinationSaved, Destination: updated})
	return updated, nil
}

// DeleteDestination removes a destination.
func (s *Session) DeleteDestination(ctx context.Context, id string) error {
	if err := s.requireUnlocked(); err != nil {
		return err
	}
	if err := s.api.DeleteDestination(ctx, id); err != nil {
		return err
	}
	s.apply(Event{Kind: EventDestinationRemoved, ID: id})
	return nil
}

func (s *Session) requireUnlocked() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.Unlocked {
		return ErrLocked
	}
	return nil
}

// apply reduces ev into the state. Results of calls that were in flight when
// the session locked are dropped so a locked session stays empty.
func (s *Session) apply(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.Unlocked && ev.Kind != EventUnlocked && ev.Kind != EventLocked {
		return
	}
	s.state = Reduce(s.state, ev)
}
