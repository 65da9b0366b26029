// Package dashboard holds the admin dashboard state outside any UI framework.
// State changes only through Reduce, and Session applies an event only after
// the API has confirmed the change.
package dashboard

import (
	"github.com/nextup-mentor/nextup-api/internal/models"
)

// Tab is the dashboard section on screen.
type Tab string

const (
	TabOverview     Tab = "overview"
	TabEnrollments  Tab = "enrollments"
	TabMessages     Tab = "messages"
	TabPackages     Tab = "packages"
	TabDestinations Tab = "destinations"
)

// Valid reports whether t names a known tab.
func (t Tab) Valid() bool {
	switch t {
	case TabOverview, TabEnrollments, TabMessages, TabPackages, TabDestinations:
		return true
	default:
		return false
	}
}

// State is a point-in-time view of the dashboard.
type State struct {
	Unlocked     bool
	Loaded       bool
	Tab          Tab
	Packages     []models.Package
	Enrollments  []models.Enrollment
	Messages     []models.Message
	Destinations []models.Destination
}

// Stats derives the overview counters from the lists.
func (s State) Stats() models.DashboardStats {
	return models.ComputeStats(s.Packages, s.Enrollments, s.Messages, s.Destinations)
}

// EventKind discriminates Event.
type EventKind int

const (
	EventUnlocked EventKind = iota + 1
	EventLocked
	EventTabSelected
	EventLoaded
	EventPackageSaved
	EventPackageRemoved
	EventEnrollmentSaved
	EventMessageSaved
	EventDestinationSaved
	EventDestinationRemoved
)

// Event is a confirmed change to apply to State. Only the field matching Kind
// is read.
type Event struct {
	Kind        EventKind
	Tab         Tab
	ID          string
	Snapshot    *models.DashboardSnapshot
	Package     *models.Package
	Enrollment  *models.Enrollment
	Message     *models.Message
	Destination *models.Destination
}

// Reduce returns the state that results from applying ev to s. s is never
// modified; every list touched by ev is copied first.
func Reduce(s State, ev Event) State {
	switch ev.Kind {
	case EventUnlocked:
		s.Unlocked = true
	case EventLocked:
		return State{Tab: TabOverview}
	case EventTabSelected:
		if ev.Tab.Valid() {
			s.Tab = ev.Tab
		}
	case EventLoaded:
		if ev.Snapshot != nil {
			s.Packages = append([]models.Package(nil), ev.Snapshot.Packages...)
			s.Enrollments = append([]models.Enrollment(nil), ev.Snapshot.Enrollments...)
			s.Messages = append([]models.Message(nil), ev.Snapshot.Messages...)
			s.Destinations = append([]models.Destination(nil), ev.Snapshot.Destinations...)
			s.Loaded = true
		}
	case EventPackageSaved:
		if ev.Package != nil {
			s.Packages = upsert(s.Packages, *ev.Package, func(p models.Package) string { return p.ID })
		}
	case EventPackageRemoved:
		s.Packages = remove(s.Packages, ev.ID, func(p models.Package) string { return p.ID })
	case EventEnrollmentSaved:
		if ev.Enrollment != nil {
			s.Enrollments = upsert(s.Enrollments, *ev.Enrollment, func(e models.Enrollment) string { return e.ID })
		}
	case EventMessageSaved:
		if ev.Message != nil {
			s.Messages = upsert(s.Messages, *ev.Message, func(m models.Message) string { return m.ID })
		}
	case EventDestinationSaved:
		if ev.Destination != nil {
			s.Destinations = upsert(s.Destinations, *ev.Destination, func(d models.Destination) string { return d.ID })
		}
	case EventDestinationRemoved:
		s.Destinations = remove(s.Destinations, ev.ID, func(d models.Destination) string { return d.ID })
	}
	return s
}

// upsert replaces the item with the same id, or appends it.
func upsert[T any](items []T, item T, id func(T) string) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	key := id(item)
	for i := range out {
		if id(out[i]) == key {
			out[i] = item
			return out
		}
	}
	return append(out, item)
}

func remove[T any](items []T, key string, id func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if id(item) != key {
			out = append(out, item)
		}
	}
	return out
}
