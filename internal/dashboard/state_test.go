package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nextup-mentor/nextup-api/internal/models"
)

func TestReduceLoadedAndStats(t *testing.T) {
	snapshot := &models.DashboardSnapshot{
		Packages:    []models.Package{{ID: "p1"}},
		Enrollments: []models.Enrollment{{ID: "e1", Status: models.EnrollmentStatusPending}, {ID: "e2", Status: models.EnrollmentStatusVerified}},
		Messages:    []models.Message{{ID: "m1", Status: models.MessageStatusUnread}},
	}
	s := Reduce(State{Unlocked: true}, Event{Kind: EventLoaded, Snapshot: snapshot})

	assert.True(t, s.Loaded)
	stats := s.Stats()
	assert.Equal(t, 2, stats.TotalEnrollments)
	assert.Equal(t, 1, stats.PendingEnrollments)
	assert.Equal(t, 1, stats.UnreadMessages)
	assert.Equal(t, 1, stats.TotalPackages)
	assert.Equal(t, 0, stats.TotalDestinations)

	snapshot.Packages[0].Title = "mutated"
	assert.Empty(t, s.Packages[0].Title)
}

func TestReduceUpsertAndRemoveByID(t *testing.T) {
	before := State{Packages: []models.Package{{ID: "p1", Title: "A"}, {ID: "p2", Title: "B"}}}

	replaced := Reduce(before, Event{Kind: EventPackageSaved, Package: &models.Package{ID: "p2", Title: "B2"}})
	assert.Equal(t, "B2", replaced.Packages[1].Title)
	assert.Equal(t, "B", before.Packages[1].Title)

	inserted := Reduce(replaced, Event{Kind: EventPackageSaved, Package: &models.Package{ID: "p3", Title: "C"}})
	assert.Len(t, inserted.Packages, 3)
	assert.Equal(t, "p3", inserted.Packages[2].ID)

	removed := Reduce(inserted, Event{Kind: EventPackageRemoved, ID: "p1"})
	assert.Len(t, removed.Packages, 2)
	assert.Len(t, inserted.Packages, 3)

	untouched := Reduce(removed, Event{Kind: EventPackageRemoved, ID: "missing"})
	assert.Equal(t, removed.Packages, untouched.Packages)
}

func TestReduceStatusChanges(t *testing.T) {
	s := State{
		Enrollments:  []models.Enrollment{{ID: "e1", Status: models.EnrollmentStatusPending}},
		Messages:     []models.Message{{ID: "m1", Status: models.MessageStatusUnread}},
		Destinations: []models.Destination{{ID: "d1"}},
	}
	s = Reduce(s, Event{Kind: EventEnrollmentSaved, Enrollment: &models.Enrollment{ID: "e1", Status: models.EnrollmentStatusVerified}})
	s = Reduce(s, Event{Kind: EventMessageSaved, Message: &models.Message{ID: "m1", Status: models.MessageStatusRead}})
	s = Reduce(s, Event{Kind: EventDestinationRemoved, ID: "d1"})

	assert.Equal(t, models.EnrollmentStatusVerified, s.Enrollments[0].Status)
	assert.Equal(t, models.MessageStatusRead, s.Messages[0].Status)
	assert.Empty(t, s.Destinations)
}

func TestReduceTabsAndLock(t *testing.T) {
	s := Reduce(State{Tab: TabOverview}, Event{Kind: EventTabSelected, Tab: TabMessages})
	assert.Equal(t, TabMessages, s.Tab)

	s = Reduce(s, Event{Kind: EventTabSelected, Tab: Tab("settings")})
	assert.Equal(t, TabMessages, s.Tab)

	s.Unlocked = true
	s.Packages = []models.Package{{ID: "p1"}}
	s = Reduce(s, Event{Kind: EventLocked})
	assert.False(t, s.Unlocked)
	assert.Empty(t, s.Packages)
	assert.Equal(t, TabOverview, s.Tab)
}
