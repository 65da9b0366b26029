package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageNormalizeEncodesEmptyLists(t *testing.T) {
	p := Package{Title: "Italy"}
	p.Normalize()
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"features":[]`)
	assert.Contains(t, string(raw), `"images":[]`)
	assert.NotContains(t, string(raw), "display_price")
}

func TestEnrollmentStatus(t *testing.T) {
	assert.False(t, EnrollmentStatusPending.Terminal())
	assert.True(t, EnrollmentStatusVerified.Terminal())
	assert.True(t, EnrollmentStatusRejected.Terminal())
	assert.False(t, EnrollmentStatus("done").Valid())
	assert.True(t, PaymentMethodNagad.Valid())
	assert.False(t, PaymentMethodCode("card").Valid())
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(
		[]Package{{ID: "p1"}},
		[]Enrollment{{Status: EnrollmentStatusPending}, {Status: EnrollmentStatusVerified}, {Status: EnrollmentStatusPending}},
		[]Message{{Status: MessageStatusUnread}, {Status: MessageStatusReplied}},
		nil,
	)
	assert.Equal(t, DashboardStats{TotalEnrollments: 3, PendingEnrollments: 2, UnreadMessages: 1, TotalPackages: 1, TotalDestinations: 0}, stats)
}

func TestPatchEmpty(t *testing.T) {
	assert.True(t, PackagePatch{}.Empty())
	title := "x"
	assert.False(t, PackagePatch{Title: &title}.Empty())
	assert.True(t, DestinationPatch{}.Empty())
}
