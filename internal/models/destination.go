package models

import (
	"time"

	"github.com/lib/pq"
)

// Destination is a study-abroad country shown on the site.
type Destination struct {
	ID              string         `db:"id" json:"id"`
	Country         string         `db:"country" json:"country"`
	Flag            string         `db:"flag" json:"flag"`
	UniversityCount int            `db:"university_count" json:"university_count"`
	Description     string         `db:"description" json:"description"`
	Highlights      pq.StringArray `db:"highlights" json:"highlights"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
}

// Normalize replaces a nil highlight list with an empty one.
func (d *Destination) Normalize() {
	if d.Highlights == nil {
		d.Highlights = pq.StringArray{}
	}
}

// DestinationPatch carries a partial destination update.
type DestinationPatch struct {
	Country         *string
	Flag            *string
	UniversityCount *int
	Description     *string
	Highlights      *[]string
}

// Empty reports whether the patch changes nothing.
func (p DestinationPatch) Empty() bool {
	return p.Country == nil && p.Flag == nil && p.UniversityCount == nil && p.Description == nil && p.Highlights == nil
}
