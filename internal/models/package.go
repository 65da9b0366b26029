package models

import (
	"time"

	"github.com/lib/pq"

	"github.com/nextup-mentor/nextup-api/pkg/currency"
)

// DefaultPackageIcon is used when a package is created without an icon.
const DefaultPackageIcon = "📚"

// Package is a purchasable consultancy offering.
type Package struct {
	ID           string         `db:"id" json:"id"`
	Title        string         `db:"title" json:"title"`
	Subtitle     *string        `db:"subtitle" json:"subtitle"`
	Icon         string         `db:"icon" json:"icon"`
	Price        int64          `db:"price" json:"price"`
	Features     pq.StringArray `db:"features" json:"features"`
	Images       pq.StringArray `db:"images" json:"images"`
	IsPopular    bool           `db:"is_popular" json:"is_popular"`
	IsActive     bool           `db:"is_active" json:"is_active"`
	DisplayOrder int            `db:"display_order" json:"display_order"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`

	DisplayPrice *currency.Price `db:"-" json:"display_price,omitempty"`
}

// Normalize replaces nil list fields with empty lists so they encode as [].
func (p *Package) Normalize() {
	if p.Features == nil {
		p.Features = pq.StringArray{}
	}
	if p.Images == nil {
		p.Images = pq.StringArray{}
	}
}

// PackagePatch carries a partial package update. Nil fields are left alone.
type PackagePatch struct {
	Title        *string
	Subtitle     *string
	Icon         *string
	Price        *int64
	Features     *[]string
	Images       *[]string
	IsPopular    *bool
	IsActive     *bool
	DisplayOrder *int
}

// Empty reports whether the patch changes nothing.
func (p PackagePatch) Empty() bool {
	return p.Title == nil && p.Subtitle == nil && p.Icon == nil && p.Price == nil &&
		p.Features == nil && p.Images == nil && p.IsPopular == nil && p.IsActive == nil && p.DisplayOrder == nil
}
