package models

import (
	"time"

	"github.com/nextup-mentor/nextup-api/pkg/currency"
)

// EnrollmentStatus represents the review state of a payment confirmation.
type EnrollmentStatus string

// Possible enrollment statuses. Verified and rejected are terminal.
const (
	EnrollmentStatusPending  EnrollmentStatus = "pending"
	EnrollmentStatusVerified EnrollmentStatus = "verified"
	EnrollmentStatusRejected EnrollmentStatus = "rejected"
)

// Valid reports whether s is a known status.
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentStatusPending, EnrollmentStatusVerified, EnrollmentStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed.
func (s EnrollmentStatus) Terminal() bool {
	return s == EnrollmentStatusVerified || s == EnrollmentStatusRejected
}

// PaymentMethodCode names a manual payment channel.
type PaymentMethodCode string

const (
	PaymentMethodBkash PaymentMethodCode = "bkash"
	PaymentMethodNagad PaymentMethodCode = "nagad"
	PaymentMethodBank  PaymentMethodCode = "bank"
)

// Valid reports whether c is a known payment method.
func (c PaymentMethodCode) Valid() bool {
	switch c {
	case PaymentMethodBkash, PaymentMethodNagad, PaymentMethodBank:
		return true
	}
	return false
}

// Enrollment is a student's claim to have paid for a package.
type Enrollment struct {
	ID                string             `db:"id" json:"id"`
	StudentName       string             `db:"student_name" json:"student_name"`
	StudentEmail      *string            `db:"student_email" json:"student_email"`
	StudentPhone      *string            `db:"student_phone" json:"student_phone"`
	PackageID         *string            `db:"package_id" json:"package_id"`
	PackageTitle      string             `db:"package_title" json:"package_title"`
	Amount            int64              `db:"amount" json:"amount"`
	TransactionID     string             `db:"transaction_id" json:"transaction_id"`
	PaymentMethod     *PaymentMethodCode `db:"payment_method" json:"payment_method"`
	PaymentScreenshot *string            `db:"payment_screenshot" json:"payment_screenshot"`
	Status            EnrollmentStatus   `db:"status" json:"status"`
	AdminNotes        *string            `db:"admin_notes" json:"admin_notes"`
	CreatedAt         time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `db:"updated_at" json:"updated_at"`

	DisplayPrice *currency.Price `db:"-" json:"display_price,omitempty"`
}
