package dto

import "io"

// ConfirmationDelayMS is how long clients show the success state before
// resetting the payment form.
const ConfirmationDelayMS = 2500

// Upload is a file received in a multipart form.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// EnrollmentSubmission is the multipart payment confirmation form.
type EnrollmentSubmission struct {
	StudentName   string  `form:"student_name" validate:"required,max=200"`
	StudentEmail  string  `form:"student_email" validate:"required,email"`
	StudentPhone  *string `form:"student_phone" validate:"omitempty,max=40"`
	PackageID     *string `form:"package_id" validate:"omitempty,uuid"`
	PackageTitle  string  `form:"package_title" validate:"required_without=PackageID,max=200"`
	Amount        int64   `form:"amount" validate:"gte=0"`
	TransactionID string  `form:"transaction_id" validate:"required,max=100"`
	PaymentMethod *string `form:"payment_method" validate:"omitempty,oneof=bkash nagad bank"`

	Screenshot *Upload `form:"-" validate:"-"`
}

// UpdateEnrollmentStatusRequest moves a pending enrollment to a final state.
type UpdateEnrollmentStatusRequest struct {
	Status     string  `json:"status" validate:"required,oneof=pending verified rejected"`
	AdminNotes *string `json:"admin_notes" validate:"omitempty,max=2000"`
}

// EnrollmentExportQuery selects the export format.
type EnrollmentExportQuery struct {
	Format string `form:"format" validate:"omitempty,oneof=csv pdf"`
	Status string `form:"status" validate:"omitempty,oneof=pending verified rejected"`
}
