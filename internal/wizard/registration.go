package wizard

import (
	"regexp"
	"strings"

	"event-marketplace/internal/models"
)

// Attachment is an uploaded file reference held by a draft. Presence
// is what registration validates; the bytes live wherever the upload
// handler staged them.
type Attachment struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// Present reports whether a file has been attached
func (a Attachment) Present() bool {
	return a.Filename != ""
}

// RegistrationDraft accumulates the account-registration form across
// its four steps. It is discarded on navigation away or successful
// submission, never persisted.
type RegistrationDraft struct {
	// Step 1: personal information
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"`

	// Step 2: identity
	NationalID   string `json:"national_id"`
	IDCardNumber string `json:"id_card_number"`

	// Step 3: security
	Password        string `json:"-"`
	ConfirmPassword string `json:"-"`

	// Step 4: documents
	ProfileImage Attachment `json:"profile_image"`
	IDDocument   Attachment `json:"id_document"`
}

var nationalIDRegex = regexp.MustCompile(`^\d{18}$`)

// NewRegistrationFlow builds the four-step registration wizard over the
// given draft. The draft pointer stays owned by the caller; field edits
// go straight to it between transitions.
func NewRegistrationFlow(draft *RegistrationDraft) *Flow {
	return NewFlow([]Step{
		{Name: "personal", Validate: func() Result { return validatePersonalInfo(draft) }},
		{Name: "identity", Validate: func() Result { return validateIdentity(draft) }},
		{Name: "security", Validate: func() Result { return validateSecurity(draft) }},
		{Name: "documents", Validate: func() Result { return validateDocuments(draft) }},
	})
}

func validatePersonalInfo(d *RegistrationDraft) Result {
	if strings.TrimSpace(d.Name) == "" ||
		strings.TrimSpace(d.Email) == "" ||
		strings.TrimSpace(d.Phone) == "" ||
		strings.TrimSpace(d.DateOfBirth) == "" {
		return Fail("", "please fill in all personal information fields")
	}

	if err := models.ValidateEmail(d.Email); err != nil {
		return Fail("email", "please enter a valid email address")
	}

	return OK()
}

func validateIdentity(d *RegistrationDraft) Result {
	if strings.TrimSpace(d.NationalID) == "" || strings.TrimSpace(d.IDCardNumber) == "" {
		return Fail("", "please fill in all identity information fields")
	}

	// Length and format are reported separately so the UI can show the
	// right hint while the user is still typing.
	if len(d.NationalID) != 18 {
		return Fail("national_id", "national ID must be exactly 18 digits")
	}

	if !nationalIDRegex.MatchString(d.NationalID) {
		return Fail("national_id", "national ID must contain only numbers")
	}

	return OK()
}

func validateSecurity(d *RegistrationDraft) Result {
	if d.Password == "" || d.ConfirmPassword == "" {
		return Fail("", "please fill in all password fields")
	}

	if d.Password != d.ConfirmPassword {
		return Fail("confirm_password", "passwords do not match")
	}

	if len(d.Password) < 6 {
		return Fail("password", "password must be at least 6 characters long")
	}

	return OK()
}

func validateDocuments(d *RegistrationDraft) Result {
	if !d.ProfileImage.Present() {
		return Fail("profile_image", "please upload a profile image")
	}

	if !d.IDDocument.Present() {
		return Fail("id_document", "please upload a copy of your ID document")
	}

	return OK()
}
