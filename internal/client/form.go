package client

import "context"

// Status is the lifecycle state of a contact form.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// Field names a contact form field.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldMessage Field = "message"
)

const fallbackErrorMessage = "Sorry, there was an error sending your message. Please try calling us directly."

// Submitter sends a contact submission. *Client satisfies it.
type Submitter interface {
	SubmitContact(ctx context.Context, sub *ContactSubmission) (*SubmissionResult, error)
}

// Form tracks contact form state through the submission lifecycle:
// idle -> submitting -> success or error. Editing a field after a
// terminal state returns the form to idle. Form is not safe for
// concurrent use.
type Form struct {
	submitter Submitter

	fields map[Field]string
	status Status
	errMsg string
}

// NewForm creates an idle form with empty fields.
func NewForm(submitter Submitter) *Form {
	return &Form{
		submitter: submitter,
		fields: map[Field]string{
			FieldName:    "",
			FieldEmail:   "",
			FieldPhone:   "",
			FieldMessage: "",
		},
		status: StatusIdle,
	}
}

// Status returns the current lifecycle state.
func (f *Form) Status() Status {
	return f.status
}

// ErrorMessage returns the message to show in the error state.
func (f *Form) ErrorMessage() string {
	return f.errMsg
}

// Field returns the current value of a field.
func (f *Form) Field(name Field) string {
	return f.fields[name]
}

// SetField updates a field value. Editing while a success or error
// banner is showing dismisses it and returns the form to idle. Edits
// are ignored mid-submission.
func (f *Form) SetField(name Field, value string) {
	if f.status == StatusSubmitting {
		return
	}
	f.fields[name] = value
	if f.status == StatusSuccess || f.status == StatusError {
		f.status = StatusIdle
		f.errMsg = ""
	}
}

// Submit sends the current field values. It is a no-op while a
// submission is already in flight. On success the fields are cleared;
// on failure they are kept so the visitor can retry, and the server's
// message (when present) becomes the error message.
func (f *Form) Submit(ctx context.Context) {
	if f.status == StatusSubmitting {
		return
	}
	f.status = StatusSubmitting
	f.errMsg = ""

	result, err := f.submitter.SubmitContact(ctx, &ContactSubmission{
		Name:    f.fields[FieldName],
		Email:   f.fields[FieldEmail],
		Phone:   f.fields[FieldPhone],
		Message: f.fields[FieldMessage],
	})

	switch {
	case err != nil:
		f.status = StatusError
		f.errMsg = fallbackErrorMessage
	case !result.Success:
		f.status = StatusError
		if result.Message != "" {
			f.errMsg = result.Message
		} else {
			f.errMsg = fallbackErrorMessage
		}
	default:
		f.status = StatusSuccess
		for name := range f.fields {
			f.fields[name] = ""
		}
	}
}
