package client

import (
	"context"
	"errors"
	"testing"
)

type fakeSubmitter struct {
	result    *SubmissionResult
	err       error
	submitted []*ContactSubmission
	onSubmit  func()
}

func (f *fakeSubmitter) SubmitContact(ctx context.Context, sub *ContactSubmission) (*SubmissionResult, error) {
	f.submitted = append(f.submitted, sub)
	if f.onSubmit != nil {
		f.onSubmit()
	}
	return f.result, f.err
}

func fillForm(f *Form) {
	f.SetField(FieldName, "Jane Doe")
	f.SetField(FieldEmail, "jane@example.com")
	f.SetField(FieldPhone, "(555) 123-4567")
	f.SetField(FieldMessage, "I would like to book a cleaning.")
}

func TestFormStartsIdle(t *testing.T) {
	form := NewForm(&fakeSubmitter{})
	if form.Status() != StatusIdle {
		t.Errorf("new form status = %q, want %q", form.Status(), StatusIdle)
	}
	if form.Field(FieldName) != "" {
		t.Errorf("new form name = %q, want empty", form.Field(FieldName))
	}
}

func TestFormSubmitEntersSubmittingSynchronously(t *testing.T) {
	var statusDuring Status
	sub := &fakeSubmitter{result: &SubmissionResult{Success: true}}
	form := NewForm(sub)
	sub.onSubmit = func() {
		statusDuring = form.Status()
	}
	fillForm(form)

	form.Submit(context.Background())

	if statusDuring != StatusSubmitting {
		t.Errorf("status during submission = %q, want %q", statusDuring, StatusSubmitting)
	}
}

func TestFormSuccessClearsFields(t *testing.T) {
	sub := &fakeSubmitter{result: &SubmissionResult{Success: true, Message: "Thank you!"}}
	form := NewForm(sub)
	fillForm(form)

	form.Submit(context.Background())

	if form.Status() != StatusSuccess {
		t.Fatalf("status = %q, want %q", form.Status(), StatusSuccess)
	}
	for _, field := range []Field{FieldName, FieldEmail, FieldPhone, FieldMessage} {
		if form.Field(field) != "" {
			t.Errorf("field %q = %q after success, want empty", field, form.Field(field))
		}
	}
}

func TestFormSubmitSendsFieldValues(t *testing.T) {
	sub := &fakeSubmitter{result: &SubmissionResult{Success: true}}
	form := NewForm(sub)
	fillForm(form)

	form.Submit(context.Background())

	if len(sub.submitted) != 1 {
		t.Fatalf("submissions = %d, want 1", len(sub.submitted))
	}
	got := sub.submitted[0]
	if got.Name != "Jane Doe" || got.Email != "jane@example.com" || got.Message != "I would like to book a cleaning." {
		t.Errorf("unexpected submission payload: %+v", got)
	}
}

func TestFormServerRejectionKeepsFieldsAndMessage(t *testing.T) {
	sub := &fakeSubmitter{result: &SubmissionResult{Success: false, Message: "Please provide a valid email address."}}
	form := NewForm(sub)
	fillForm(form)

	form.Submit(context.Background())

	if form.Status() != StatusError {
		t.Fatalf("status = %q, want %q", form.Status(), StatusError)
	}
	if form.ErrorMessage() != "Please provide a valid email address." {
		t.Errorf("error message = %q, want server message", form.ErrorMessage())
	}
	if form.Field(FieldName) != "Jane Doe" {
		t.Errorf("name = %q after error, want retained value", form.Field(FieldName))
	}
	if form.Field(FieldMessage) != "I would like to book a cleaning." {
		t.Errorf("message = %q after error, want retained value", form.Field(FieldMessage))
	}
}

func TestFormNetworkFailureUsesFallbackMessage(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("connection refused")}
	form := NewForm(sub)
	fillForm(form)

	form.Submit(context.Background())

	if form.Status() != StatusError {
		t.Fatalf("status = %q, want %q", form.Status(), StatusError)
	}
	if form.ErrorMessage() != fallbackErrorMessage {
		t.Errorf("error message = %q, want fallback", form.ErrorMessage())
	}
}

func TestFormEditAfterTerminalStateReturnsToIdle(t *testing.T) {
	tests := []struct {
		name string
		sub  *fakeSubmitter
	}{
		{"after success", &fakeSubmitter{result: &SubmissionResult{Success: true}}},
		{"after error", &fakeSubmitter{err: errors.New("boom")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewForm(tt.sub)
			fillForm(form)
			form.Submit(context.Background())

			form.SetField(FieldName, "John")

			if form.Status() != StatusIdle {
				t.Errorf("status after edit = %q, want %q", form.Status(), StatusIdle)
			}
			if form.ErrorMessage() != "" {
				t.Errorf("error message after edit = %q, want empty", form.ErrorMessage())
			}
		})
	}
}

func TestFormSubmitIgnoredWhileSubmitting(t *testing.T) {
	sub := &fakeSubmitter{result: &SubmissionResult{Success: true}}
	form := NewForm(sub)
	sub.onSubmit = func() {
		// Re-entrant submit must be a no-op.
		form.Submit(context.Background())
	}
	fillForm(form)

	form.Submit(context.Background())

	if len(sub.submitted) != 1 {
		t.Errorf("submissions = %d, want 1", len(sub.submitted))
	}
}
