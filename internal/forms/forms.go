// Package forms holds the field state of the login and registration forms.
// Values are kept exactly as typed; the server decides what is valid.
package forms

import (
	"errors"
	"fmt"

	"github.com/abhisek/learnpath/internal/api"
)

// ErrUnknownField is returned when OnChange names a field the form lacks.
var ErrUnknownField = errors.New("unknown form field")

// Field describes one input in display order.
type Field struct {
	Name   string
	Label  string
	Secret bool
}

// Form is the common shape of the fixed-record forms.
type Form interface {
	Fields() []Field
	OnChange(field, value string) error
	Value(field string) string
}

// Field names, matching the JSON keys sent to the API.
const (
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldUsername  = "username"
)

// LoginForm holds the login inputs.
type LoginForm struct {
	Email    string
	Password string
}

var _ Form = (*LoginForm)(nil)

var loginFields = []Field{
	{Name: FieldEmail, Label: "Email"},
	{Name: FieldPassword, Label: "Password", Secret: true},
}

func (f *LoginForm) Fields() []Field {
	return loginFields
}

// OnChange sets one field and leaves the others alone.
func (f *LoginForm) OnChange(field, value string) error {
	p := f.slot(field)
	if p == nil {
		return fmt.Errorf("login form: %w: %q", ErrUnknownField, field)
	}
	*p = value
	return nil
}

func (f *LoginForm) Value(field string) string {
	if p := f.slot(field); p != nil {
		return *p
	}
	return ""
}

// Credentials packages the form for submission.
func (f *LoginForm) Credentials() api.Credentials {
	return api.Credentials{Email: f.Email, Password: f.Password}
}

func (f *LoginForm) slot(field string) *string {
	switch field {
	case FieldEmail:
		return &f.Email
	case FieldPassword:
		return &f.Password
	}
	return nil
}

// RegisterForm holds the registration inputs.
type RegisterForm struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

var _ Form = (*RegisterForm)(nil)

var registerFields = []Field{
	{Name: FieldFirstName, Label: "First name"},
	{Name: FieldLastName, Label: "Last name"},
	{Name: FieldUsername, Label: "Username"},
	{Name: FieldEmail, Label: "Email"},
	{Name: FieldPassword, Label: "Password", Secret: true},
}

func (f *RegisterForm) Fields() []Field {
	return registerFields
}

// OnChange sets one field and leaves the others alone.
func (f *RegisterForm) OnChange(field, value string) error {
	p := f.slot(field)
	if p == nil {
		return fmt.Errorf("register form: %w: %q", ErrUnknownField, field)
	}
	*p = value
	return nil
}

func (f *RegisterForm) Value(field string) string {
	if p := f.slot(field); p != nil {
		return *p
	}
	return ""
}

// Input packages the form for submission.
func (f *RegisterForm) Input() api.RegistrationInput {
	return api.RegistrationInput{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Username:  f.Username,
		Email:     f.Email,
		Password:  f.Password,
	}
}

func (f *RegisterForm) slot(field string) *string {
	switch field {
	case FieldFirstName:
		return &f.FirstName
	case FieldLastName:
		return &f.LastName
	case FieldUsername:
		return &f.Username
	case FieldEmail:
		return &f.Email
	case FieldPassword:
		return &f.Password
	}
	return nil
}
