package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/learnpath/internal/api"
)

func TestLoginOnChangeTouchesOneField(t *testing.T) {
	f := &LoginForm{Email: "keep@me.io", Password: "old"}

	require.NoError(t, f.OnChange(FieldPassword, "new"))

	assert.Equal(t, "keep@me.io", f.Email)
	assert.Equal(t, "new", f.Password)
	assert.Equal(t, api.Credentials{Email: "keep@me.io", Password: "new"}, f.Credentials())
}

func TestRegisterOnChangeTouchesOneField(t *testing.T) {
	f := &RegisterForm{}
	values := map[string]string{
		FieldFirstName: "Ada",
		FieldLastName:  "Lovelace",
		FieldUsername:  "ada",
		FieldEmail:     "ada@example.com",
		FieldPassword:  "pw",
	}

	for _, field := range f.Fields() {
		before := *f
		require.NoError(t, f.OnChange(field.Name, values[field.Name]))

		for _, other := range f.Fields() {
			if other.Name == field.Name {
				assert.Equal(t, values[field.Name], f.Value(other.Name))
				continue
			}
			assert.Equal(t, before.Value(other.Name), f.Value(other.Name), "%s changed while setting %s", other.Name, field.Name)
		}
	}

	assert.Equal(t, api.RegistrationInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada",
		Email:     "ada@example.com",
		Password:  "pw",
	}, f.Input())
}

func TestUnknownFieldLeavesFormUnchanged(t *testing.T) {
	f := &LoginForm{Email: "a@b.c", Password: "x"}

	err := f.OnChange("username", "nope")

	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, LoginForm{Email: "a@b.c", Password: "x"}, *f)

	r := &RegisterForm{Username: "u"}
	assert.ErrorIs(t, r.OnChange("phone", "1"), ErrUnknownField)
	assert.Equal(t, RegisterForm{Username: "u"}, *r)
}

func TestNoClientSideValidation(t *testing.T) {
	f := &LoginForm{}
	require.NoError(t, f.OnChange(FieldEmail, "not-an-email"))
	require.NoError(t, f.OnChange(FieldPassword, ""))
	assert.Equal(t, api.Credentials{Email: "not-an-email"}, f.Credentials())
}

func TestFieldOrderAndSecrets(t *testing.T) {
	var names []string
	var secret []string
	for _, fl := range (&RegisterForm{}).Fields() {
		names = append(names, fl.Name)
		if fl.Secret {
			secret = append(secret, fl.Name)
		}
	}
	assert.Equal(t, []string{"first_name", "last_name", "username", "email", "password"}, names)
	assert.Equal(t, []string{"password"}, secret)

	login := (&LoginForm{}).Fields()
	require.Len(t, login, 2)
	assert.Equal(t, FieldEmail, login[0].Name)
	assert.True(t, login[1].Secret)
}
