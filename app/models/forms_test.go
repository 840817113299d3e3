package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterFormValidation(t *testing.T) {
	tests := []struct {
		name      string
		form      *RegisterForm
		wantValid bool
		wantField string
	}{
		{
			name:      "valid form",
			form:      &RegisterForm{Name: "Alice", Email: "alice@example.com", Password: "longenough1"},
			wantValid: true,
		},
		{
			name:      "missing name",
			form:      &RegisterForm{Email: "alice@example.com", Password: "longenough1"},
			wantField: "Name",
		},
		{
			name:      "name too long",
			form:      &RegisterForm{Name: "a name far longer than twenty characters", Email: "alice@example.com", Password: "longenough1"},
			wantField: "Name",
		},
		{
			name:      "invalid email",
			form:      &RegisterForm{Name: "Alice", Email: "not-an-email", Password: "longenough1"},
			wantField: "Email",
		},
		{
			name:      "password too short",
			form:      &RegisterForm{Name: "Alice", Email: "alice@example.com", Password: "short"},
			wantField: "Password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok := tt.form.Validate()
			assert.Equal(t, tt.wantValid, ok)
			if tt.wantField != "" {
				assert.Contains(t, tt.form.Errors, tt.wantField)
			} else {
				assert.Empty(t, tt.form.Errors)
			}
		})
	}
}

func TestLoginFormValidation(t *testing.T) {
	valid := &LoginForm{Email: "alice@example.com", Password: "longenough1"}
	assert.True(t, valid.Validate())

	short := &LoginForm{Email: "alice@example.com", Password: "short"}
	assert.False(t, short.Validate())
	assert.Contains(t, short.Errors, "Password")
}

func TestCreatePostFormValidation(t *testing.T) {
	tests := []struct {
		name      string
		form      *CreatePostForm
		wantValid bool
		wantField string
	}{
		{
			name: "valid form",
			form: &CreatePostForm{
				Title:    "Hello",
				Subtitle: "A greeting",
				ImageURL: "https://example.com/hello.png",
				Body:     "<p>First post</p>",
			},
			wantValid: true,
		},
		{
			name:      "missing title",
			form:      &CreatePostForm{Subtitle: "s", ImageURL: "https://example.com/x.png", Body: "b"},
			wantField: "Title",
		},
		{
			name:      "image url not a url",
			form:      &CreatePostForm{Title: "t", Subtitle: "s", ImageURL: "not a url", Body: "b"},
			wantField: "ImageURL",
		},
		{
			name:      "missing body",
			form:      &CreatePostForm{Title: "t", Subtitle: "s", ImageURL: "https://example.com/x.png"},
			wantField: "Body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok := tt.form.Validate()
			assert.Equal(t, tt.wantValid, ok)
			if tt.wantField != "" {
				assert.Contains(t, tt.form.Errors, tt.wantField)
			}
		})
	}
}

func TestCommentFormIsPermissive(t *testing.T) {
	empty := &CommentForm{}
	assert.True(t, empty.Validate())
	assert.Empty(t, empty.Errors)
}

func TestUserIsAdmin(t *testing.T) {
	var anonymous *User
	assert.False(t, anonymous.IsAdmin())
	assert.False(t, (&User{Role: RoleUser}).IsAdmin())
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
}
