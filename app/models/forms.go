package models

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RegisterForm carries the registration fields.
type RegisterForm struct {
	Name     string            `validate:"required,max=20"`
	Email    string            `validate:"required,email"`
	Password string            `validate:"required,min=8"`
	Errors   map[string]string `validate:"-"`
}

// LoginForm carries the login fields.
type LoginForm struct {
	Email    string            `validate:"required,email"`
	Password string            `validate:"required,min=8"`
	Errors   map[string]string `validate:"-"`
}

// CreatePostForm carries the fields for creating or editing a post.
type CreatePostForm struct {
	Title    string            `validate:"required"`
	Subtitle string            `validate:"required"`
	ImageURL string            `validate:"required,url"`
	Body     string            `validate:"required"`
	Errors   map[string]string `validate:"-"`
}

// CommentForm carries the comment body. The body is deliberately not
// required: an empty comment is accepted.
type CommentForm struct {
	Body   string            `validate:"-"`
	Errors map[string]string `validate:"-"`
}

// NewRegisterForm binds a RegisterForm to submitted request data.
func NewRegisterForm(r *http.Request) *RegisterForm {
	return &RegisterForm{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
}

// NewLoginForm binds a LoginForm to submitted request data.
func NewLoginForm(r *http.Request) *LoginForm {
	return &LoginForm{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
}

// NewCreatePostForm binds a CreatePostForm to submitted request data.
func NewCreatePostForm(r *http.Request) *CreatePostForm {
	return &CreatePostForm{
		Title:    r.FormValue("title"),
		Subtitle: r.FormValue("subtitle"),
		ImageURL: r.FormValue("image_url"),
		Body:     r.FormValue("body"),
	}
}

// NewCommentForm binds a CommentForm to submitted request data.
func NewCommentForm(r *http.Request) *CommentForm {
	return &CommentForm{Body: r.FormValue("comment")}
}

// Validate checks the form and fills Errors with field-level messages.
func (f *RegisterForm) Validate() bool {
	f.Errors = fieldErrors(validate.Struct(f))
	return len(f.Errors) == 0
}

// Validate checks the form and fills Errors with field-level messages.
func (f *LoginForm) Validate() bool {
	f.Errors = fieldErrors(validate.Struct(f))
	return len(f.Errors) == 0
}

// Validate checks the form and fills Errors with field-level messages.
func (f *CreatePostForm) Validate() bool {
	f.Errors = fieldErrors(validate.Struct(f))
	return len(f.Errors) == 0
}

// Validate always succeeds; see the CommentForm note.
func (f *CommentForm) Validate() bool {
	f.Errors = nil
	return true
}

func fieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["Form"] = "Invalid input"
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "url":
		return "Enter a valid URL"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	}
	return "Invalid value"
}
