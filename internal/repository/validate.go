package repository

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"postboard/internal/apperr"

	"github.com/go-playground/validator/v10"
)

// fieldMessages maps "<Struct>.<Field path>.<tag>" to the message reported
// to clients. Unlisted combinations fall back to a generic message.
var fieldMessages = map[string]string{
	"Post.Content.required":   "Please provide content for the post",
	"Post.Content.max":        "Post cannot be more than 1000 characters",
	"Post.Author.ID.required": "Please provide an author for the post",

	"User.Name.required":     "Please add a name",
	"User.Name.max":          "Name can not be more than 50 characters",
	"User.Email.required":    "Please add an email",
	"User.Email.email":       "Please add a valid email",
	"User.Password.required": "Please add a password",
	"User.Password.min":      "Password must be at least 6 characters",
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// report json names in fallback messages
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	})
	return validate
}

// validateRecord runs struct validation on v and returns an apperr
// validation error listing the failing fields in declaration order.
func validateRecord(v any) error {
	err := getValidator().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate record: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return apperr.Validation(msgs...)
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.StructNamespace()+"."+fe.Tag()]; ok {
		return msg
	}
	if fe.Param() != "" {
		return fmt.Sprintf("Path `%s` failed on '%s=%s'", fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("Path `%s` failed on '%s'", fe.Field(), fe.Tag())
}
