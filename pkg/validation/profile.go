package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-authform/pkg/model"
)

// Issue is a struct-level validation failure keyed by field.
type Issue struct {
	Field   model.FieldName `json:"field"`
	Message string          `json:"message"`
}

var (
	profileValidatorOnce sync.Once
	profileValidator     *validator.Validate
)

// ValidateProfile checks a profile before it reaches a user store. It runs
// the same vocabulary as the field validators so messages stay consistent.
// Issues are reported in struct field order.
func ValidateProfile(profile model.Profile) []Issue {
	err := structValidator().Struct(profile)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []Issue{{Message: strings.TrimSpace(err.Error())}}
	}

	issues := make([]Issue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field, _ := model.ParseFieldName(fe.Field())
		issues = append(issues, Issue{
			Field:   field,
			Message: issueMessage(field, fe.Tag(), fe.Param()),
		})
	}
	return issues
}

// IssuesError converts issues into a FieldError for the first issue, or nil.
func IssuesError(issues []Issue) error {
	if len(issues) == 0 {
		return nil
	}
	return NewFieldError(issues[0].Field, issues[0].Message)
}

func structValidator() *validator.Validate {
	profileValidatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation("trimmedmin", func(fl validator.FieldLevel) bool {
			min, err := strconv.Atoi(fl.Param())
			if err != nil {
				return false
			}
			return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= min
		})
		_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
			return emailPattern.MatchString(fl.Field().String())
		})
		profileValidator = v
	})
	return profileValidator
}

func issueMessage(field model.FieldName, tag, param string) string {
	switch field {
	case model.FieldFirstName:
		return MsgFirstNameRequired
	case model.FieldLastName:
		return MsgLastNameRequired
	case model.FieldUsername:
		if tag == "trimmedmin" {
			if min, err := strconv.Atoi(param); err == nil {
				return msgUsernameTooShort(min)
			}
		}
		return MsgUsernameRequired
	case model.FieldEmail:
		if tag == "emailshape" {
			return MsgEmailInvalid
		}
		return MsgEmailRequired
	}
	return fmt.Sprintf("%s failed %s validation", field, tag)
}
