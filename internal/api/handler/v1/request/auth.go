package request

import (
	"errors"
	"strings"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`
)

var (
	passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)

	errInvalidPassword = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")
	errEmailDomain     = errors.New("email domain is not allowed")
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the email shape and password policy. When allowedDomain is
// set the email must belong to it.
func (req *RegisterRequest) Validate(allowedDomain string) error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email, validation.By(emailDomain(allowedDomain))),
		validation.Field(&req.Password, validation.Required, validation.By(passwordPolicy)),
	)
}

func passwordPolicy(value interface{}) error {
	password, _ := value.(string)

	ok, err := passwordExp.MatchString(password)
	if err != nil || !ok {
		return errInvalidPassword
	}

	return nil
}

func emailDomain(allowed string) validation.RuleFunc {
	return func(value interface{}) error {
		if allowed == "" {
			return nil
		}

		email, _ := value.(string)
		if !strings.HasSuffix(strings.ToLower(strings.TrimSpace(email)), "@"+strings.ToLower(allowed)) {
			return errEmailDomain
		}

		return nil
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
}
