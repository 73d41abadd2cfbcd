package resume

import (
	"errors"
	"net/mail"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	errAbsoluteURL = validation.NewError("resume.url_absolute", "must be an absolute http(s) URL")
	errEmail       = validation.NewError("resume.email_format", "must be a valid email address")
)

// Validate checks the links and contact details. The identity fields are never rejected:
// an empty name or tagline degrades the page text instead.
func (r *Resume) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.LocationLink, validation.By(absoluteURL)),
		validation.Field(&r.PersonalWebsiteURL, validation.By(absoluteURL)),
		validation.Field(&r.Contact),
		validation.Field(&r.Work),
		validation.Field(&r.Projects),
	)
	if err != nil {
		return errors.Join(ErrInvalid, err)
	}
	return nil
}

// ErrInvalid wraps every validation failure reported by Validate.
var ErrInvalid = errors.New("resume: invalid data")

// Validate implements validation.Validatable.
func (c Contact) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, validation.By(emailAddress)),
		validation.Field(&c.Social),
	)
}

// Validate implements validation.Validatable.
func (s Social) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.URL, validation.Required, validation.By(absoluteURL)),
	)
}

// Validate implements validation.Validatable.
func (w Work) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.Link, validation.By(absoluteURL)),
	)
}

// Validate implements validation.Validatable.
func (p Project) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Link, validation.By(absoluteURL)),
	)
}

func absoluteURL(value any) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errAbsoluteURL
	}
	return nil
}

func emailAddress(value any) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return errEmail
	}
	return nil
}
