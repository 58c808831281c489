package forms

import (
	"fmt"
	"strings"
)

// Kind identifies a submission flow
type Kind string

const (
	KindContact     Kind = "contact"
	KindDemo        Kind = "book-demo"
	KindApplication Kind = "application"
)

// Form is a validated, submittable payload
type Form interface {
	Kind() Kind
	Captcha() string
	ReplyTo() string
	Subject() string
	Lines() []Line
}

// Line is one labelled value in a submission summary
type Line struct {
	Label string
	Value string
}

// ContactForm is the general enquiry form
type ContactForm struct {
	Name         string `json:"name" validate:"required,max=120"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"omitempty,max=40"`
	Organisation string `json:"organisation" validate:"omitempty,max=200"`
	Message      string `json:"message" validate:"required,max=5000"`
	CaptchaToken string `json:"captcha_token" validate:"-"`
}

func (f ContactForm) Kind() Kind      { return KindContact }
func (f ContactForm) Captcha() string { return f.CaptchaToken }
func (f ContactForm) ReplyTo() string { return f.Email }

func (f ContactForm) Subject() string {
	return fmt.Sprintf("Enquiry from %s", f.Name)
}

func (f ContactForm) Lines() []Line {
	return []Line{
		{"Name", f.Name},
		{"Email", f.Email},
		{"Phone", f.Phone},
		{"Organisation", f.Organisation},
		{"Message", f.Message},
	}
}

// DemoForm requests a product demonstration
type DemoForm struct {
	Name          string `json:"name" validate:"required,max=120"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"omitempty,max=40"`
	Organisation  string `json:"organisation" validate:"required,max=200"`
	JobTitle      string `json:"job_title" validate:"omitempty,max=120"`
	WorkforceSize string `json:"workforce_size" validate:"omitempty,oneof=1-50 51-250 251-1000 1000+"`
	Message       string `json:"message" validate:"omitempty,max=5000"`
	CaptchaToken  string `json:"captcha_token" validate:"-"`
}

func (f DemoForm) Kind() Kind      { return KindDemo }
func (f DemoForm) Captcha() string { return f.CaptchaToken }
func (f DemoForm) ReplyTo() string { return f.Email }

func (f DemoForm) Subject() string {
	return fmt.Sprintf("Demo request from %s (%s)", f.Name, f.Organisation)
}

func (f DemoForm) Lines() []Line {
	return []Line{
		{"Name", f.Name},
		{"Email", f.Email},
		{"Phone", f.Phone},
		{"Organisation", f.Organisation},
		{"Job title", f.JobTitle},
		{"Workforce size", f.WorkforceSize},
		{"Message", f.Message},
	}
}

// ApplicationForm applies for one job
type ApplicationForm struct {
	JobID        string `json:"job_id" validate:"required"`
	JobTitle     string `json:"job_title" validate:"-"`
	Name         string `json:"name" validate:"required,max=120"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,max=40"`
	Registration string `json:"registration" validate:"omitempty,max=40"`
	CoverNote    string `json:"cover_note" validate:"omitempty,max=5000"`
	CaptchaToken string `json:"captcha_token" validate:"-"`
}

func (f ApplicationForm) Kind() Kind      { return KindApplication }
func (f ApplicationForm) Captcha() string { return f.CaptchaToken }
func (f ApplicationForm) ReplyTo() string { return f.Email }

func (f ApplicationForm) Subject() string {
	title := f.JobTitle
	if title == "" {
		title = f.JobID
	}
	return fmt.Sprintf("Application for %s from %s", title, f.Name)
}

func (f ApplicationForm) Lines() []Line {
	return []Line{
		{"Job", f.JobID},
		{"Job title", f.JobTitle},
		{"Name", f.Name},
		{"Email", f.Email},
		{"Phone", f.Phone},
		{"Professional registration", f.Registration},
		{"Cover note", f.CoverNote},
	}
}

// Trim returns a copy of form with surrounding whitespace removed from every field
func Trim[F ContactForm | DemoForm | ApplicationForm](form F) F {
	switch f := any(&form).(type) {
	case *ContactForm:
		trimAll(&f.Name, &f.Email, &f.Phone, &f.Organisation, &f.Message, &f.CaptchaToken)
	case *DemoForm:
		trimAll(&f.Name, &f.Email, &f.Phone, &f.Organisation, &f.JobTitle, &f.WorkforceSize, &f.Message, &f.CaptchaToken)
	case *ApplicationForm:
		trimAll(&f.JobID, &f.JobTitle, &f.Name, &f.Email, &f.Phone, &f.Registration, &f.CoverNote, &f.CaptchaToken)
	}
	return form
}

func trimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
