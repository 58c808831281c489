package web

import (
	"errors"
	"net/http"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/forms"
)

const maxFormBytes = 64 << 10

func (h *Handler) contactForm(w http.ResponseWriter, r *http.Request, p page) {
	h.render(w, http.StatusOK, contactView(p, formState{}))
}

func (h *Handler) demoForm(w http.ResponseWriter, r *http.Request, p page) {
	h.render(w, http.StatusOK, demoView(p, formState{}))
}

func (h *Handler) applyForm(w http.ResponseWriter, r *http.Request, p page) {
	j, ok := h.findJob(w, r, p)
	if !ok {
		return
	}
	p.switchPath = "/jobs"
	h.render(w, http.StatusOK, applyView(p, j, formState{}))
}

func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request, p page) {
	if !h.parseForm(w, r) {
		return
	}
	f := forms.Trim(forms.ContactForm{
		Name:         r.PostForm.Get("name"),
		Email:        r.PostForm.Get("email"),
		Phone:        r.PostForm.Get("phone"),
		Organisation: r.PostForm.Get("organisation"),
		Message:      r.PostForm.Get("message"),
		CaptchaToken: captchaToken(r),
	})
	h.submit(w, r, p, f, func(st formState) g.Node { return contactView(p, st) })
}

func (h *Handler) submitDemo(w http.ResponseWriter, r *http.Request, p page) {
	if !h.parseForm(w, r) {
		return
	}
	f := forms.Trim(forms.DemoForm{
		Name:          r.PostForm.Get("name"),
		Email:         r.PostForm.Get("email"),
		Phone:         r.PostForm.Get("phone"),
		Organisation:  r.PostForm.Get("organisation"),
		JobTitle:      r.PostForm.Get("job_title"),
		WorkforceSize: r.PostForm.Get("workforce_size"),
		Message:       r.PostForm.Get("message"),
		CaptchaToken:  captchaToken(r),
	})
	h.submit(w, r, p, f, func(st formState) g.Node { return demoView(p, st) })
}

func (h *Handler) submitApplication(w http.ResponseWriter, r *http.Request, p page) {
	j, ok := h.findJob(w, r, p)
	if !ok {
		return
	}
	if !h.parseForm(w, r) {
		return
	}
	p.switchPath = "/jobs"
	f := forms.Trim(forms.ApplicationForm{
		JobID:        j.ID,
		JobTitle:     j.Title,
		Name:         r.PostForm.Get("name"),
		Email:        r.PostForm.Get("email"),
		Phone:        r.PostForm.Get("phone"),
		Registration: r.PostForm.Get("registration"),
		CoverNote:    r.PostForm.Get("cover_note"),
		CaptchaToken: captchaToken(r),
	})
	h.submit(w, r, p, f, func(st formState) g.Node { return applyView(p, j, st) })
}

// submit delivers form and redirects to the thank-you page. Any failure
// re-renders the form with the visitor's input intact.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request, p page, form forms.Form, view func(formState) g.Node) {
	receipt, err := h.forms.Submit(r.Context(), p.region(), form, h.clientIP(r))
	if err == nil {
		http.Redirect(w, r, thankYouPath(p, receipt.Reference), http.StatusSeeOther)
		return
	}

	st := formState{values: r.PostForm}
	status := submitStatus(err, &st, p)
	if status >= http.StatusInternalServerError {
		h.logger.Error("form submission failed", "kind", form.Kind(), "region", p.region(), "err", err)
	}
	h.render(w, status, view(st))
}

func submitStatus(err error, st *formState, p page) int {
	var verr *forms.ValidationError
	switch {
	case errors.As(err, &verr):
		st.errors = verr.Fields
		st.notice = "Please correct the highlighted fields."
		return http.StatusUnprocessableEntity
	case errors.Is(err, forms.ErrCaptchaRequired), errors.Is(err, forms.ErrCaptchaRejected):
		st.notice = "Please complete the verification and try again."
		return http.StatusUnprocessableEntity
	case forms.IsRetryable(err):
		st.notice = "We could not send your " + strings.ToLower(p.t("Enquiry")) + " just now. Please try again."
		return http.StatusBadGateway
	default:
		st.notice = "Something went wrong. Please try again."
		return http.StatusInternalServerError
	}
}

func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.logger.Debug("parse form", "err", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return false
	}
	return true
}

// captchaToken reads the human-verification token from either the widget field or the fallback checkbox
func captchaToken(r *http.Request) string {
	for _, key := range []string{"cf-turnstile-response", captchaInput} {
		if v := r.PostForm.Get(key); v != "" {
			return v
		}
	}
	return ""
}
