package web

import (
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
)

// formState carries what the visitor typed plus any errors back into a re-rendered form
type formState struct {
	values url.Values
	errors map[string]string
	notice string
}

func (s formState) value(name string) string {
	if s.values == nil {
		return ""
	}
	return s.values.Get(name)
}

var workforceSizes = []string{"1-50", "51-250", "251-1000", "1000+"}

func contactView(p page, st formState) g.Node {
	return pageLayout(p, "Contact us",
		Section(Class("max-w-xl"),
			H1(Class("text-3xl font-bold mb-4"), g.Text(p.t("Send enquiry"))),
			banner(st.notice),
			Form(Method("POST"), Action(p.href("/contact")), Class("flex flex-col gap-4"), g.Attr("novalidate"),
				textField(st, "name", "Name", "text", true),
				textField(st, "email", "Email", "email", true),
				textField(st, "phone", p.t("Mobile number"), "tel", false),
				textField(st, "organisation", p.t("Organisation"), "text", false),
				textArea(st, "message", "Message", true),
				captchaField(p, st),
				Button(Type("submit"), Class(buttonClass), g.Text(p.t("Send enquiry"))),
			),
		),
	)
}

func demoView(p page, st formState) g.Node {
	sizes := []g.Node{Option(Value(""), g.Text("Select"))}
	for _, s := range workforceSizes {
		sizes = append(sizes, Option(Value(s), g.Text(s), g.If(st.value("workforce_size") == s, Selected())))
	}

	return pageLayout(p, "Book a demo",
		Section(Class("max-w-xl"),
			H1(Class("text-3xl font-bold mb-4"), g.Text(p.t("Book a demo with our NHS team"))),
			banner(st.notice),
			Form(Method("POST"), Action(p.href("/book-demo")), Class("flex flex-col gap-4"), g.Attr("novalidate"),
				textField(st, "name", "Name", "text", true),
				textField(st, "email", "Work email", "email", true),
				textField(st, "phone", p.t("Mobile number"), "tel", false),
				textField(st, "organisation", p.t("Organisation"), "text", true),
				textField(st, "job_title", "Job title", "text", false),
				Div(
					Label(For("workforce_size"), Class("block text-sm font-medium mb-1"), g.Text("Workforce size")),
					Select(ID("workforce_size"), Name("workforce_size"), Class(inputClass), g.Group(sizes)),
					errorText(st.errors["workforce_size"]),
				),
				textArea(st, "message", "Anything we should know?", false),
				captchaField(p, st),
				Button(Type("submit"), Class(buttonClass), g.Text("Request demo")),
			),
		),
	)
}

func applyView(p page, j domain.Job, st formState) g.Node {
	return pageLayout(p, "Apply: "+j.Title,
		Section(Class("max-w-xl"),
			H1(Class("text-3xl font-bold mb-1"), g.Text("Apply for "+p.t(j.Title))),
			P(Class("text-slate-600 mb-4"), g.Text(j.Organisation)),
			banner(st.notice),
			Form(Method("POST"), Action(p.href("/jobs/"+url.PathEscape(j.ID)+"/apply")), Class("flex flex-col gap-4"), g.Attr("novalidate"),
				textField(st, "name", "Full name", "text", true),
				textField(st, "email", "Email", "email", true),
				textField(st, "phone", p.t("Mobile number"), "tel", true),
				textField(st, "registration", "Professional registration number", "text", false),
				textArea(st, "cover_note", "Cover note", false),
				captchaField(p, st),
				Button(Type("submit"), Class(buttonClass), g.Text("Submit application")),
			),
		),
	)
}

func textField(st formState, name, label, typ string, required bool) g.Node {
	return Div(
		Label(For(name), Class("block text-sm font-medium mb-1"), g.Text(label)),
		Input(ID(name), Name(name), Type(typ), Value(st.value(name)), Class(inputClass), g.If(required, Required())),
		errorText(st.errors[name]),
	)
}

func textArea(st formState, name, label string, required bool) g.Node {
	return Div(
		Label(For(name), Class("block text-sm font-medium mb-1"), g.Text(label)),
		Textarea(ID(name), Name(name), Rows("5"), Class(inputClass), g.If(required, Required()), g.Text(st.value(name))),
		errorText(st.errors[name]),
	)
}

// captchaField renders the Turnstile widget when a site key is configured,
// otherwise a plain confirmation checkbox that supplies the token.
func captchaField(p page, st formState) g.Node {
	if p.siteKey != "" {
		return Div(Class("cf-turnstile"), g.Attr("data-sitekey", p.siteKey))
	}
	return Label(Class("flex items-center gap-2 text-sm"),
		Input(Type("checkbox"), Name(captchaInput), Value("confirmed"), g.If(st.value(captchaInput) != "", Checked())),
		g.Text("I confirm I am not a robot"),
	)
}
