package web

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/region"
)

// page is the per-request view context: the bound router, the region's
// copy substitution and the path the region switcher should keep.
type page struct {
	router     region.Router
	t          func(string) string
	switchPath string
	siteKey    string
}

func (p page) region() domain.Region {
	return p.router.Region()
}

func (p page) href(path string) string {
	return p.router.ToRegionPath(path)
}

// pageLayout wraps content in the shared document shell
func pageLayout(p page, title string, content g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(Lang(langFor(p.region())),
			Head(
				Meta(Charset("UTF-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				Meta(Name("description"), Content(p.t("Healthcare jobs and workforce technology from Flexzo"))),
				TitleEl(g.Text(title+" | Flexzo")),
				Script(Src("https://cdn.tailwindcss.com")),
				g.If(p.siteKey != "",
					Script(Src("https://challenges.cloudflare.com/turnstile/v0/api.js"), g.Attr("async"), g.Attr("defer")),
				),
			),
			Body(Class("bg-white text-slate-800 flex flex-col min-h-screen"),
				navbar(p),
				Main(Class("flex-grow container mx-auto px-4 py-8"), content),
				footer(p),
			),
		),
	})
}

func navbar(p page) g.Node {
	navLink := func(path, label string) g.Node {
		return A(Href(p.href(path)), Class("px-3 py-2 text-sm font-medium hover:text-teal-700"), g.Text(p.t(label)))
	}

	return Nav(Class("border-b border-slate-200"),
		Div(Class("container mx-auto px-4 flex items-center justify-between h-16"),
			A(Href(p.href("/")), Class("text-xl font-bold text-teal-700"), g.Text("Flexzo")),
			Div(Class("flex items-center gap-2"),
				navLink("/jobs", "Find NHS jobs"),
				navLink("/book-demo", "Book a demo"),
				navLink("/contact", "Contact us"),
				regionSwitcher(p),
			),
		),
	)
}

func regionSwitcher(p page) g.Node {
	links := make([]g.Node, 0, len(domain.Regions()))
	for _, r := range domain.Regions() {
		cls := "px-2 py-1 text-xs font-semibold rounded"
		if r == p.region() {
			cls += " bg-teal-700 text-white"
		} else {
			cls += " text-slate-600 hover:bg-slate-100"
		}
		links = append(links, A(
			Href(p.router.SwitchTo(r).ToRegionPath(p.switchPath)),
			Class(cls),
			g.Attr("hreflang", langFor(r)),
			g.Text(strings.ToUpper(string(r))),
		))
	}
	return Div(Class("flex gap-1 ml-4"), g.Attr("aria-label", "Region"), g.Group(links))
}

func footer(p page) g.Node {
	return Footer(Class("border-t border-slate-200 py-6 text-sm text-slate-500"),
		Div(Class("container mx-auto px-4 flex justify-between"),
			P(g.Textf("Flexzo %s", strings.ToUpper(string(p.region())))),
			A(Href(p.href("/contact")), g.Text(p.t("Send enquiry"))),
		),
	)
}

func langFor(r domain.Region) string {
	if r == domain.RegionUS {
		return "en-US"
	}
	return "en-GB"
}
