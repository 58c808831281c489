package web

import (
	"net/url"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
)

var sortOptions = []struct {
	key   domain.SortKey
	label string
}{
	{domain.SortRelevance, "Most relevant"},
	{domain.SortNewest, "Newest"},
	{domain.SortClosingSoon, "Closing soon"},
	{domain.SortSalaryHigh, "Salary: high to low"},
	{domain.SortSalaryLow, "Salary: low to high"},
}

func homeView(p page, latest []domain.Job) g.Node {
	return pageLayout(p, p.t("Workforce solutions for the NHS"),
		g.Group([]g.Node{
			Section(Class("py-12"),
				H1(Class("text-4xl font-bold mb-4"), g.Text(p.t("Workforce solutions for the NHS"))),
				P(Class("text-lg text-slate-600 mb-8"), g.Text(p.t("Flexible shifts across NHS Trusts near you"))),
				Form(Method("GET"), Action(p.href("/jobs/search")), Class("flex flex-col sm:flex-row gap-2"),
					Input(Type("text"), Name("role"), Placeholder("Job title or keyword"), Class(inputClass)),
					Input(Type("text"), Name("location"), Placeholder(p.t("Postcode")+" or town"), Class(inputClass)),
					Button(Type("submit"), Class(buttonClass), g.Text(p.t("Find NHS jobs"))),
				),
			),
			g.If(len(latest) > 0,
				Section(Class("py-8"),
					H2(Class("text-2xl font-semibold mb-4"), g.Text("Latest jobs")),
					Ul(Class("grid gap-4 md:grid-cols-3"), g.Map(latest, func(j domain.Job) g.Node {
						return jobCard(p, j)
					})),
				),
			),
			Section(Class("py-8"),
				A(Href(p.href("/book-demo")), Class(buttonClass), g.Text(p.t("Book a demo with our NHS team"))),
			),
		}),
	)
}

func searchView(p page, res domain.SearchResult, categories []string) g.Node {
	st := res.State
	return pageLayout(p, p.t("Find NHS jobs"),
		Div(Class("grid gap-8 md:grid-cols-4"),
			Aside(Class("md:col-span-1"), searchForm(p, st, categories)),
			Section(Class("md:col-span-3"),
				H1(Class("text-2xl font-bold mb-2"), g.Text(p.t("Find NHS jobs"))),
				P(Class("text-sm text-slate-500 mb-4"), g.Textf("%d of %d jobs", len(res.Jobs), res.Total)),
				g.If(len(res.Jobs) == 0,
					Div(Class("rounded border border-slate-200 p-6"),
						P(g.Text("No jobs match your search.")),
						A(Href(p.href("/jobs")), Class("text-teal-700 underline"), g.Text("Clear all filters")),
					),
				),
				Ul(Class("grid gap-4"), g.Map(res.Jobs, func(j domain.Job) g.Node {
					return jobCard(p, j)
				})),
			),
		),
	)
}

func searchForm(p page, st domain.SearchState, categories []string) g.Node {
	options := []g.Node{Option(Value(domain.CategoryAll), g.Text("All categories"), g.If(st.IsWildcardCategory(), Selected()))}
	for _, c := range categories {
		options = append(options, Option(Value(c), g.Text(p.t(c)), g.If(c == st.Category, Selected())))
	}

	sorts := make([]g.Node, 0, len(sortOptions))
	for _, o := range sortOptions {
		sorts = append(sorts, Option(Value(string(o.key)), g.Text(o.label), g.If(o.key == st.Sort, Selected())))
	}

	return Form(Method("GET"), Action(p.href("/jobs/search")), Class("flex flex-col gap-3"),
		labelled("role", "Role or keyword", Input(ID("role"), Type("text"), Name("role"), Value(st.Role), Class(inputClass))),
		labelled("location", "Location", Input(ID("location"), Type("text"), Name("location"), Value(st.Location), Class(inputClass))),
		labelled("category", "Category", Select(ID("category"), Name("category"), Class(inputClass), g.Group(options))),
		labelled("salary_min", p.t("Minimum salary (£)"), Input(ID("salary_min"), Type("number"), Min("0"), Name("salary_min"), Value(formatAmount(st.SalaryMin)), Class(inputClass))),
		labelled("salary_max", p.t("Maximum salary (£)"), Input(ID("salary_max"), Type("number"), Min("0"), Name("salary_max"), Value(formatAmount(st.SalaryMax)), Class(inputClass))),
		labelled("distance", "Distance (miles)", Input(ID("distance"), Type("number"), Min("0"), Name("distance"), Value(formatAmount(st.MaxDistance)), Class(inputClass))),
		labelled("sort", "Sort by", Select(ID("sort"), Name("sort"), Class(inputClass), g.Group(sorts))),
		Button(Type("submit"), Class(buttonClass), g.Text("Search")),
	)
}

func jobCard(p page, j domain.Job) g.Node {
	return Li(Class("rounded border border-slate-200 p-4"),
		H3(Class("text-lg font-semibold"),
			A(Href(detailPath(p, j)), Class("text-teal-700 hover:underline"), g.Text(p.t(j.Title))),
		),
		P(Class("text-sm text-slate-600"), g.Text(j.Organisation)),
		Dl(Class("mt-2 grid grid-cols-2 gap-x-4 text-sm"),
			Dt(Class("text-slate-500"), g.Text(p.t("Salary (£)"))), Dd(g.Text(j.Salary)),
			Dt(Class("text-slate-500"), g.Text("Location")), Dd(g.Text(j.Location)),
			Dt(Class("text-slate-500"), g.Text("Closing date")), Dd(g.Text(j.ClosingDate)),
		),
	)
}

func detailView(p page, j domain.Job) g.Node {
	return pageLayout(p, j.Title,
		Article(Class("max-w-3xl"),
			A(Href(p.href("/jobs")), Class("text-sm text-teal-700"), g.Text("Back to jobs")),
			H1(Class("text-3xl font-bold mt-2"), g.Text(p.t(j.Title))),
			P(Class("text-slate-600 mb-6"), g.Text(j.Organisation)),
			Dl(Class("grid grid-cols-2 gap-x-6 gap-y-2 mb-8"),
				detailRow("Location", j.Location),
				detailRow(p.t("Salary (£)"), j.Salary),
				detailRow("Contract type", j.ContractType),
				detailRow("Working pattern", j.WorkingPattern),
				g.If(j.Band != "", detailRow(p.t("Band"), j.Band)),
				g.If(j.Speciality != "", detailRow(p.t("Speciality"), p.t(j.Speciality))),
				detailRow("Posted", j.PostedDate),
				detailRow("Closing date", j.ClosingDate),
			),
			Div(Class("prose mb-8"), markdownNode(j.Description)),
			bulletSection("Responsibilities", j.Responsibilities),
			bulletSection("Requirements", j.Requirements),
			bulletSection("Benefits", j.Benefits),
			A(Href(p.href("/jobs/"+url.PathEscape(j.ID)+"/apply")), Class(buttonClass), g.Text("Apply now")),
		),
	)
}

func detailRow(label, value string) g.Node {
	return g.Group([]g.Node{
		Dt(Class("text-slate-500"), g.Text(label)),
		Dd(g.Text(value)),
	})
}

func bulletSection(title string, items []string) g.Node {
	if len(items) == 0 {
		return nil
	}
	return Section(Class("mb-6"),
		H2(Class("text-xl font-semibold mb-2"), g.Text(title)),
		Ul(Class("list-disc pl-6"), g.Map(items, func(s string) g.Node { return Li(g.Text(s)) })),
	)
}

func thankYouView(p page, reference string) g.Node {
	return pageLayout(p, "Thank you",
		Section(Class("max-w-xl"),
			H1(Class("text-3xl font-bold mb-4"), g.Text("Thank you")),
			P(g.Textf("We have received your %s and will be in touch shortly.", strings.ToLower(p.t("Enquiry")))),
			g.If(reference != "", P(Class("text-sm text-slate-500 mt-2"), g.Textf("Reference: %s", reference))),
			A(Href(p.href("/jobs")), Class(buttonClass+" mt-6 inline-block"), g.Text(p.t("Find NHS jobs"))),
		),
	)
}

func notFoundView(p page) g.Node {
	return pageLayout(p, "Page not found",
		Section(Class("max-w-xl"),
			H1(Class("text-3xl font-bold mb-4"), g.Text("Page not found")),
			P(g.Text("The page you were looking for does not exist.")),
			A(Href(p.href("/")), Class("text-teal-700 underline"), g.Text("Go to the home page")),
		),
	)
}

func unavailableView(p page, retry string) g.Node {
	return pageLayout(p, "Temporarily unavailable",
		Section(Class("max-w-xl"),
			H1(Class("text-3xl font-bold mb-4"), g.Text("Jobs are temporarily unavailable")),
			P(g.Text("We could not load job listings right now. Please try again in a moment.")),
			A(Href(retry), Class(buttonClass+" mt-6 inline-block"), g.Text("Try again")),
		),
	)
}

func labelled(id, label string, control g.Node) g.Node {
	return Div(
		Label(For(id), Class("block text-sm font-medium mb-1"), g.Text(label)),
		control,
	)
}

func detailPath(p page, j domain.Job) string {
	path := "/jobs/" + url.PathEscape(j.ID)
	if s := j.Slug(); s != "" {
		path += "/" + s
	}
	return p.href(path)
}

func formatAmount(v float64) string {
	if v <= 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func errorText(msg string) g.Node {
	if msg == "" {
		return nil
	}
	return P(Class("text-sm text-red-600 mt-1"), g.Text(msg))
}

func banner(msg string) g.Node {
	if msg == "" {
		return nil
	}
	return Div(Class("rounded border border-red-300 bg-red-50 p-4 mb-6 text-red-700"), Role("alert"), g.Text(msg))
}

const (
	inputClass  = "w-full rounded border border-slate-300 px-3 py-2"
	buttonClass = "rounded bg-teal-700 px-4 py-2 font-semibold text-white hover:bg-teal-800"
)
