package cms

import "time"

// Статическая выборка на случай недоступности CMS. Контент короткий,
// но непустой: страницы блога продолжают рендериться.
var fallbackSamples = []Article{
	{
		ID:          "fallback-1",
		Slug:        "why-form-an-llc-in-wyoming",
		Title:       "Why Form an LLC in Wyoming",
		Category:    "formation",
		Excerpt:     "Wyoming offers no state income tax, strong privacy protections and low annual fees.",
		Body:        "Wyoming remains one of the most founder-friendly states for forming an LLC. There is no state income tax, members are not listed in public filings, and the annual report fee starts at $60.",
		PublishedAt: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "fallback-2",
		Slug:        "llc-vs-corporation",
		Title:       "LLC vs. Corporation: Which Entity Fits Your Business",
		Category:    "formation",
		Excerpt:     "Choosing between an LLC and a corporation comes down to taxes, ownership and fundraising plans.",
		Body:        "An LLC offers pass-through taxation and flexible management. A corporation suits businesses planning to raise venture capital or issue stock options.",
		PublishedAt: time.Date(2025, 2, 4, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "fallback-3",
		Slug:        "what-is-a-registered-agent",
		Title:       "What Is a Registered Agent and Why You Need One",
		Category:    "compliance",
		Excerpt:     "Every LLC must designate a registered agent with a physical address in the state of formation.",
		Body:        "A registered agent receives legal documents and state notices on behalf of your company. Using a professional service keeps your home address off public record.",
		PublishedAt: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
	},
}

func fallbackArticles() []Article {
	out := make([]Article, len(fallbackSamples))
	copy(out, fallbackSamples)
	return out
}
