// internal/app/features/stories/stories.go
package stories

// Story is a demo AMP story served by this instance. Real deployments
// would source stories from a CMS; the demo set exists so the ad-tag
// injection path can be exercised end to end.
type Story struct {
	Slug    string
	Title   string
	Summary string
	Poster  string
	Pages   []Page
}

// Page is a single amp-story-page.
type Page struct {
	ID      string
	Heading string
	Text    string
}

var demoStories = []Story{
	{
		Slug:    "morning-light",
		Title:   "Morning Light",
		Summary: "First light over the ridge, two hours before sunrise.",
		Poster:  "/static/img/morning-light.svg",
		Pages: []Page{
			{ID: "cover", Heading: "Morning Light", Text: "A short story about first light over the ridge."},
			{ID: "page-1", Heading: "The Climb", Text: "The trail starts in the dark, two hours before sunrise."},
			{ID: "page-2", Heading: "The Summit", Text: "By the time the sun clears the horizon, the valley is gold."},
		},
	},
	{
		Slug:    "harbor-days",
		Title:   "Harbor Days",
		Summary: "A week on the waterfront, from first catch to last light.",
		Poster:  "/static/img/harbor-days.svg",
		Pages: []Page{
			{ID: "cover", Heading: "Harbor Days", Text: "A week on the waterfront."},
			{ID: "page-1", Heading: "First Catch", Text: "The boats come in before the market opens."},
		},
	},
}

// All returns the demo stories in display order.
func All() []Story {
	return demoStories
}

// BySlug returns the story with the given slug and a "found?" flag.
func BySlug(slug string) (Story, bool) {
	for _, s := range demoStories {
		if s.Slug == slug {
			return s, true
		}
	}
	return Story{}, false
}
