package linkpreview

// Preview holds the metadata scraped from an event's public landing page.
type Preview struct {
	Title       string
	Description string
	ImageURL    string
}

type Client interface {
	Fetch(url string) (*Preview, error)
}
