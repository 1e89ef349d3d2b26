package linkpreview

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gocolly/colly/v2"
	"golang.org/x/net/html"
)

type client struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) Client {
	return client{
		logger: logger,
	}
}

func (client client) Fetch(url string) (*Preview, error) {
	c := colly.NewCollector()

	var preview Preview
	var body []byte

	c.OnHTML(`meta[property="og:title"]`, func(h *colly.HTMLElement) {
		preview.Title = h.Attr("content")
	})
	c.OnHTML(`meta[property="og:description"]`, func(h *colly.HTMLElement) {
		preview.Description = h.Attr("content")
	})
	c.OnHTML(`meta[property="og:image"]`, func(h *colly.HTMLElement) {
		preview.ImageURL = h.Attr("content")
	})
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	err := c.Visit(url)
	if err != nil {
		return nil, err
	}

	if preview.Title == "" {
		client.logger.Debug(
			fmt.Sprintf("no og:title on %s, falling back to <title>", url),
		)
		preview.Title = titleFromHTML(body)
	}

	return &preview, nil
}

// titleFromHTML walks the parsed document for the first <title> element.
func titleFromHTML(body []byte) string {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	var title string
	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if title != "" {
			return
		}

		if node.Type == html.ElementNode && node.Data == "title" {
			if node.FirstChild != nil {
				title = strings.TrimSpace(node.FirstChild.Data)
			}
			return
		}

		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return title
}
