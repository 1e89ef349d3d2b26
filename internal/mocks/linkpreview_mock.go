package mocks

import (
	"liveboard.app/pkg/linkpreview"
)

type MockedLinkPreviewClient struct{}

func NewMockedLinkPreviewClient() linkpreview.Client {
	return MockedLinkPreviewClient{}
}

func (client MockedLinkPreviewClient) Fetch(_ string) (*linkpreview.Preview, error) {
	return &linkpreview.Preview{
		Title:       "Example Event",
		Description: "An example event landing page.",
		ImageURL:    "https://example.com/banner.png",
	}, nil
}
