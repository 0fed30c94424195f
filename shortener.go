package popcat

import "context"

// ShortenerService shortens URLs under popcat.xyz with caller-chosen
// extensions and looks up existing short links.
type ShortenerService struct {
	c *Client
}

// Shortener returns the URL-shortening service.
func (c *Client) Shortener() ShortenerService {
	return ShortenerService{c: c}
}

// Shorten creates a short link for url under the given extension
// (alphanumeric, 3-20 characters). Returns the API's confirmation object
// with the short URL.
func (s ShortenerService) Shorten(ctx context.Context, url, extension string) (map[string]any, error) {
	return s.c.callObject(ctx, "shorten", map[string]string{
		"url":       url,
		"extension": extension,
	})
}

// Info looks up an existing short link, returning its original URL and
// click count among other fields.
func (s ShortenerService) Info(ctx context.Context, extension string) (map[string]any, error) {
	return s.c.callObject(ctx, "shorten_info", map[string]string{"extension": extension})
}
