package popcat

import "context"

// Data lookups. These return the API's JSON response verbatim as a map; the
// remote owns the schema and this client does not re-model it.

// Weather returns current weather for a location.
func (c *Client) Weather(ctx context.Context, place string) (map[string]any, error) {
	return c.callObject(ctx, "weather", map[string]string{"q": place})
}

// GitHub returns profile information for a GitHub user.
func (c *Client) GitHub(ctx context.Context, username string) (map[string]any, error) {
	return c.callObject(ctx, "github", map[string]string{"user": username})
}

// NPM returns details for an npm package.
func (c *Client) NPM(ctx context.Context, pkg string) (map[string]any, error) {
	return c.callObject(ctx, "npm", map[string]string{"q": pkg})
}

// Steam searches for a game on Steam.
func (c *Client) Steam(ctx context.Context, name string) (map[string]any, error) {
	return c.callObject(ctx, "steam", map[string]string{"q": name})
}

// IMDB searches for a movie or show on IMDB.
func (c *Client) IMDB(ctx context.Context, name string) (map[string]any, error) {
	return c.callObject(ctx, "imdb", map[string]string{"q": name})
}

// Country returns information about a country.
func (c *Client) Country(ctx context.Context, name string) (map[string]any, error) {
	return c.callObject(ctx, "country", map[string]string{"name": name})
}

// PeriodicTable returns element data by name or symbol.
func (c *Client) PeriodicTable(ctx context.Context, element string) (map[string]any, error) {
	return c.callObject(ctx, "periodic_table", map[string]string{"element": element})
}

// ColorInfo returns details about a hex or named color.
func (c *Client) ColorInfo(ctx context.Context, color string) (map[string]any, error) {
	return c.callObject(ctx, "colorinfo", map[string]string{"color": color})
}

// RandomColor returns a random color in every format.
func (c *Client) RandomColor(ctx context.Context) (map[string]any, error) {
	return c.callObject(ctx, "randomcolor", nil)
}

// Subreddit returns statistics for a subreddit. A leading "r/" is stripped.
func (c *Client) Subreddit(ctx context.Context, name string) (map[string]any, error) {
	return c.callObject(ctx, "subreddit", map[string]string{"subreddit": name})
}

// Itunes searches for a song on iTunes.
func (c *Client) Itunes(ctx context.Context, song string) (map[string]any, error) {
	return c.callObject(ctx, "itunes", map[string]string{"q": song})
}

// Lyrics returns lyrics and metadata for a song.
func (c *Client) Lyrics(ctx context.Context, song string) (map[string]any, error) {
	return c.callObject(ctx, "lyrics", map[string]string{"song": song})
}

// Chatbot returns an AI chatbot reply.
func (c *Client) Chatbot(ctx context.Context, message, owner, botname string) (map[string]any, error) {
	return c.callObject(ctx, "chatbot", map[string]string{
		"msg":     message,
		"owner":   owner,
		"botname": botname,
	})
}
