package popcat

import "context"

// Random content generators. No parameters; every call returns fresh
// content from the API.

// Joke returns a random joke.
func (c *Client) Joke(ctx context.Context) (string, error) {
	return c.callString(ctx, "joke", nil)
}

// Fact returns a random fact.
func (c *Client) Fact(ctx context.Context) (string, error) {
	return c.callString(ctx, "fact", nil)
}

// EightBall returns a magic 8-ball answer.
func (c *Client) EightBall(ctx context.Context) (string, error) {
	return c.callString(ctx, "eightball", nil)
}

// RandomMeme returns a random meme with its metadata.
func (c *Client) RandomMeme(ctx context.Context) (map[string]any, error) {
	return c.callObject(ctx, "randommeme", nil)
}

// Car returns information about a random car.
func (c *Client) Car(ctx context.Context) (map[string]any, error) {
	return c.callObject(ctx, "car", nil)
}

// ShowerThought returns a random shower thought.
func (c *Client) ShowerThought(ctx context.Context) (map[string]any, error) {
	return c.callObject(ctx, "showerthought", nil)
}

// WouldYouRather returns a random "would you rather" question.
func (c *Client) WouldYouRather(ctx context.Context) (map[string]any, error) {
	return c.callObject(ctx, "wouldyourather", nil)
}
