package popcat

import "context"

// Image filters. Each takes the URL of a source image and returns the URL of
// the processed result.

// Jail overlays jail bars on an image.
func (c *Client) Jail(ctx context.Context, image string) (string, error) {
	return c.callString(ctx, "jail", map[string]string{"image": image})
}

// Blur applies a blur filter to an image.
func (c *Client) Blur(ctx context.Context, image string) (string, error) {
	return c.callString(ctx, "blur", map[string]string{"image": image})
}

// Invert inverts all colors in an image.
func (c *Client) Invert(ctx context.Context, image string) (string, error) {
	return c.callString(ctx, "invert", map[string]string{"image": image})
}

// Greyscale converts an image to greyscale.
func (c *Client) Greyscale(ctx context.Context, image string) (string, error) {
	return c.callString(ctx, "greyscale", map[string]string{"image": image})
}

// Drip applies the drip effect to an image.
func (c *Client) Drip(ctx context.Context, image string) (string, error) {
	return c.callString(ctx, "drip", map[string]string{"image": image})
}

// Clown applies clown makeup to an image.
func (c *Client) Clown(ctx context.Context, image string) (string, error) {
	return c.callString(ctx, "clown", map[string]string{"image": image})
}

// Colorify tints an image with a hex or named color.
func (c *Client) Colorify(ctx context.Context, image, color string) (string, error) {
	return c.callString(ctx, "colorify", map[string]string{"image": image, "color": color})
}

// Wanted renders a WANTED poster around an image.
func (c *Client) Wanted(ctx context.Context, image string) (string, error) {
	return c.callString(ctx, "wanted", map[string]string{"image": image})
}

// Gun generates the gun meme; text is optional and may be empty.
func (c *Client) Gun(ctx context.Context, image, text string) (string, error) {
	args := map[string]string{"image": image}
	if text != "" {
		args["text"] = text
	}
	return c.callString(ctx, "gun", args)
}

// Ad renders an advertisement-style meme.
func (c *Client) Ad(ctx context.Context, image string) (string, error) {
	return c.callString(ctx, "ad", map[string]string{"image": image})
}

// Uncover applies the uncover effect to an image.
func (c *Client) Uncover(ctx context.Context, image string) (string, error) {
	return c.callString(ctx, "uncover", map[string]string{"image": image})
}

// Communism applies a red overlay with communist symbols.
func (c *Client) Communism(ctx context.Context, image string) (string, error) {
	return c.callString(ctx, "communism", map[string]string{"image": image})
}

// JokeOverHead generates the "joke over head" meme.
func (c *Client) JokeOverHead(ctx context.Context, image string) (string, error) {
	return c.callString(ctx, "jokeoverhead", map[string]string{"image": image})
}

// MNM renders an image as an M&M.
func (c *Client) MNM(ctx context.Context, image string) (string, error) {
	return c.callString(ctx, "mnm", map[string]string{"image": image})
}

// Screenshot captures a screenshot of a website.
func (c *Client) Screenshot(ctx context.Context, url string) (string, error) {
	return c.callString(ctx, "screenshot", map[string]string{"url": url})
}
