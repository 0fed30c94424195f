package popcat

import "context"

// Meme generators. Each returns the URL of the generated image.

// Drake generates the drake approve/disapprove meme.
func (c *Client) Drake(ctx context.Context, text1, text2 string) (string, error) {
	return c.callString(ctx, "drake", map[string]string{"text1": text1, "text2": text2})
}

// Pooh generates the tuxedo Winnie the Pooh meme.
func (c *Client) Pooh(ctx context.Context, text1, text2 string) (string, error) {
	return c.callString(ctx, "pooh", map[string]string{"text1": text1, "text2": text2})
}

// HappySad generates the happy/sad two-panel meme.
func (c *Client) HappySad(ctx context.Context, text1, text2 string) (string, error) {
	return c.callString(ctx, "happysad", map[string]string{"text1": text1, "text2": text2})
}

// Ship renders a ship compatibility card for two avatars.
func (c *Client) Ship(ctx context.Context, user1, user2 string) (string, error) {
	return c.callString(ctx, "ship", map[string]string{"user1": user1, "user2": user2})
}

// Supreme renders text in the Supreme logo style.
func (c *Client) Supreme(ctx context.Context, text string) (string, error) {
	return c.callString(ctx, "supreme", map[string]string{"text": text})
}

// Oogway generates the Master Oogway quote meme.
func (c *Client) Oogway(ctx context.Context, text string) (string, error) {
	return c.callString(ctx, "oogway", map[string]string{"text": text})
}

// Biden generates the Biden tweet meme.
func (c *Client) Biden(ctx context.Context, text string) (string, error) {
	return c.callString(ctx, "biden", map[string]string{"text": text})
}

// Pikachu generates the surprised Pikachu meme.
func (c *Client) Pikachu(ctx context.Context, text string) (string, error) {
	return c.callString(ctx, "pikachu", map[string]string{"text": text})
}

// SadCat generates the sad cat meme.
func (c *Client) SadCat(ctx context.Context, text string) (string, error) {
	return c.callString(ctx, "sadcat", map[string]string{"text": text})
}

// Opinion generates the "nobody asked for your opinion" meme.
func (c *Client) Opinion(ctx context.Context, image, text string) (string, error) {
	return c.callString(ctx, "opinion", map[string]string{"image": image, "text": text})
}

// DiscordMessage renders a fake Discord message. avatar, color, and
// timestamp are optional and may be empty.
func (c *Client) DiscordMessage(ctx context.Context, username, content, avatar, color, timestamp string) (string, error) {
	args := map[string]string{"username": username, "content": content}
	if avatar != "" {
		args["avatar"] = avatar
	}
	if color != "" {
		args["color"] = color
	}
	if timestamp != "" {
		args["timestamp"] = timestamp
	}
	return c.callString(ctx, "discord", args)
}

// Quote renders an inspirational quote card with an image and attribution.
func (c *Client) Quote(ctx context.Context, image, text, name string) (string, error) {
	return c.callString(ctx, "quote", map[string]string{"image": image, "text": text, "name": name})
}

// Unforgivable generates the "unforgivable" meme.
func (c *Client) Unforgivable(ctx context.Context, text string) (string, error) {
	return c.callString(ctx, "unforgivable", map[string]string{"text": text})
}

// CouldRead generates the "if you could read" meme.
func (c *Client) CouldRead(ctx context.Context, text string) (string, error) {
	return c.callString(ctx, "couldread", map[string]string{"text": text})
}

// Lulcat translates text into lolcat speak. Returned as the raw object the
// API provides.
func (c *Client) Lulcat(ctx context.Context, text string) (map[string]any, error) {
	return c.callObject(ctx, "lulcat", map[string]string{"text": text})
}

// Facts generates the "it's a fact" meme.
func (c *Client) Facts(ctx context.Context, text string) (string, error) {
	return c.callString(ctx, "facts", map[string]string{"text": text})
}

// Alert renders text as an iOS alert.
func (c *Client) Alert(ctx context.Context, text string) (string, error) {
	return c.callString(ctx, "alert", map[string]string{"text": text})
}

// Caution renders text as a caution tape banner.
func (c *Client) Caution(ctx context.Context, text string) (string, error) {
	return c.callString(ctx, "caution", map[string]string{"text": text})
}

// WelcomeCard generates a custom welcome card. The background must be an
// HTTPS PNG.
func (c *Client) WelcomeCard(ctx context.Context, background, avatar, text1, text2, text3 string) (string, error) {
	return c.callString(ctx, "welcomecard", map[string]string{
		"background": background,
		"avatar":     avatar,
		"text1":      text1,
		"text2":      text2,
		"text3":      text3,
	})
}
