package popcat

import "context"

// Text transforms. Each returns the transformed string extracted from the
// endpoint's declared response field.

// Translate translates text to the target language code (see
// TranslateTargets).
func (c *Client) Translate(ctx context.Context, text, to string) (string, error) {
	return c.callString(ctx, "translate", map[string]string{"text": text, "to": to})
}

// Reverse reverses the characters of text.
func (c *Client) Reverse(ctx context.Context, text string) (string, error) {
	return c.callString(ctx, "reverse", map[string]string{"text": text})
}

// Mock converts text to mocking SpongeBob casing.
func (c *Client) Mock(ctx context.Context, text string) (string, error) {
	return c.callString(ctx, "mock", map[string]string{"text": text})
}

// DoubleStruck converts text to mathematical double-struck characters.
func (c *Client) DoubleStruck(ctx context.Context, text string) (string, error) {
	return c.callString(ctx, "doublestruck", map[string]string{"text": text})
}

// TextToMorse converts text to Morse code.
func (c *Client) TextToMorse(ctx context.Context, text string) (string, error) {
	return c.callString(ctx, "texttomorse", map[string]string{"text": text})
}

// Encode converts text to space-separated 8-bit binary.
func (c *Client) Encode(ctx context.Context, text string) (string, error) {
	return c.callString(ctx, "encode", map[string]string{"text": text})
}

// Decode converts space-separated binary back to text. The input may only
// contain 0s, 1s, and spaces.
func (c *Client) Decode(ctx context.Context, binary string) (string, error) {
	return c.callString(ctx, "decode", map[string]string{"binary": binary})
}
