package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	popcat "github.com/popcat/popcat-go"
	"github.com/popcat/popcat-go/internal/outfmt"
)

// endpointShorts holds the one-line help for each generated command.
// Entries missing here fall back to a generic description.
var endpointShorts = map[string]string{
	"jail":           "Put jail bars over an image",
	"blur":           "Blur an image",
	"invert":         "Invert an image's colors",
	"greyscale":      "Convert an image to greyscale",
	"drip":           "Apply the drip effect to an image",
	"clown":          "Apply clown makeup to an image",
	"wanted":         "Put an image on a wanted poster",
	"ad":             "Put an image on an advertisement",
	"uncover":        "Newspaper uncover meme from an image",
	"communism":      "Overlay the communist flag on an image",
	"jokeoverhead":   "Joke-over-the-head meme from an image",
	"mnm":            "Print an image on an M&M",
	"colorify":       "Tint an image with a color",
	"gun":            "Point a gun at an image",
	"screenshot":     "Screenshot a web page",
	"drake":          "Drake hotline bling meme",
	"pooh":           "Tuxedo Winnie the Pooh meme",
	"happysad":       "Happy then sad meme",
	"ship":           "Ship two avatars together",
	"supreme":        "Render text as a Supreme logo",
	"oogway":         "Master Oogway quote meme",
	"biden":          "Biden tweet meme",
	"pikachu":        "Surprised Pikachu meme",
	"sadcat":         "Sad cat holding a sign",
	"opinion":        "Opinion meme with an avatar",
	"discord":        "Render a fake Discord message",
	"quote":          "Render a quote card",
	"unforgivable":   "Unforgivable sin meme",
	"couldread":      "\"Could you read this?\" meme",
	"lulcat":         "Translate text to lulcat speak",
	"facts":          "Facts book meme",
	"alert":          "iPhone alert screen",
	"caution":        "Caution tape sign",
	"welcomecard":    "Render a server welcome card",
	"translate":      "Translate text to another language",
	"reverse":        "Reverse text",
	"mock":           "MoCkInG sPoNgEbOb text",
	"doublestruck":   "Double-struck (outline) text",
	"texttomorse":    "Convert text to morse code",
	"encode":         "Encode text to binary",
	"decode":         "Decode binary to text",
	"weather":        "Look up the weather for a place",
	"github":         "Look up a GitHub profile",
	"npm":            "Look up an npm package",
	"steam":          "Look up a Steam application",
	"imdb":           "Look up a movie or show on IMDb",
	"country":        "Look up facts about a country",
	"periodic_table": "Look up an element",
	"colorinfo":      "Inspect a color",
	"randomcolor":    "Get a random color",
	"subreddit":      "Look up a subreddit",
	"itunes":         "Search a song on iTunes",
	"lyrics":         "Fetch lyrics for a song",
	"chatbot":        "Talk to the chatbot",
	"joke":           "Get a random joke",
	"fact":           "Get a random fact",
	"eightball":      "Ask the magic 8-ball",
	"randommeme":     "Get a random meme",
	"car":            "Get a random car",
	"showerthought":  "Get a random shower thought",
	"wouldyourather": "Get a would-you-rather question",
}

// endpointCommands generates one command per catalog entry. Required
// parameters are positional arguments in declaration order; optional
// parameters become flags. The Pastey and shortener endpoints have dedicated
// command groups with richer behavior and are skipped here.
func endpointCommands() []*cobra.Command {
	skip := map[string]bool{"code": true, "shorten": true, "shorten_info": true}

	var cmds []*cobra.Command
	for _, ep := range popcat.Endpoints() {
		if skip[ep.Name] {
			continue
		}
		cmds = append(cmds, newEndpointCmd(ep))
	}
	return cmds
}

func newEndpointCmd(ep popcat.Endpoint) *cobra.Command {
	required := ep.RequiredParams()
	optional := ep.OptionalParams()

	short := endpointShorts[ep.Name]
	if short == "" {
		short = "Call the " + ep.Name + " endpoint"
	}

	use := ep.Name
	for _, name := range required {
		use += " <" + name + ">"
	}

	optValues := make(map[string]*string, len(optional))

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(len(required)),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			callArgs := make(map[string]string, len(args)+len(optional))
			for i, name := range required {
				callArgs[name] = args[i]
			}
			for name, value := range optValues {
				if cmd.Flags().Changed(name) {
					callArgs[name] = *value
				}
			}

			client, err := newClient(false)
			if err != nil {
				return err
			}
			res, err := client.Call(cmd.Context(), ep.Name, callArgs)
			if err != nil {
				return err
			}
			return printResult(cmd, res)
		}),
	}

	for _, name := range optional {
		optValues[name] = cmd.Flags().String(name, "", "Optional "+name+" parameter")
	}

	return cmd
}

// newEndpointsCmd lists the catalog.
func newEndpointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "endpoints",
		Aliases: []string{"ls"},
		Short:   "List available API endpoints",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if outfmt.IsJSON(ctx) {
				type entry struct {
					Name     string   `json:"name"`
					Method   string   `json:"method"`
					Path     string   `json:"path"`
					Required []string `json:"required,omitempty"`
					Optional []string `json:"optional,omitempty"`
				}
				var entries []entry
				for _, ep := range popcat.Endpoints() {
					entries = append(entries, entry{
						Name:     ep.Name,
						Method:   ep.Method,
						Path:     ep.Path,
						Required: ep.RequiredParams(),
						Optional: ep.OptionalParams(),
					})
				}
				return outfmt.WriteJSONFiltered(out, entries, outfmt.GetQuery(ctx), outfmt.IsJSONL(ctx))
			}

			for _, name := range popcat.EndpointNames() {
				ep, _ := popcat.Lookup(name)
				line := fmt.Sprintf("%-16s %s %s", name, ep.Method, ep.Path)
				if req := ep.RequiredParams(); len(req) > 0 {
					line += "  " + strings.Join(req, " ")
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		}),
	}
}
