package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/fwojciec/docbot"
	"github.com/fwojciec/docbot/crawl"
)

// maxStatusURLLen bounds page URLs printed in the status line.
const maxStatusURLLen = 70

// searchOutput is the JSON envelope printed by "search --json".
type searchOutput struct {
	Topic  string   `json:"topic"`
	URL    string   `json:"url"`
	Query  string   `json:"query"`
	Status string   `json:"status"`
	Found  bool     `json:"found"`
	Reply  string   `json:"reply"`
	Pages  []string `json:"pages"`
	Error  string   `json:"error,omitempty"`
}

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	topic, err := deps.Topics.Lookup(c.Topic)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'docbot topics' to see available topics.\n", docbot.ErrorMessage(err))
		return err
	}

	query := strings.Join(c.Query, " ")
	result := deps.Searcher.Search(deps.Ctx, topic.URL, query)
	reply := docbot.TruncateReply(result.String(), docbot.EmbedDescriptionLimit)

	if c.JSON {
		out := searchOutput{
			Topic:  topic.Name,
			URL:    topic.URL,
			Query:  query,
			Status: result.Status.String(),
			Found:  result.Found(),
			Reply:  reply,
			Pages:  make([]string, 0, len(result.Pages)),
		}
		for _, p := range result.Pages {
			out.Pages = append(out.Pages, p.URL)
		}
		if result.Err != nil {
			out.Error = result.Err.Error()
		}
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintln(deps.Stdout, reply)
	printStatus(deps, topic, query, result)
	return nil
}

func printStatus(deps *Dependencies, topic docbot.Topic, query string, result *docbot.Result) {
	switch result.Status {
	case docbot.StatusOK:
		color.New(color.FgGreen).Fprintf(deps.Stderr, "Found %q in %d page(s) of %s\n", query, len(result.Pages), topic.Name)
		for _, p := range result.Pages {
			fmt.Fprintf(deps.Stderr, "  %s (%d)\n", crawl.TruncateURL(p.URL, maxStatusURLLen), p.Count)
		}
	case docbot.StatusEmpty:
		color.New(color.FgYellow).Fprintf(deps.Stderr, "No pages of %s mention %q\n", topic.Name, query)
	default:
		color.New(color.FgRed).Fprintf(deps.Stderr, "Failed to search %s\n", topic.URL)
	}
}
