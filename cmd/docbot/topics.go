package main

import (
	"fmt"
)

// Run executes the topics command.
func (c *TopicsCmd) Run(deps *Dependencies) error {
	topics := deps.Topics.List()
	if len(topics) == 0 {
		fmt.Fprintln(deps.Stdout, "No topics configured. Use --topics to load a topic file.")
		return nil
	}

	for _, t := range topics {
		if t.Description != "" {
			fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", t.Name, t.URL, t.Description)
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s  %s\n", t.Name, t.URL)
	}

	return nil
}
