package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/html2ans"
	"github.com/fwojciec/html2ans/htmltomarkdown"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	story, err := deps.Stories.FindStoryByID(deps.Ctx, c.ID)
	if err != nil {
		if html2ans.ErrorCode(err) == html2ans.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: story %q not found. Use 'html2ans list' to see saved stories.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", html2ans.ErrorMessage(err))
		}
		return err
	}

	if c.Format == "markdown" {
		md, err := html2ans.FormatStory(story, htmltomarkdown.NewConverter())
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, md)
		return nil
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(newStoryOutput(story.ID, story.Source, story.Title, story.ContentElements))
}
