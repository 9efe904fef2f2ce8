package main

import (
	"fmt"

	"github.com/fwojciec/html2ans"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := html2ans.StoryFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.Source = &c.Source
	}

	stories, err := deps.Stories.FindStories(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", html2ans.ErrorMessage(err))
		return err
	}

	if len(stories) == 0 {
		fmt.Fprintln(deps.Stdout, "No stories found. Use 'html2ans convert --save' to create one.")
		return nil
	}

	for _, s := range stories {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d elements  %s\n",
			s.ID, s.CreatedAt.Format("2006-01-02 15:04"), s.Source, len(s.ContentElements), s.Title)
	}

	return nil
}
