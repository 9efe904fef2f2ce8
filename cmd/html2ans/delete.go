package main

import (
	"fmt"

	"github.com/fwojciec/html2ans"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return html2ans.Errorf(html2ans.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Stories.DeleteStory(deps.Ctx, c.ID); err != nil {
		if html2ans.ErrorCode(err) == html2ans.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: story %q not found. Use 'html2ans list' to see saved stories.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", html2ans.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted story %s\n", c.ID)
	return nil
}
