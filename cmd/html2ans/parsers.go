package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/html2ans"
)

// Run executes the parsers command.
func (c *ParsersCmd) Run(deps *Dependencies) error {
	engine, err := newEngine(false, nil)
	if err != nil {
		return err
	}

	tags := engine.Tags()
	if c.Tag != "" {
		tag := strings.ToLower(c.Tag)
		if len(engine.Parsers(tag)) == 0 {
			fmt.Fprintf(deps.Stderr, "error: no parsers registered for <%s>\n", tag)
			return html2ans.Errorf(html2ans.ENOTFOUND, "no parsers registered for <%s>", tag)
		}
		tags = []string{tag}
	}

	for _, tag := range tags {
		names := make([]string, 0)
		for _, p := range engine.Parsers(tag) {
			names = append(names, parserName(p))
		}
		fmt.Fprintf(deps.Stdout, "%s: %s\n", tag, strings.Join(names, ", "))
	}

	return nil
}

func parserName(p html2ans.ElementParser) string {
	if s, ok := p.(fmt.Stringer); ok {
		return s.String()
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", p), "*goquery.")
}
