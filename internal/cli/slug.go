package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/pickadate/internal/slug"
)

type SlugCmd struct {
	Name string `arg:"" help:"Visitor name to turn into a route."`
}

func (c *SlugCmd) Run(ctx *Context) error {
	if !slug.Valid(c.Name) {
		return errors.New("name cannot be blank")
	}
	s := slug.Slugify(c.Name)
	fmt.Printf("Slug:         %s\n", s)
	fmt.Printf("Route:        %s\n", slug.Route(s))
	fmt.Printf("Display name: %s\n", slug.DisplayName(s))
	return nil
}
