package shell

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gamehub/internal/domain/entity"
	"gamehub/internal/usecase"

	"github.com/gosuri/uitable"
	"go.uber.org/fx"
)

// PublisherCommandsParams holds dependencies for the publisher verbs, injected by Fx.
type PublisherCommandsParams struct {
	fx.In

	Catalog usecase.CatalogUsecase
}

// NewPublisherCommands returns the operator verbs of the publisher service.
func NewPublisherCommands(params PublisherCommandsParams) []Command {
	catalog := params.Catalog

	return []Command{
		{
			Name:    "add-publisher",
			Usage:   "add-publisher <name> <isCompany 1|0>",
			MinArgs: 2,
			Run: func(ctx context.Context, out io.Writer, args []string) error {
				isCompany, ok := parseFlag(args[1])
				if !ok {
					fmt.Fprintf(out, "Error: '%s' is not 1 or 0.\n", args[1])

					return nil
				}

				fmt.Fprintln(out, "> Adding new publisher...")
				p, err := catalog.AddPublisher(ctx, args[0], isCompany)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Added publisher: %d %s (company: %t)\n", p.ID, p.Name, p.IsCompany)

				return nil
			},
		},
		{
			Name:    "remove-publisher",
			Usage:   "remove-publisher <id|name...>",
			MinArgs: 1,
			Run: func(ctx context.Context, out io.Writer, args []string) error {
				fmt.Fprintln(out, "> Removing publisher(s)...")
				for _, ref := range args {
					p, err := catalog.RemovePublisher(ctx, ref)
					if err != nil {
						fmt.Fprintf(out, "Error: '%s' is not a valid publisher ID. (%v)\n", ref, err)

						continue
					}
					fmt.Fprintf(out, "Removed publisher: %d %s\n", p.ID, p.Name)
				}

				return nil
			},
		},
		{
			Name:  "get-publisher",
			Usage: "get-publisher",
			Run: func(ctx context.Context, out io.Writer, _ []string) error {
				publishers, err := catalog.ListPublishers(ctx)
				if err != nil {
					return err
				}

				table := uitable.New()
				table.AddRow("ID", "NAME", "COMPANY")
				for _, p := range publishers {
					table.AddRow(p.ID, p.Name, p.IsCompany)
				}
				fmt.Fprintln(out, table)

				return nil
			},
		},
		{
			Name:  "list-games",
			Usage: "list-games",
			Run: func(ctx context.Context, out io.Writer, _ []string) error {
				games, err := catalog.ListGames(ctx)
				if err != nil {
					return err
				}

				table := uitable.New()
				table.MaxColWidth = 40
				table.AddRow("ID", "PUBLISHER", "NAME", "VERSION", "PLATFORMS", "GENRES")
				for _, g := range games {
					table.AddRow(g.ID, g.PublisherID, g.Name, g.Version, joinPlatforms(g.Platforms), joinGenres(g.Genres))
				}
				fmt.Fprintln(out, table)

				return nil
			},
		},
		{
			Name:    "publish-game",
			Usage:   "publish-game <gameId>",
			MinArgs: 1,
			Run: func(ctx context.Context, out io.Writer, args []string) error {
				gameID, ok := parseInt(out, args[0])
				if !ok {
					return nil
				}

				fmt.Fprintln(out, "> Publishing game...")
				g, err := catalog.PublishGame(ctx, gameID)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Published game: %d %s %s\n", g.ID, g.Name, g.Version)

				return nil
			},
		},
		{
			Name:    "publish-patch",
			Usage:   "publish-patch <gameId> <version>",
			MinArgs: 2,
			Run: func(ctx context.Context, out io.Writer, args []string) error {
				gameID, ok := parseInt(out, args[0])
				if !ok {
					return nil
				}

				fmt.Fprintln(out, "> Publishing patch...")
				p, err := catalog.PublishPatch(ctx, gameID, args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Published patch: game %d version %s\n", p.GameID, p.Version)

				return nil
			},
		},
		{
			Name:    "load-csv",
			Usage:   "load-csv <maxLines>",
			MinArgs: 1,
			Run: func(ctx context.Context, out io.Writer, args []string) error {
				maxLines, ok := parseInt(out, args[0])
				if !ok {
					return nil
				}

				fmt.Fprintln(out, "> Loading catalog...")
				created, err := catalog.LoadCatalog(ctx, int(maxLines))
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Imported %d game(s)\n", created)

				return nil
			},
		},
	}
}

func parseFlag(raw string) (bool, bool) {
	switch strings.ToLower(raw) {
	case "1", "true":
		return true, true
	case "0", "false":
		return false, true
	default:
		return false, false
	}
}

func joinPlatforms(platforms []entity.Platform) string {
	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = string(p)
	}

	return strings.Join(names, ",")
}

func joinGenres(genres []entity.Genre) string {
	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = string(g)
	}

	return strings.Join(names, ",")
}
