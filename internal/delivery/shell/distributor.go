package shell

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"gamehub/internal/usecase"

	"github.com/gosuri/uitable"
	"go.uber.org/fx"
)

// DistributorCommandsParams holds dependencies for the distributor verbs, injected by Fx.
type DistributorCommandsParams struct {
	fx.In

	Admin usecase.DistributorAdminUsecase
}

// NewDistributorCommands returns the operator verbs of the distributor service.
func NewDistributorCommands(params DistributorCommandsParams) []Command {
	admin := params.Admin

	return []Command{
		{
			Name:    "add-distributor",
			Usage:   "add-distributor <name>",
			MinArgs: 1,
			Run: func(ctx context.Context, out io.Writer, args []string) error {
				fmt.Fprintln(out, "> Adding new distributor...")
				d, err := admin.AddDistributor(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Added distributor: %d %s\n", d.ID, d.Name)

				return nil
			},
		},
		{
			Name:    "remove-distributor",
			Usage:   "remove-distributor <id|name...>",
			MinArgs: 1,
			Run: func(ctx context.Context, out io.Writer, args []string) error {
				fmt.Fprintln(out, "> Removing distributor(s)...")
				for _, ref := range args {
					d, err := admin.RemoveDistributor(ctx, ref)
					if err != nil {
						fmt.Fprintf(out, "Error: '%s' is not a valid distributor ID. (%v)\n", ref, err)

						continue
					}
					fmt.Fprintf(out, "Removed distributor: %d %s\n", d.ID, d.Name)
				}

				return nil
			},
		},
		{
			Name:  "get-distributor",
			Usage: "get-distributor",
			Run: func(ctx context.Context, out io.Writer, _ []string) error {
				distributors, err := admin.ListDistributors(ctx)
				if err != nil {
					return err
				}

				table := uitable.New()
				table.AddRow("ID", "NAME")
				for _, d := range distributors {
					table.AddRow(d.ID, d.Name)
				}
				fmt.Fprintln(out, table)

				return nil
			},
		},
		{
			Name:  "list-games",
			Usage: "list-games [distributorId]",
			Run: func(ctx context.Context, out io.Writer, args []string) error {
				distributorID, ok := parseID(out, args, 0)
				if !ok {
					return nil
				}
				games, err := admin.ListDistributedGames(ctx, distributorID)
				if err != nil {
					return err
				}

				table := uitable.New()
				table.RightAlign(5)
				table.AddRow("ID", "DISTRIBUTOR", "GAME", "NAME", "VERSION", "PRICE", "SALE")
				for _, g := range games {
					sale := ""
					if g.Sale != nil {
						sale = strconv.FormatFloat(*g.Sale*100, 'f', 0, 64) + "%"
					}
					table.AddRow(g.ID, g.DistributorID, g.GameID, g.GameName, g.Version, fmt.Sprintf("%.2f", g.Price), sale)
				}
				fmt.Fprintln(out, table)

				return nil
			},
		},
		{
			Name:  "list-players",
			Usage: "list-players [distributorId]",
			Run: func(ctx context.Context, out io.Writer, args []string) error {
				distributorID, ok := parseID(out, args, 0)
				if !ok {
					return nil
				}
				players, err := admin.ListPlayers(ctx, distributorID)
				if err != nil {
					return err
				}

				table := uitable.New()
				table.AddRow("ID", "DISTRIBUTOR", "PSEUDO", "NAME", "REGISTERED", "WISHLIST")
				for _, p := range players {
					table.AddRow(p.ID, p.DistributorID, p.Pseudo, p.FirstName+" "+p.LastName,
						p.RegistrationDate.Format(time.DateOnly), len(p.WishedGames))
				}
				fmt.Fprintln(out, table)

				return nil
			},
		},
		{
			Name:  "list-owned-games",
			Usage: "list-owned-games [playerId]",
			Run: func(ctx context.Context, out io.Writer, args []string) error {
				playerID, ok := parseID(out, args, 0)
				if !ok {
					return nil
				}
				owned, err := admin.ListOwnedGames(ctx, playerID)
				if err != nil {
					return err
				}

				table := uitable.New()
				table.AddRow("ID", "PLAYER", "GAME", "PURCHASED", "PLAYTIME (MIN)")
				for _, o := range owned {
					table.AddRow(o.ID, o.PlayerID, o.GameID, o.PurchaseDate.Format(time.DateOnly), o.PlayTime)
				}
				fmt.Fprintln(out, table)

				return nil
			},
		},
		{
			Name:  "list-reviews",
			Usage: "list-reviews [gameId]",
			Run: func(ctx context.Context, out io.Writer, args []string) error {
				gameID, ok := parseID(out, args, 0)
				if !ok {
					return nil
				}
				reviews, err := admin.ListReviews(ctx, gameID)
				if err != nil {
					return err
				}

				table := uitable.New()
				table.MaxColWidth = 50
				table.AddRow("ID", "GAME", "PLAYER", "RATING", "+", "-", "COMMENT")
				for _, r := range reviews {
					table.AddRow(r.ID, r.GameID, r.PlayerID, r.Rating,
						len(r.PositiveReactions), len(r.NegativeReactions), r.Comment)
				}
				fmt.Fprintln(out, table)

				return nil
			},
		},
		{
			Name:    "start-sale",
			Usage:   "start-sale <distributorId> <gameId> <fraction 0-1>",
			MinArgs: 3,
			Run: func(ctx context.Context, out io.Writer, args []string) error {
				distributorID, ok := parseInt(out, args[0])
				if !ok {
					return nil
				}
				gameID, ok := parseInt(out, args[1])
				if !ok {
					return nil
				}
				pct, err := strconv.ParseFloat(args[2], 64)
				if err != nil {
					fmt.Fprintf(out, "Error: '%s' is not a valid number.\n", args[2])

					return nil
				}

				fmt.Fprintln(out, "> Starting sale...")
				if err := admin.StartSale(ctx, distributorID, gameID, pct); err != nil {
					return err
				}
				fmt.Fprintf(out, "Sale started on game %d at distributor %d\n", gameID, distributorID)

				return nil
			},
		},
	}
}
