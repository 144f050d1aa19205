package impl

import (
	"fmt"
	"strings"
	"time"

	"gamehub/internal/domain/entity"
)

const (
	pageRule    = "=================================\n"
	sectionRule = "---------------------------------\n"
)

// playerSummary is a player with the aggregates shown on the directory page.
type playerSummary struct {
	player        *entity.Player
	ownedGames    int
	totalPlayTime int
}

func renderPlayerPage(players []playerSummary) string {
	if len(players) == 0 {
		return "No players registered with this distributor."
	}

	var page strings.Builder
	page.WriteString(pageRule)
	page.WriteString("      PLAYERS DIRECTORY\n")
	page.WriteString(pageRule)
	page.WriteString("\n")

	for _, summary := range players {
		p := summary.player
		fmt.Fprintf(&page, "Player ID: %d\n", p.ID)
		fmt.Fprintf(&page, "Name: %s %s\n", p.FirstName, p.LastName)
		fmt.Fprintf(&page, "Pseudo: %s\n", p.Pseudo)
		fmt.Fprintf(&page, "Registration Date: %s\n", p.RegistrationDate.Format(time.RFC3339))
		fmt.Fprintf(&page, "Owned Games: %d\n", summary.ownedGames)
		fmt.Fprintf(&page, "Total Playtime: %d minutes\n", summary.totalPlayTime)
		fmt.Fprintf(&page, "Wishlist: %d games\n", len(p.WishedGames))
		page.WriteString(sectionRule)
	}

	return page.String()
}

func renderGamesPage(distributor *entity.Distributor, platform string, games []*entity.DistributedGame) string {
	var page strings.Builder
	page.WriteString(pageRule)
	fmt.Fprintf(&page, "   AVAILABLE GAMES - %s\n", platform)
	fmt.Fprintf(&page, "   Distributor: %s\n", distributor.Name)
	page.WriteString(pageRule)
	page.WriteString("\n")

	if len(games) == 0 {
		page.WriteString("No games available for this platform.\n")

		return page.String()
	}

	for _, game := range games {
		fmt.Fprintf(&page, "Game ID: %d\n", game.GameID)
		fmt.Fprintf(&page, "Name: %s\n", game.GameName)
		fmt.Fprintf(&page, "Version: %s\n", game.Version)
		fmt.Fprintf(&page, "Price: $%.2f\n", game.Price)
		if game.Sale != nil {
			fmt.Fprintf(&page, "SALE! %d%% OFF - Now: $%.2f\n", int(*game.Sale*100), game.SalePrice())
		}
		page.WriteString(sectionRule)
	}

	return page.String()
}

func renderReviewsPage(distributor *entity.Distributor, game *entity.DistributedGame, reviews []*entity.Review) string {
	var page strings.Builder
	page.WriteString(pageRule)
	page.WriteString("   GAME REVIEWS\n")
	fmt.Fprintf(&page, "   Game: %s\n", game.GameName)
	fmt.Fprintf(&page, "   Distributor: %s\n", distributor.Name)
	page.WriteString(pageRule)
	page.WriteString("\n")

	if len(reviews) == 0 {
		page.WriteString("No reviews yet for this game.\n")

		return page.String()
	}

	total := 0
	for _, review := range reviews {
		total += review.Rating
	}
	fmt.Fprintf(&page, "Total Reviews: %d\n", len(reviews))
	fmt.Fprintf(&page, "Average Rating: %.1f/10\n\n", float64(total)/float64(len(reviews)))

	for _, review := range reviews {
		fmt.Fprintf(&page, "Review ID: %d\n", review.ID)
		fmt.Fprintf(&page, "Rating: %d/10\n", review.Rating)
		fmt.Fprintf(&page, "Comment: %s\n", review.Comment)
		fmt.Fprintf(&page, "Date: %s\n", review.PublicationDate.Format(time.RFC3339))
		fmt.Fprintf(&page, "Reactions: 👍 %d | 👎 %d\n", len(review.PositiveReactions), len(review.NegativeReactions))
		page.WriteString(sectionRule)
	}

	return page.String()
}
