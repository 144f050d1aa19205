package producer

import (
	"context"
	"log/slog"

	"gamehub/internal/domain/entity"
	"gamehub/internal/domain/event"
	"gamehub/internal/domain/service"
)

// Distributor sends the events the distributor service produces.
type Distributor struct {
	base
}

// NewDistributor binds the senders to emitter.
func NewDistributor(emitter service.EventEmitter, logger *slog.Logger) *Distributor {
	return &Distributor{base{emitter: emitter, logger: logger}}
}

func (p *Distributor) SendGameDistributed(ctx context.Context, game *entity.DistributedGame) error {
	return p.send(ctx, event.GameKey(game.GameID), &event.GameDistributed{
		DistributorID: game.DistributorID,
		GameID:        game.GameID,
		GameName:      game.GameName,
	})
}

func (p *Distributor) SendPatchDistributed(ctx context.Context, game *entity.DistributedGame) error {
	return p.send(ctx, event.GameKey(game.GameID), &event.PatchDistributed{
		DistributorID: game.DistributorID,
		GameID:        game.GameID,
		NewVersion:    game.Version,
		GameName:      game.GameName,
	})
}

func (p *Distributor) SendSaleStarted(ctx context.Context, game *entity.DistributedGame) error {
	var pct float64
	if game.Sale != nil {
		pct = *game.Sale
	}

	return p.send(ctx, event.GameKey(game.GameID), &event.SaleStarted{
		DistributorID:  game.DistributorID,
		GameID:         game.GameID,
		SalePercentage: pct,
		GameName:       game.GameName,
	})
}

// SendGameReviewed carries the review with its current reaction lists.
func (p *Distributor) SendGameReviewed(ctx context.Context, distributorID int64, review *entity.Review) error {
	positive := review.PositiveReactions
	if positive == nil {
		positive = []int64{}
	}
	negative := review.NegativeReactions
	if negative == nil {
		negative = []int64{}
	}

	return p.send(ctx, event.GameKey(review.GameID), &event.GameReviewed{
		ReviewID:                  review.ID,
		DistributorID:             distributorID,
		GameID:                    review.GameID,
		Rating:                    review.Rating,
		Comment:                   review.Comment,
		PublicationDate:           review.PublicationDate,
		PositiveReactionPlayerIDs: positive,
		NegativeReactionPlayerIDs: negative,
	})
}

func (p *Distributor) SendReviewRefused(ctx context.Context, player *entity.Player, gameName string) error {
	return p.send(ctx, event.PlayerKey(player.ID), &event.ReviewRefused{
		ReviewID:   0,
		PlayerName: player.Pseudo,
		GameName:   gameName,
	})
}

func (p *Distributor) SendCrashReported(ctx context.Context, distributorID int64, crash *event.ReportCrash) error {
	return p.send(ctx, event.GameKey(crash.GameID), &event.CrashReported{
		DistributorID:    distributorID,
		GameID:           crash.GameID,
		Platform:         crash.Platform,
		InstalledVersion: crash.InstalledVersion,
		ErrorCode:        crash.ErrorCode,
		Message:          crash.Message,
	})
}

func (p *Distributor) SendGameFile(ctx context.Context, player *entity.Player, game *entity.DistributedGame, platform string) error {
	return p.send(ctx, event.PlayerKey(player.ID), &event.SendGameFile{
		TargetID:   player.ID,
		GameID:     game.GameID,
		Version:    game.Version,
		GameName:   game.GameName,
		Platform:   platform,
		PlayerName: player.Pseudo,
	})
}

func (p *Distributor) SendPlayerPage(ctx context.Context, distributorID int64, page string) error {
	return p.send(ctx, "", &event.SendPlayerPage{DistributorID: distributorID, Page: page})
}

func (p *Distributor) SendGamesPage(ctx context.Context, distributorID int64, platform, page string) error {
	return p.send(ctx, "", &event.SendGamesPage{DistributorID: distributorID, Platform: platform, Page: page})
}

func (p *Distributor) SendGameReviews(ctx context.Context, distributorID, gameID int64, page string) error {
	return p.send(ctx, "", &event.SendGameReviews{DistributorID: distributorID, GameID: gameID, Page: page})
}
