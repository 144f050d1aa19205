// Package handler binds the usecases of each service to bus listeners.
package handler

import (
	"context"
	"log/slog"

	"gamehub/internal/delivery/consumer"
	"gamehub/internal/domain/constants"
	"gamehub/internal/domain/event"
	"gamehub/internal/usecase"

	"go.uber.org/fx"
)

// DistributorListenersParams holds dependencies for the distributor listeners, injected by Fx
type DistributorListenersParams struct {
	fx.In

	Usecase usecase.DistributorUsecase
	Logger  *slog.Logger
}

// NewDistributorListeners returns one listener per topic the distributor consumes.
func NewDistributorListeners(params DistributorListenersParams) []consumer.Listener {
	uc := params.Usecase
	id := func(name string) string { return consumer.ListenerID(constants.ServiceDistributor, name) }

	return []consumer.Listener{
		consumer.Bind(id("GamePublished"), event.TopicGamePublished, uc.HandleGamePublished),
		consumer.Bind(id("PatchPublished"), event.TopicPatchPublished, uc.HandlePatchPublished),
		consumer.Bind(id("RegisterPlayer"), event.TopicRegisterPlayer,
			func(ctx context.Context, e *event.RegisterPlayer) error {
				_, err := uc.RegisterPlayer(ctx, e)

				return err
			}),
		consumer.Bind(id("PurchaseGame"), event.TopicPurchaseGame, uc.PurchaseGame),
		consumer.Bind(id("AddPlayTime"), event.TopicAddPlayTime, uc.AddPlayTime),
		consumer.Bind(id("ReviewGame"), event.TopicReviewGame, uc.ReviewGame),
		consumer.Bind(id("ReactReview"), event.TopicReactReview, uc.ReactReview),
		consumer.Bind(id("AddWishedGame"), event.TopicAddWishedGame, uc.AddWishedGame),
		consumer.Bind(id("RemoveWishedGame"), event.TopicRemoveWishedGame, uc.RemoveWishedGame),
		consumer.Bind(id("InstallGame"), event.TopicInstallGame, uc.InstallGame),
		consumer.Bind(id("UpdateGame"), event.TopicUpdateGame, uc.UpdateGame),
		consumer.Bind(id("UninstallGame"), event.TopicUninstallGame, uc.UninstallGame),
		consumer.Bind(id("ReportCrash"), event.TopicReportCrash, uc.ReportCrash),
		consumer.Bind(id("AskPlayerPage"), event.TopicAskPlayerPage, uc.AskPlayerPage),
		consumer.Bind(id("AskGamesPage"), event.TopicAskGamesPage, uc.AskGamesPage),
		consumer.Bind(id("AskGameReviews"), event.TopicAskGameReviews, uc.AskGameReviews),
		exampleListener(constants.ServiceDistributor, params.Logger),
	}
}
