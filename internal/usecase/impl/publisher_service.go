package impl

import (
	"context"
	"log/slog"
	"time"

	"gamehub/config"
	deliverycontext "gamehub/internal/delivery/context"
	"gamehub/internal/domain/entity"
	"gamehub/internal/domain/event"
	"gamehub/internal/domain/repository"
	"gamehub/internal/domain/service"
	"gamehub/internal/producer"
	"gamehub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// publisherService implements the PublisherUsecase interface.
type publisherService struct {
	txManager             repository.PublisherTransactionManager
	observer              service.PatchObserver
	negativeFeedbackEvery int64
	crashReportEvery      int64
	lowRatingMax          int
	logger                *slog.Logger
	now                   func() time.Time
}

// PublisherServiceParams holds dependencies for PublisherService, injected by Fx.
type PublisherServiceParams struct {
	fx.In

	TxManager repository.PublisherTransactionManager
	Observer  service.PatchObserver `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPublisherService is the constructor for publisherService.
func NewPublisherService(params PublisherServiceParams) usecase.PublisherUsecase {
	return newPublisherService(params)
}

func newPublisherService(params PublisherServiceParams) *publisherService {
	srv := &publisherService{
		txManager:             params.TxManager,
		observer:              params.Observer,
		negativeFeedbackEvery: 15,
		crashReportEvery:      10,
		lowRatingMax:          2,
		logger:                params.Logger,
		now:                   time.Now,
	}
	if params.Config != nil && params.Config.Publisher != nil {
		cfg := params.Config.Publisher
		if cfg.NegativeFeedbackEvery > 0 {
			srv.negativeFeedbackEvery = int64(cfg.NegativeFeedbackEvery)
		}
		if cfg.CrashReportEvery > 0 {
			srv.crashReportEvery = int64(cfg.CrashReportEvery)
		}
		if cfg.LowRatingMax > 0 {
			srv.lowRatingMax = cfg.LowRatingMax
		}
	}

	return srv
}

func (srv *publisherService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *publisherService) HandleGameReviewed(ctx context.Context, e *event.GameReviewed) error {
	var patched bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.PublisherRepositoryFactory) error {
		gameRepo := repoFactory.NewGameRepository()

		game, err := gameRepo.FindByIDForUpdate(ctx, e.GameID)
		if err != nil {
			return errors.Wrapf(err, "failed to find game %d", e.GameID)
		}

		mirrorRepo := repoFactory.NewReviewMirrorRepository()
		inserted, err := mirrorRepo.CreateIfAbsent(ctx, &entity.ReviewMirror{
			ID:              e.ReviewID,
			GameID:          e.GameID,
			Rating:          e.Rating,
			Comment:         e.Comment,
			PublicationDate: e.PublicationDate,
		})
		if err != nil {
			return errors.Wrap(err, "failed to mirror review")
		}
		if !inserted {
			srv.log(ctx).Debug("Review already mirrored", slog.Int64("review_id", e.ReviewID))

			return nil
		}
		if e.Rating > srv.lowRatingMax {
			return nil
		}

		lowRated, err := mirrorRepo.CountByGameIDAndMaxRating(ctx, e.GameID, srv.lowRatingMax)
		if err != nil {
			return errors.Wrap(err, "failed to count low-rated reviews")
		}
		srv.log(ctx).Info("Low-rated review received",
			slog.Int64("game_id", e.GameID),
			slog.Int64("low_rated_total", lowRated),
		)
		if lowRated == 0 || lowRated%srv.negativeFeedbackEvery != 0 {
			return nil
		}

		patched = true

		return srv.autoPatch(ctx, repoFactory, game, entity.PatchReasonNegativeFeedback)
	})
	if err == nil && patched {
		srv.observe(entity.PatchReasonNegativeFeedback)
	}

	return err
}

func (srv *publisherService) HandleCrashReported(ctx context.Context, e *event.CrashReported) error {
	var patched bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.PublisherRepositoryFactory) error {
		game, err := repoFactory.NewGameRepository().FindByIDForUpdate(ctx, e.GameID)
		if err != nil {
			return errors.Wrapf(err, "failed to find game %d", e.GameID)
		}

		crashRepo := repoFactory.NewCrashReportRepository()
		report := &entity.CrashReport{
			GameID:        e.GameID,
			DistributorID: e.DistributorID,
			Platform:      entity.ParsePlatform(e.Platform),
			Version:       e.InstalledVersion,
			ErrorCode:     e.ErrorCode,
			Message:       e.Message,
			ReportDate:    srv.now(),
		}
		if err := crashRepo.Create(ctx, report); err != nil {
			return errors.Wrap(err, "failed to save crash report")
		}

		crashes, err := crashRepo.CountByGameID(ctx, e.GameID)
		if err != nil {
			return errors.Wrap(err, "failed to count crash reports")
		}
		srv.log(ctx).Info("Crash reported",
			slog.Int64("game_id", e.GameID),
			slog.String("game", game.Name),
			slog.Int64("crash_total", crashes),
		)
		if crashes == 0 || crashes%srv.crashReportEvery != 0 {
			return nil
		}

		patched = true

		return srv.autoPatch(ctx, repoFactory, game, entity.PatchReasonCrash)
	})
	if err == nil && patched {
		srv.observe(entity.PatchReasonCrash)
	}

	return err
}

// autoPatch bumps the game version, records the patch and stages PatchPublished.
func (srv *publisherService) autoPatch(
	ctx context.Context,
	repoFactory repository.PublisherRepositoryFactory,
	game *entity.Game,
	reason entity.PatchReason,
) error {
	patch := &entity.Patch{
		GameID:          game.ID,
		Version:         entity.BumpVersion(game.Version),
		Tags:            reason.Tags(),
		Description:     reason.Description(),
		PublicationDate: srv.now(),
	}

	if err := applyPatch(ctx, repoFactory, game, patch, srv.log(ctx)); err != nil {
		return err
	}

	srv.log(ctx).Info("Automatic patch published",
		slog.Int64("game_id", game.ID),
		slog.String("reason", string(reason)),
		slog.String("version", patch.Version),
	)

	return nil
}

func (srv *publisherService) observe(reason entity.PatchReason) {
	if srv.observer != nil {
		srv.observer.AutoPatchStaged(reason)
	}
}

// applyPatch persists patch, moves game to its version and stages PatchPublished.
func applyPatch(
	ctx context.Context,
	repoFactory repository.PublisherRepositoryFactory,
	game *entity.Game,
	patch *entity.Patch,
	logger *slog.Logger,
) error {
	if err := repoFactory.NewPatchRepository().Save(ctx, patch); err != nil {
		return errors.Wrap(err, "failed to save patch")
	}

	game.Version = patch.Version
	if err := repoFactory.NewGameRepository().Save(ctx, game); err != nil {
		return errors.Wrapf(err, "failed to update version of game %d", game.ID)
	}

	sender := producer.NewPublisher(repoFactory.NewEventEmitter(), logger)

	return errors.Wrap(sender.SendPatchPublished(ctx, game.ID, patch.Version), "failed to stage PatchPublished")
}
