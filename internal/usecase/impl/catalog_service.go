package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	deliverycontext "gamehub/internal/delivery/context"
	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/repository"
	"gamehub/internal/domain/service"
	"gamehub/internal/producer"
	"gamehub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const manualPatchDescription = "Patch published by an operator."

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager repository.PublisherTransactionManager
	source    service.CatalogSource
	logger    *slog.Logger
	now       func() time.Time
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.PublisherTransactionManager
	Source    service.CatalogSource `optional:"true"`
	Logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager: params.TxManager,
		source:    params.Source,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) AddPublisher(ctx context.Context, name string, isCompany bool) (*entity.Publisher, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("publisher name is required")
	}

	publisher := &entity.Publisher{Name: name, IsCompany: isCompany}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.PublisherRepositoryFactory) error {
		return errors.Wrap(repoFactory.NewPublisherRepository().Save(ctx, publisher), "failed to save publisher")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Publisher added", slog.Int64("publisher_id", publisher.ID), slog.String("name", name))

	return publisher, nil
}

func (srv *catalogService) RemovePublisher(ctx context.Context, ref string) (*entity.Publisher, error) {
	var removed *entity.Publisher
	err := srv.txManager.Execute(ctx, func(repoFactory repository.PublisherRepositoryFactory) error {
		repo := repoFactory.NewPublisherRepository()

		ref = strings.TrimSpace(ref)
		var (
			publisher *entity.Publisher
			err       error
		)
		if id, parseErr := strconv.ParseInt(ref, 10, 64); parseErr == nil {
			publisher, err = repo.FindByID(ctx, id)
		} else {
			publisher, err = repo.FindFirstByName(ctx, ref)
		}
		if err != nil {
			return errors.Wrapf(err, "failed to find publisher %q", ref)
		}

		if err := repo.Delete(ctx, publisher.ID); err != nil {
			return errors.Wrapf(err, "failed to delete publisher %d", publisher.ID)
		}
		removed = publisher

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Publisher removed", slog.Int64("publisher_id", removed.ID))

	return removed, nil
}

func (srv *catalogService) ListPublishers(ctx context.Context) ([]*entity.Publisher, error) {
	var publishers []*entity.Publisher
	err := srv.txManager.Execute(ctx, func(repoFactory repository.PublisherRepositoryFactory) error {
		var err error
		publishers, err = repoFactory.NewPublisherRepository().FindAll(ctx)

		return errors.Wrap(err, "failed to list publishers")
	})

	return publishers, err
}

func (srv *catalogService) ListGames(ctx context.Context) ([]*entity.Game, error) {
	var games []*entity.Game
	err := srv.txManager.Execute(ctx, func(repoFactory repository.PublisherRepositoryFactory) error {
		var err error
		games, err = repoFactory.NewGameRepository().FindAll(ctx)

		return errors.Wrap(err, "failed to list games")
	})

	return games, err
}

func (srv *catalogService) PublishGame(ctx context.Context, gameID int64) (*entity.Game, error) {
	var game *entity.Game
	err := srv.txManager.Execute(ctx, func(repoFactory repository.PublisherRepositoryFactory) error {
		var err error
		game, err = repoFactory.NewGameRepository().FindByID(ctx, gameID)
		if err != nil {
			return errors.Wrapf(err, "failed to find game %d", gameID)
		}

		sender := producer.NewPublisher(repoFactory.NewEventEmitter(), srv.log(ctx))

		return errors.Wrap(sender.SendGamePublished(ctx, game), "failed to stage GamePublished")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Game published", slog.Int64("game_id", game.ID), slog.String("name", game.Name))

	return game, nil
}

func (srv *catalogService) PublishPatch(ctx context.Context, gameID int64, version string) (*entity.Patch, error) {
	version = strings.TrimSpace(version)
	if version == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("patch version is required")
	}

	patch := &entity.Patch{
		GameID:          gameID,
		Version:         version,
		Tags:            []entity.LogTag{},
		Description:     manualPatchDescription,
		PublicationDate: srv.now(),
	}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.PublisherRepositoryFactory) error {
		game, err := repoFactory.NewGameRepository().FindByIDForUpdate(ctx, gameID)
		if err != nil {
			return errors.Wrapf(err, "failed to find game %d", gameID)
		}

		return applyPatch(ctx, repoFactory, game, patch, srv.log(ctx))
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Patch published", slog.Int64("game_id", gameID), slog.String("version", version))

	return patch, nil
}

func (srv *catalogService) LoadCatalog(ctx context.Context, maxLines int) (int, error) {
	if srv.source == nil {
		return 0, domainerrors.ErrInvalidState.WrapMessage("no catalog source configured")
	}

	records, err := srv.source.Read(ctx, maxLines)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read catalog")
	}

	created := 0
	err = srv.txManager.Execute(ctx, func(repoFactory repository.PublisherRepositoryFactory) error {
		publisherRepo := repoFactory.NewPublisherRepository()
		gameRepo := repoFactory.NewGameRepository()
		publishers := make(map[string]*entity.Publisher)

		for i, record := range records {
			publisher, err := srv.findOrCreatePublisher(ctx, publisherRepo, publishers, record.Publisher)
			if err != nil {
				return errors.Wrapf(err, "record %d", i+1)
			}

			game := &entity.Game{
				PublisherID: publisher.ID,
				Name:        record.Name,
				Version:     entity.InitialVersion,
				ReleaseDate: srv.now(),
				Platforms:   []entity.Platform{record.Platform},
				Genres:      []entity.Genre{record.Genre},
			}
			if err := gameRepo.Save(ctx, game); err != nil {
				return errors.Wrapf(err, "failed to save game %q", record.Name)
			}
			created++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	srv.log(ctx).Info("Catalog imported", slog.Int("games", created), slog.Int("records", len(records)))

	return created, nil
}

// findOrCreatePublisher resolves a publisher by name, creating a company when unknown.
func (srv *catalogService) findOrCreatePublisher(
	ctx context.Context,
	repo repository.PublisherRepository,
	cache map[string]*entity.Publisher,
	name string,
) (*entity.Publisher, error) {
	if publisher, ok := cache[name]; ok {
		return publisher, nil
	}

	publisher, err := repo.FindFirstByName(ctx, name)
	if errors.Is(err, repository.ErrPublisherNotFound) {
		publisher = &entity.Publisher{Name: name, IsCompany: true}
		if err := repo.Save(ctx, publisher); err != nil {
			return nil, errors.Wrapf(err, "failed to create publisher %q", name)
		}
	} else if err != nil {
		return nil, errors.Wrapf(err, "failed to find publisher %q", name)
	}

	cache[name] = publisher

	return publisher, nil
}
