package postgres

import (
	"context"

	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/repository"
	"gamehub/internal/infra/persistence/model"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gameRepository implements the repository.GameRepository interface.
type gameRepository struct {
	db *gorm.DB
}

// NewGameRepository is the constructor for gameRepository.
func NewGameRepository(db *gorm.DB) repository.GameRepository {
	return &gameRepository{
		db: db,
	}
}

func (repo *gameRepository) FindByID(ctx context.Context, id int64) (*entity.Game, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate holds the game's row lock until the surrounding transaction ends.
func (repo *gameRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Game, error) {
	return repo.findByID(lockedGameQuery(repo.db.WithContext(ctx)), id)
}

func (repo *gameRepository) findByID(db *gorm.DB, id int64) (*entity.Game, error) {
	var gameM model.GameModel

	if err := db.
		Where("id = ?", id).
		First(&gameM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGameNotFound
		}

		return nil, errors.Wrap(err, "failed to find game by ID")
	}

	return toGameDomain(&gameM), nil
}

func lockedGameQuery(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
}

func (repo *gameRepository) FindAll(ctx context.Context) ([]*entity.Game, error) {
	var gameModels []*model.GameModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&gameModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find games")
	}

	return toGameDomains(gameModels), nil
}

func (repo *gameRepository) FindByPublisherID(ctx context.Context, publisherID int64) ([]*entity.Game, error) {
	var gameModels []*model.GameModel

	if err := repo.db.WithContext(ctx).
		Where("publisher_id = ?", publisherID).
		Order("id").
		Find(&gameModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find games by publisher")
	}

	return toGameDomains(gameModels), nil
}

func (repo *gameRepository) Save(ctx context.Context, game *entity.Game) error {
	gameM := fromGameDomain(game)

	if err := repo.db.WithContext(ctx).Save(gameM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPublisherNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required game information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save game")
	}

	game.ID = gameM.ID

	return nil
}

func (repo *gameRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.GameModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete game")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGameNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toGameDomains(gameModels []*model.GameModel) []*entity.Game {
	games := make([]*entity.Game, 0, len(gameModels))
	for _, gameM := range gameModels {
		games = append(games, toGameDomain(gameM))
	}

	return games
}

func toGameDomain(data *model.GameModel) *entity.Game {
	if data == nil {
		return nil
	}

	platforms := make([]entity.Platform, 0, len(data.Platforms))
	for _, p := range data.Platforms {
		platforms = append(platforms, entity.Platform(p))
	}
	genres := make([]entity.Genre, 0, len(data.Genres))
	for _, g := range data.Genres {
		genres = append(genres, entity.Genre(g))
	}

	return &entity.Game{
		ID:          data.ID,
		PublisherID: data.PublisherID,
		Name:        data.Name,
		Version:     data.Version,
		ReleaseDate: data.ReleaseDate,
		Platforms:   platforms,
		Genres:      genres,
	}
}

func fromGameDomain(data *entity.Game) *model.GameModel {
	if data == nil {
		return nil
	}

	platforms := make(pq.StringArray, 0, len(data.Platforms))
	for _, p := range data.Platforms {
		platforms = append(platforms, string(p))
	}
	genres := make(pq.StringArray, 0, len(data.Genres))
	for _, g := range data.Genres {
		genres = append(genres, string(g))
	}

	return &model.GameModel{
		ID:          data.ID,
		PublisherID: data.PublisherID,
		Name:        data.Name,
		Version:     data.Version,
		ReleaseDate: data.ReleaseDate,
		Platforms:   platforms,
		Genres:      genres,
	}
}
