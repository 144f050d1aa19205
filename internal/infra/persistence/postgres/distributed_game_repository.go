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

// distributedGameRepository implements the repository.DistributedGameRepository interface.
type distributedGameRepository struct {
	db *gorm.DB
}

// NewDistributedGameRepository is the constructor for distributedGameRepository.
func NewDistributedGameRepository(db *gorm.DB) repository.DistributedGameRepository {
	return &distributedGameRepository{
		db: db,
	}
}

func (repo *distributedGameRepository) FindByID(ctx context.Context, id int64) (*entity.DistributedGame, error) {
	return repo.first(ctx, "failed to find distributed game by ID", "id = ?", id)
}

func (repo *distributedGameRepository) FindAll(ctx context.Context) ([]*entity.DistributedGame, error) {
	return repo.find(ctx, "failed to find distributed games")
}

func (repo *distributedGameRepository) FindByDistributorID(ctx context.Context, distributorID int64) ([]*entity.DistributedGame, error) {
	return repo.find(ctx, "failed to find distributed games by distributor", "distributor_id = ?", distributorID)
}

func (repo *distributedGameRepository) FindByDistributorIDAndGameID(ctx context.Context, distributorID, gameID int64) (*entity.DistributedGame, error) {
	return repo.first(ctx, "failed to find distributed game", "distributor_id = ? AND game_id = ?", distributorID, gameID)
}

func (repo *distributedGameRepository) FindByGameID(ctx context.Context, gameID int64) ([]*entity.DistributedGame, error) {
	return repo.find(ctx, "failed to find distributed games by game", "game_id = ?", gameID)
}

// CreateIfAbsent inserts the listing unless (distributor, game) already exists.
func (repo *distributedGameRepository) CreateIfAbsent(ctx context.Context, game *entity.DistributedGame) (bool, error) {
	gameM := fromDistributedGameDomain(game)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "distributor_id"}, {Name: "game_id"}},
			DoNothing: true,
		}).
		Create(gameM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, repository.ErrDistributorNotFound
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create distributed game")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}
	game.ID = gameM.ID

	return true, nil
}

func (repo *distributedGameRepository) Save(ctx context.Context, game *entity.DistributedGame) error {
	gameM := fromDistributedGameDomain(game)

	if err := repo.db.WithContext(ctx).Save(gameM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("sale must be between 0 and 1")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDistributorNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save distributed game")
	}

	game.ID = gameM.ID

	return nil
}

func (repo *distributedGameRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DistributedGameModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete distributed game")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDistributedGameNotFound
	}

	return nil
}

func (repo *distributedGameRepository) first(ctx context.Context, msg string, query string, args ...any) (*entity.DistributedGame, error) {
	var gameM model.DistributedGameModel

	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		First(&gameM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDistributedGameNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toDistributedGameDomain(&gameM), nil
}

// find loads listings matching the inline conditions, all of them when conds is empty.
func (repo *distributedGameRepository) find(ctx context.Context, msg string, conds ...any) ([]*entity.DistributedGame, error) {
	var gameModels []*model.DistributedGameModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&gameModels, conds...).Error; err != nil {
		return nil, errors.Wrap(err, msg)
	}

	games := make([]*entity.DistributedGame, 0, len(gameModels))
	for _, gameM := range gameModels {
		games = append(games, toDistributedGameDomain(gameM))
	}

	return games, nil
}

// --- Mapper Functions ---

func toDistributedGameDomain(data *model.DistributedGameModel) *entity.DistributedGame {
	if data == nil {
		return nil
	}

	return &entity.DistributedGame{
		ID:            data.ID,
		DistributorID: data.DistributorID,
		GameID:        data.GameID,
		GameName:      data.GameName,
		Version:       data.Version,
		Price:         data.Price,
		Sale:          data.Sale,
		Platforms:     []string(data.Platforms),
	}
}

func fromDistributedGameDomain(data *entity.DistributedGame) *model.DistributedGameModel {
	if data == nil {
		return nil
	}

	platforms := data.Platforms
	if platforms == nil {
		platforms = []string{}
	}

	return &model.DistributedGameModel{
		ID:            data.ID,
		DistributorID: data.DistributorID,
		GameID:        data.GameID,
		GameName:      data.GameName,
		Version:       data.Version,
		Price:         data.Price,
		Sale:          data.Sale,
		Platforms:     pq.StringArray(platforms),
	}
}
