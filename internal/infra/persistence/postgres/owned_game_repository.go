package postgres

import (
	"context"

	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/repository"
	"gamehub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ownedGameRepository implements the repository.OwnedGameRepository interface.
type ownedGameRepository struct {
	db *gorm.DB
}

// NewOwnedGameRepository is the constructor for ownedGameRepository.
func NewOwnedGameRepository(db *gorm.DB) repository.OwnedGameRepository {
	return &ownedGameRepository{
		db: db,
	}
}

func (repo *ownedGameRepository) FindByID(ctx context.Context, id int64) (*entity.OwnedGame, error) {
	var ownedM model.OwnedGameModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ownedM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOwnedGameNotFound
		}

		return nil, errors.Wrap(err, "failed to find owned game by ID")
	}

	return toOwnedGameDomain(&ownedM), nil
}

func (repo *ownedGameRepository) FindAll(ctx context.Context) ([]*entity.OwnedGame, error) {
	var ownedModels []*model.OwnedGameModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&ownedModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find owned games")
	}

	return toOwnedGameDomains(ownedModels), nil
}

func (repo *ownedGameRepository) FindByPlayerID(ctx context.Context, playerID int64) ([]*entity.OwnedGame, error) {
	var ownedModels []*model.OwnedGameModel

	if err := repo.db.WithContext(ctx).
		Where("player_id = ?", playerID).
		Order("id").
		Find(&ownedModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find owned games by player")
	}

	return toOwnedGameDomains(ownedModels), nil
}

func (repo *ownedGameRepository) FindByPlayerIDAndGameID(ctx context.Context, playerID, gameID int64) (*entity.OwnedGame, error) {
	var ownedM model.OwnedGameModel

	if err := repo.db.WithContext(ctx).
		Where("player_id = ? AND game_id = ?", playerID, gameID).
		First(&ownedM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOwnedGameNotFound
		}

		return nil, errors.Wrap(err, "failed to find owned game")
	}

	return toOwnedGameDomain(&ownedM), nil
}

// CreateIfAbsent inserts the purchase unless (player, game) already exists.
func (repo *ownedGameRepository) CreateIfAbsent(ctx context.Context, owned *entity.OwnedGame) (bool, error) {
	ownedM := fromOwnedGameDomain(owned)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "player_id"}, {Name: "game_id"}},
			DoNothing: true,
		}).
		Create(ownedM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, repository.ErrPlayerNotFound
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create owned game")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}
	owned.ID = ownedM.ID

	return true, nil
}

func (repo *ownedGameRepository) Save(ctx context.Context, owned *entity.OwnedGame) error {
	ownedM := fromOwnedGameDomain(owned)

	if err := repo.db.WithContext(ctx).Save(ownedM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("player already owns this game")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPlayerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save owned game")
	}

	owned.ID = ownedM.ID

	return nil
}

func (repo *ownedGameRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OwnedGameModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete owned game")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOwnedGameNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toOwnedGameDomains(ownedModels []*model.OwnedGameModel) []*entity.OwnedGame {
	owned := make([]*entity.OwnedGame, 0, len(ownedModels))
	for _, ownedM := range ownedModels {
		owned = append(owned, toOwnedGameDomain(ownedM))
	}

	return owned
}

func toOwnedGameDomain(data *model.OwnedGameModel) *entity.OwnedGame {
	if data == nil {
		return nil
	}

	return &entity.OwnedGame{
		ID:           data.ID,
		PlayerID:     data.PlayerID,
		GameID:       data.GameID,
		PurchaseDate: data.PurchaseDate,
		PlayTime:     data.PlayTime,
	}
}

func fromOwnedGameDomain(data *entity.OwnedGame) *model.OwnedGameModel {
	if data == nil {
		return nil
	}

	return &model.OwnedGameModel{
		ID:           data.ID,
		PlayerID:     data.PlayerID,
		GameID:       data.GameID,
		PurchaseDate: data.PurchaseDate,
		PlayTime:     data.PlayTime,
	}
}
