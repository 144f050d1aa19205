package postgres

import (
	"context"
	"time"

	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/repository"
	"gamehub/internal/infra/persistence/model"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// playerRepository implements the repository.PlayerRepository interface.
type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository is the constructor for playerRepository.
func NewPlayerRepository(db *gorm.DB) repository.PlayerRepository {
	return &playerRepository{
		db: db,
	}
}

func (repo *playerRepository) FindByID(ctx context.Context, id int64) (*entity.Player, error) {
	var playerM model.PlayerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&playerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlayerNotFound
		}

		return nil, errors.Wrap(err, "failed to find player by ID")
	}

	return toPlayerDomain(&playerM), nil
}

func (repo *playerRepository) FindAll(ctx context.Context) ([]*entity.Player, error) {
	var playerModels []*model.PlayerModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&playerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find players")
	}

	return toPlayerDomains(playerModels), nil
}

func (repo *playerRepository) FindByDistributorID(ctx context.Context, distributorID int64) ([]*entity.Player, error) {
	var playerModels []*model.PlayerModel

	if err := repo.db.WithContext(ctx).
		Where("distributor_id = ?", distributorID).
		Order("id").
		Find(&playerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find players by distributor")
	}

	return toPlayerDomains(playerModels), nil
}

func (repo *playerRepository) Save(ctx context.Context, player *entity.Player) error {
	playerM := fromPlayerDomain(player)

	if err := repo.db.WithContext(ctx).Save(playerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDistributorNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required player information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save player")
	}

	player.ID = playerM.ID

	return nil
}

func (repo *playerRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PlayerModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete player")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlayerNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPlayerDomains(playerModels []*model.PlayerModel) []*entity.Player {
	players := make([]*entity.Player, 0, len(playerModels))
	for _, playerM := range playerModels {
		players = append(players, toPlayerDomain(playerM))
	}

	return players
}

func toPlayerDomain(data *model.PlayerModel) *entity.Player {
	if data == nil {
		return nil
	}

	var birthDate time.Time
	if data.BirthDate != nil {
		birthDate = *data.BirthDate
	}

	return &entity.Player{
		ID:               data.ID,
		DistributorID:    data.DistributorID,
		Pseudo:           data.Pseudo,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		BirthDate:        birthDate,
		RegistrationDate: data.RegistrationDate,
		WishedGames:      []int64(data.WishedGames),
	}
}

func fromPlayerDomain(data *entity.Player) *model.PlayerModel {
	if data == nil {
		return nil
	}

	var birthDate *time.Time
	if !data.BirthDate.IsZero() {
		birthDate = &data.BirthDate
	}

	wished := data.WishedGames
	if wished == nil {
		wished = []int64{}
	}

	return &model.PlayerModel{
		ID:               data.ID,
		DistributorID:    data.DistributorID,
		Pseudo:           data.Pseudo,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		BirthDate:        birthDate,
		RegistrationDate: data.RegistrationDate,
		WishedGames:      pq.Int64Array(wished),
	}
}
