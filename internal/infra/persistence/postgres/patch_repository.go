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
)

// patchRepository implements the repository.PatchRepository interface.
type patchRepository struct {
	db *gorm.DB
}

// NewPatchRepository is the constructor for patchRepository.
func NewPatchRepository(db *gorm.DB) repository.PatchRepository {
	return &patchRepository{
		db: db,
	}
}

func (repo *patchRepository) Save(ctx context.Context, patch *entity.Patch) error {
	patchM := fromPatchDomain(patch)

	if err := repo.db.WithContext(ctx).Save(patchM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrGameNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save patch")
	}

	patch.ID = patchM.ID

	return nil
}

// FindByGameID returns the patches of a game, oldest first.
func (repo *patchRepository) FindByGameID(ctx context.Context, gameID int64) ([]*entity.Patch, error) {
	var patchModels []*model.PatchModel

	if err := repo.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("id").
		Find(&patchModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find patches by game")
	}

	patches := make([]*entity.Patch, 0, len(patchModels))
	for _, patchM := range patchModels {
		patches = append(patches, toPatchDomain(patchM))
	}

	return patches, nil
}

// --- Mapper Functions ---

func toPatchDomain(data *model.PatchModel) *entity.Patch {
	if data == nil {
		return nil
	}

	tags := make([]entity.LogTag, 0, len(data.Tags))
	for _, tag := range data.Tags {
		tags = append(tags, entity.LogTag(tag))
	}

	return &entity.Patch{
		ID:              data.ID,
		GameID:          data.GameID,
		Version:         data.Version,
		Tags:            tags,
		Description:     data.Description,
		PublicationDate: data.PublicationDate,
	}
}

func fromPatchDomain(data *entity.Patch) *model.PatchModel {
	if data == nil {
		return nil
	}

	tags := make(pq.StringArray, 0, len(data.Tags))
	for _, tag := range data.Tags {
		tags = append(tags, string(tag))
	}

	return &model.PatchModel{
		ID:              data.ID,
		GameID:          data.GameID,
		Version:         data.Version,
		Tags:            tags,
		Description:     data.Description,
		PublicationDate: data.PublicationDate,
	}
}
