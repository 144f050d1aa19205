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

// reviewMirrorRepository implements the repository.ReviewMirrorRepository interface.
type reviewMirrorRepository struct {
	db *gorm.DB
}

// NewReviewMirrorRepository is the constructor for reviewMirrorRepository.
func NewReviewMirrorRepository(db *gorm.DB) repository.ReviewMirrorRepository {
	return &reviewMirrorRepository{
		db: db,
	}
}

// CreateIfAbsent inserts the mirror keyed by the distributor review id.
func (repo *reviewMirrorRepository) CreateIfAbsent(ctx context.Context, review *entity.ReviewMirror) (bool, error) {
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(fromReviewMirrorDomain(review))
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, repository.ErrGameNotFound
		}
		if isCheckConstraintViolation(result.Error) {
			return false, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 10")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create review mirror")
	}

	return result.RowsAffected > 0, nil
}

func (repo *reviewMirrorRepository) CountByGameIDAndMaxRating(ctx context.Context, gameID int64, maxRating int) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewMirrorModel{}).
		Where("game_id = ? AND rating <= ?", gameID, maxRating).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count low-rated reviews")
	}

	return count, nil
}

func (repo *reviewMirrorRepository) FindByGameID(ctx context.Context, gameID int64) ([]*entity.ReviewMirror, error) {
	var mirrorModels []*model.ReviewMirrorModel

	if err := repo.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("id").
		Find(&mirrorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find review mirrors by game")
	}

	mirrors := make([]*entity.ReviewMirror, 0, len(mirrorModels))
	for _, mirrorM := range mirrorModels {
		mirrors = append(mirrors, toReviewMirrorDomain(mirrorM))
	}

	return mirrors, nil
}

// --- Mapper Functions ---

func toReviewMirrorDomain(data *model.ReviewMirrorModel) *entity.ReviewMirror {
	if data == nil {
		return nil
	}

	return &entity.ReviewMirror{
		ID:              data.ID,
		GameID:          data.GameID,
		Rating:          data.Rating,
		Comment:         data.Comment,
		PublicationDate: data.PublicationDate,
	}
}

func fromReviewMirrorDomain(data *entity.ReviewMirror) *model.ReviewMirrorModel {
	if data == nil {
		return nil
	}

	return &model.ReviewMirrorModel{
		ID:              data.ID,
		GameID:          data.GameID,
		Rating:          data.Rating,
		Comment:         data.Comment,
		PublicationDate: data.PublicationDate,
	}
}
