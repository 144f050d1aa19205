package postgres

import (
	"context"

	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/repository"
	"gamehub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// publisherRepository implements the repository.PublisherRepository interface.
type publisherRepository struct {
	db *gorm.DB
}

// NewPublisherRepository is the constructor for publisherRepository.
func NewPublisherRepository(db *gorm.DB) repository.PublisherRepository {
	return &publisherRepository{
		db: db,
	}
}

func (repo *publisherRepository) FindByID(ctx context.Context, id int64) (*entity.Publisher, error) {
	var publisherM model.PublisherModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&publisherM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPublisherNotFound
		}

		return nil, errors.Wrap(err, "failed to find publisher by ID")
	}

	return toPublisherDomain(&publisherM), nil
}

func (repo *publisherRepository) FindAll(ctx context.Context) ([]*entity.Publisher, error) {
	var publisherModels []*model.PublisherModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&publisherModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find publishers")
	}

	publishers := make([]*entity.Publisher, 0, len(publisherModels))
	for _, publisherM := range publisherModels {
		publishers = append(publishers, toPublisherDomain(publisherM))
	}

	return publishers, nil
}

func (repo *publisherRepository) FindFirstByName(ctx context.Context, name string) (*entity.Publisher, error) {
	var publisherM model.PublisherModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		Order("id").
		First(&publisherM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPublisherNotFound
		}

		return nil, errors.Wrap(err, "failed to find publisher by name")
	}

	return toPublisherDomain(&publisherM), nil
}

func (repo *publisherRepository) Save(ctx context.Context, publisher *entity.Publisher) error {
	publisherM := fromPublisherDomain(publisher)

	if err := repo.db.WithContext(ctx).Save(publisherM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required publisher information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save publisher")
	}

	publisher.ID = publisherM.ID

	return nil
}

// Delete refuses publishers that still own games.
func (repo *publisherRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PublisherModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrPublisherInUse
		}

		return errors.Wrap(result.Error, "failed to delete publisher")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPublisherNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPublisherDomain(data *model.PublisherModel) *entity.Publisher {
	if data == nil {
		return nil
	}

	return &entity.Publisher{
		ID:        data.ID,
		Name:      data.Name,
		IsCompany: data.IsCompany,
	}
}

func fromPublisherDomain(data *entity.Publisher) *model.PublisherModel {
	if data == nil {
		return nil
	}

	return &model.PublisherModel{
		ID:        data.ID,
		Name:      data.Name,
		IsCompany: data.IsCompany,
	}
}
