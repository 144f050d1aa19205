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

// distributorRepository implements the repository.DistributorRepository interface.
type distributorRepository struct {
	db *gorm.DB
}

// NewDistributorRepository is the constructor for distributorRepository.
func NewDistributorRepository(db *gorm.DB) repository.DistributorRepository {
	return &distributorRepository{
		db: db,
	}
}

func (repo *distributorRepository) FindByID(ctx context.Context, id int64) (*entity.Distributor, error) {
	var distributorM model.DistributorModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&distributorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDistributorNotFound
		}

		return nil, errors.Wrap(err, "failed to find distributor by ID")
	}

	return toDistributorDomain(&distributorM), nil
}

func (repo *distributorRepository) FindAll(ctx context.Context) ([]*entity.Distributor, error) {
	var distributorModels []*model.DistributorModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&distributorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find distributors")
	}

	distributors := make([]*entity.Distributor, 0, len(distributorModels))
	for _, distributorM := range distributorModels {
		distributors = append(distributors, toDistributorDomain(distributorM))
	}

	return distributors, nil
}

// FindFirstByName returns the lowest-id distributor with this name.
func (repo *distributorRepository) FindFirstByName(ctx context.Context, name string) (*entity.Distributor, error) {
	var distributorM model.DistributorModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		Order("id").
		First(&distributorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDistributorNotFound
		}

		return nil, errors.Wrap(err, "failed to find distributor by name")
	}

	return toDistributorDomain(&distributorM), nil
}

func (repo *distributorRepository) Save(ctx context.Context, distributor *entity.Distributor) error {
	distributorM := fromDistributorDomain(distributor)

	if err := repo.db.WithContext(ctx).Save(distributorM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required distributor information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save distributor")
	}

	distributor.ID = distributorM.ID

	return nil
}

// Delete cascades to the distributor's listings and players.
func (repo *distributorRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DistributorModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete distributor")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDistributorNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDistributorDomain(data *model.DistributorModel) *entity.Distributor {
	if data == nil {
		return nil
	}

	return &entity.Distributor{
		ID:   data.ID,
		Name: data.Name,
	}
}

func fromDistributorDomain(data *entity.Distributor) *model.DistributorModel {
	if data == nil {
		return nil
	}

	return &model.DistributorModel{
		ID:   data.ID,
		Name: data.Name,
	}
}
