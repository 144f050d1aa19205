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

// reviewRepository implements the repository.ReviewRepository interface.
// Reaction sets are stored one row per reacting player.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

func (repo *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.withReactions(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return toReviewDomain(&reviewM), nil
}

func (repo *reviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.withReactions(ctx).
		Order("id").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews")
	}

	return toReviewDomains(reviewModels), nil
}

func (repo *reviewRepository) FindByGameID(ctx context.Context, gameID int64) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.withReactions(ctx).
		Where("game_id = ?", gameID).
		Order("id").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by game")
	}

	return toReviewDomains(reviewModels), nil
}

// Save persists the review and replaces its reaction sets.
func (repo *reviewRepository) Save(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)
	db := repo.db.WithContext(ctx)

	if err := db.Omit("Reactions").Save(reviewM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 10")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPlayerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save review")
	}
	review.ID = reviewM.ID

	if err := db.Where("review_id = ?", reviewM.ID).
		Delete(&model.ReviewReactionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear review reactions")
	}

	reactions := fromReactionsDomain(review)
	if len(reactions) == 0 {
		return nil
	}
	if err := db.Create(&reactions).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save review reactions")
	}

	return nil
}

func (repo *reviewRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReviewModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

func (repo *reviewRepository) withReactions(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("Reactions", func(db *gorm.DB) *gorm.DB {
		return db.Order("player_id")
	})
}

// --- Mapper Functions ---

func toReviewDomains(reviewModels []*model.ReviewModel) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews
}

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	review := &entity.Review{
		ID:                data.ID,
		PlayerID:          data.PlayerID,
		GameID:            data.GameID,
		Rating:            data.Rating,
		Comment:           data.Comment,
		PublicationDate:   data.PublicationDate,
		PositiveReactions: []int64{},
		NegativeReactions: []int64{},
	}
	for _, reaction := range data.Reactions {
		switch entity.ReactionType(reaction.Kind) {
		case entity.ReactionPositive:
			review.PositiveReactions = append(review.PositiveReactions, reaction.PlayerID)
		case entity.ReactionNegative:
			review.NegativeReactions = append(review.NegativeReactions, reaction.PlayerID)
		case entity.ReactionNone:
		}
	}

	return review
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:              data.ID,
		PlayerID:        data.PlayerID,
		GameID:          data.GameID,
		Rating:          data.Rating,
		Comment:         data.Comment,
		PublicationDate: data.PublicationDate,
	}
}

func fromReactionsDomain(data *entity.Review) []model.ReviewReactionModel {
	reactions := make([]model.ReviewReactionModel, 0, len(data.PositiveReactions)+len(data.NegativeReactions))
	for _, playerID := range data.PositiveReactions {
		reactions = append(reactions, model.ReviewReactionModel{ReviewID: data.ID, PlayerID: playerID, Kind: int(entity.ReactionPositive)})
	}
	for _, playerID := range data.NegativeReactions {
		reactions = append(reactions, model.ReviewReactionModel{ReviewID: data.ID, PlayerID: playerID, Kind: int(entity.ReactionNegative)})
	}

	return reactions
}
