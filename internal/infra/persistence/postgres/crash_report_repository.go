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

// crashReportRepository implements the repository.CrashReportRepository interface.
type crashReportRepository struct {
	db *gorm.DB
}

// NewCrashReportRepository is the constructor for crashReportRepository.
func NewCrashReportRepository(db *gorm.DB) repository.CrashReportRepository {
	return &crashReportRepository{
		db: db,
	}
}

func (repo *crashReportRepository) Create(ctx context.Context, report *entity.CrashReport) error {
	reportM := fromCrashReportDomain(report)

	if err := repo.db.WithContext(ctx).Create(reportM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrGameNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create crash report")
	}

	report.ID = reportM.ID

	return nil
}

func (repo *crashReportRepository) CountByGameID(ctx context.Context, gameID int64) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CrashReportModel{}).
		Where("game_id = ?", gameID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count crash reports")
	}

	return count, nil
}

func (repo *crashReportRepository) FindByGameID(ctx context.Context, gameID int64) ([]*entity.CrashReport, error) {
	var reportModels []*model.CrashReportModel

	if err := repo.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("report_date DESC").
		Find(&reportModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find crash reports by game")
	}

	reports := make([]*entity.CrashReport, 0, len(reportModels))
	for _, reportM := range reportModels {
		reports = append(reports, toCrashReportDomain(reportM))
	}

	return reports, nil
}

// --- Mapper Functions ---

func toCrashReportDomain(data *model.CrashReportModel) *entity.CrashReport {
	if data == nil {
		return nil
	}

	return &entity.CrashReport{
		ID:            data.ID,
		GameID:        data.GameID,
		DistributorID: data.DistributorID,
		Platform:      entity.Platform(data.Platform),
		Version:       data.Version,
		ErrorCode:     data.ErrorCode,
		Message:       data.Message,
		ReportDate:    data.ReportDate,
	}
}

func fromCrashReportDomain(data *entity.CrashReport) *model.CrashReportModel {
	if data == nil {
		return nil
	}

	return &model.CrashReportModel{
		ID:            data.ID,
		GameID:        data.GameID,
		DistributorID: data.DistributorID,
		Platform:      string(data.Platform),
		Version:       data.Version,
		ErrorCode:     data.ErrorCode,
		Message:       data.Message,
		ReportDate:    data.ReportDate,
	}
}
