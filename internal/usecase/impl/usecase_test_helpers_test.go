package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gamehub/config"
	"gamehub/internal/domain/event"
	"gamehub/internal/domain/repository"
	mockRepo "gamehub/internal/mocks/repository"
	mockService "gamehub/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

//nolint:gochecknoglobals
var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(reviewMinPlayTime float64) *config.Config {
	return &config.Config{
		Distributor: &config.DistributorConfig{
			ReviewMinPlayTimeMinutes: reviewMinPlayTime,
			DefaultPrice:             59.99,
		},
		Publisher: &config.PublisherConfig{
			NegativeFeedbackEvery: 15,
			CrashReportEvery:      10,
			LowRatingMax:          2,
		},
	}
}

// emitted is one event staged through the mocked emitter.
type emitted struct {
	key   string
	event event.Event
}

// recordEmits lets emitter accept any event and appends it to sink.
func recordEmits(emitter *mockService.MockEventEmitter, sink *[]emitted) {
	emitter.EXPECT().
		Emit(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, key string, e event.Event) error {
			*sink = append(*sink, emitted{key: key, event: e})

			return nil
		}).
		Maybe()
}

// distributorFixtures holds all test dependencies for distributor usecase tests.
type distributorFixtures struct {
	txManager   *mockRepo.MockDistributorTransactionManager
	factory     *mockRepo.MockDistributorRepositoryFactory
	distRepo    *mockRepo.MockDistributorRepository
	gameRepo    *mockRepo.MockDistributedGameRepository
	playerRepo  *mockRepo.MockPlayerRepository
	ownedRepo   *mockRepo.MockOwnedGameRepository
	reviewRepo  *mockRepo.MockReviewRepository
	emitter     *mockService.MockEventEmitter
	emitted     []emitted
	txCallCount int
}

func newDistributorFixtures(t *testing.T) *distributorFixtures {
	t.Helper()

	f := &distributorFixtures{
		txManager:  mockRepo.NewMockDistributorTransactionManager(t),
		factory:    mockRepo.NewMockDistributorRepositoryFactory(t),
		distRepo:   mockRepo.NewMockDistributorRepository(t),
		gameRepo:   mockRepo.NewMockDistributedGameRepository(t),
		playerRepo: mockRepo.NewMockPlayerRepository(t),
		ownedRepo:  mockRepo.NewMockOwnedGameRepository(t),
		reviewRepo: mockRepo.NewMockReviewRepository(t),
		emitter:    mockService.NewMockEventEmitter(t),
	}

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.DistributorRepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.DistributorRepositoryFactory) error) error {
			f.txCallCount++

			return fn(f.factory)
		}).
		Maybe()

	f.factory.EXPECT().NewDistributorRepository().Return(f.distRepo).Maybe()
	f.factory.EXPECT().NewDistributedGameRepository().Return(f.gameRepo).Maybe()
	f.factory.EXPECT().NewPlayerRepository().Return(f.playerRepo).Maybe()
	f.factory.EXPECT().NewOwnedGameRepository().Return(f.ownedRepo).Maybe()
	f.factory.EXPECT().NewReviewRepository().Return(f.reviewRepo).Maybe()
	f.factory.EXPECT().NewEventEmitter().Return(f.emitter).Maybe()
	recordEmits(f.emitter, &f.emitted)

	return f
}

func (f *distributorFixtures) service(reviewMinPlayTime float64) *distributorService {
	srv := newDistributorService(DistributorServiceParams{
		TxManager: f.txManager,
		Config:    newTestConfig(reviewMinPlayTime),
		Logger:    newDiscardLogger(),
	})
	srv.now = func() time.Time { return fixedNow }

	return srv
}

// publisherFixtures holds all test dependencies for publisher usecase tests.
type publisherFixtures struct {
	txManager     *mockRepo.MockPublisherTransactionManager
	factory       *mockRepo.MockPublisherRepositoryFactory
	publisherRepo *mockRepo.MockPublisherRepository
	gameRepo      *mockRepo.MockGameRepository
	patchRepo     *mockRepo.MockPatchRepository
	mirrorRepo    *mockRepo.MockReviewMirrorRepository
	crashRepo     *mockRepo.MockCrashReportRepository
	emitter       *mockService.MockEventEmitter
	emitted       []emitted
}

func newPublisherFixtures(t *testing.T) *publisherFixtures {
	t.Helper()

	f := &publisherFixtures{
		txManager:     mockRepo.NewMockPublisherTransactionManager(t),
		factory:       mockRepo.NewMockPublisherRepositoryFactory(t),
		publisherRepo: mockRepo.NewMockPublisherRepository(t),
		gameRepo:      mockRepo.NewMockGameRepository(t),
		patchRepo:     mockRepo.NewMockPatchRepository(t),
		mirrorRepo:    mockRepo.NewMockReviewMirrorRepository(t),
		crashRepo:     mockRepo.NewMockCrashReportRepository(t),
		emitter:       mockService.NewMockEventEmitter(t),
	}

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.PublisherRepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.PublisherRepositoryFactory) error) error {
			return fn(f.factory)
		}).
		Maybe()

	f.factory.EXPECT().NewPublisherRepository().Return(f.publisherRepo).Maybe()
	f.factory.EXPECT().NewGameRepository().Return(f.gameRepo).Maybe()
	f.factory.EXPECT().NewPatchRepository().Return(f.patchRepo).Maybe()
	f.factory.EXPECT().NewReviewMirrorRepository().Return(f.mirrorRepo).Maybe()
	f.factory.EXPECT().NewCrashReportRepository().Return(f.crashRepo).Maybe()
	f.factory.EXPECT().NewEventEmitter().Return(f.emitter).Maybe()
	recordEmits(f.emitter, &f.emitted)

	return f
}

func (f *publisherFixtures) service(observer *mockService.MockPatchObserver) *publisherService {
	params := PublisherServiceParams{
		TxManager: f.txManager,
		Config:    newTestConfig(0),
		Logger:    newDiscardLogger(),
	}
	if observer != nil {
		params.Observer = observer
	}
	srv := newPublisherService(params)
	srv.now = func() time.Time { return fixedNow }

	return srv
}

func (f *publisherFixtures) catalog(source *mockService.MockCatalogSource) *catalogService {
	params := CatalogServiceParams{
		TxManager: f.txManager,
		Logger:    newDiscardLogger(),
	}
	if source != nil {
		params.Source = source
	}
	srv, _ := NewCatalogService(params).(*catalogService)
	srv.now = func() time.Time { return fixedNow }

	return srv
}
