package handler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gamehub/internal/delivery/consumer"
	"gamehub/internal/domain/entity"
	"gamehub/internal/domain/event"
	"gamehub/internal/domain/service"
	"gamehub/internal/infra/bus"
	mockUsecase "gamehub/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRuntime(t *testing.T, listeners []consumer.Listener) (*consumer.Runtime, service.MessageBus) {
	t.Helper()

	msgBus := bus.NewMemoryBus(2, discardLogger())
	runtime := consumer.New(msgBus, consumer.Options{GroupID: "test", MaxAttempts: 1}, nil, nil, discardLogger())
	for _, l := range listeners {
		require.NoError(t, runtime.Register(l))
	}
	t.Cleanup(func() {
		runtime.StopAll()
		_ = msgBus.Close()
	})

	return runtime, msgBus
}

func publish(t *testing.T, msgBus service.MessageBus, e event.Event) {
	t.Helper()

	data, headers, err := event.Encode(e, "player")
	require.NoError(t, err)
	require.NoError(t, msgBus.Publish(context.Background(), service.BusMessage{
		Topic: e.Topic(), Key: event.RandomKey(), Value: data, Headers: headers,
	}))
}

func TestDistributorListeners(t *testing.T) {
	uc := mockUsecase.NewMockDistributorUsecase(t)
	listeners := NewDistributorListeners(DistributorListenersParams{Usecase: uc, Logger: discardLogger()})

	runtime, _ := newRuntime(t, listeners)
	infos := runtime.Listeners()
	require.Len(t, infos, 17)

	ids := make(map[string]string, len(infos))
	for _, info := range infos {
		ids[info.ID] = info.Topic
	}
	assert.Equal(t, event.TopicReviewGame, ids["distributorServiceReviewGameConsumer"])
	assert.Equal(t, event.TopicGamePublished, ids["distributorServiceGamePublishedConsumer"])
	assert.Equal(t, event.TopicAskGameReviews, ids["distributorServiceAskGameReviewsConsumer"])
	assert.Equal(t, event.TopicExampleEvent, ids["distributorServiceExampleEventConsumer"])
}

func TestPublisherListeners(t *testing.T) {
	uc := mockUsecase.NewMockPublisherUsecase(t)
	listeners := NewPublisherListeners(PublisherListenersParams{Usecase: uc, Logger: discardLogger()})

	runtime, _ := newRuntime(t, listeners)
	infos := runtime.Listeners()
	require.Len(t, infos, 3)
	assert.Equal(t, "publisherServiceGameReviewedConsumer", infos[0].ID)
	assert.Equal(t, "publisherServiceCrashReportedConsumer", infos[1].ID)
}

func TestDistributorListeners_RegisterPlayerReachesUsecase(t *testing.T) {
	uc := mockUsecase.NewMockDistributorUsecase(t)
	called := make(chan *event.RegisterPlayer, 1)

	uc.EXPECT().
		RegisterPlayer(mock.Anything, mock.AnythingOfType("*event.RegisterPlayer")).
		RunAndReturn(func(_ context.Context, e *event.RegisterPlayer) (*entity.Player, error) {
			called <- e

			return &entity.Player{ID: 1, Pseudo: e.Pseudo}, nil
		})

	runtime, msgBus := newRuntime(t, NewDistributorListeners(DistributorListenersParams{Usecase: uc, Logger: discardLogger()}))
	require.NoError(t, runtime.Start(context.Background(), "distributorServiceRegisterPlayerConsumer"))

	publish(t, msgBus, &event.RegisterPlayer{DistributorID: 2, Pseudo: "neo"})

	select {
	case e := <-called:
		assert.Equal(t, int64(2), e.DistributorID)
		assert.Equal(t, "neo", e.Pseudo)
	case <-time.After(2 * time.Second):
		t.Fatal("usecase was not called")
	}
}

func TestPublisherListeners_CrashReportedReachesUsecase(t *testing.T) {
	uc := mockUsecase.NewMockPublisherUsecase(t)
	called := make(chan *event.CrashReported, 1)

	uc.EXPECT().
		HandleCrashReported(mock.Anything, mock.AnythingOfType("*event.CrashReported")).
		RunAndReturn(func(_ context.Context, e *event.CrashReported) error {
			called <- e

			return nil
		})

	runtime, msgBus := newRuntime(t, NewPublisherListeners(PublisherListenersParams{Usecase: uc, Logger: discardLogger()}))
	require.NoError(t, runtime.StartAll(context.Background()))

	publish(t, msgBus, &event.CrashReported{DistributorID: 1, GameID: 5, Platform: "PS4", ErrorCode: 3})

	select {
	case e := <-called:
		assert.Equal(t, int64(5), e.GameID)
	case <-time.After(2 * time.Second):
		t.Fatal("usecase was not called")
	}
}
