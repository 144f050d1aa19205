package impl

import (
	"context"
	"testing"

	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/event"
	"gamehub/internal/domain/repository"
	mockService "gamehub/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPublisherService_HandleCrashReported_TenthCrashPatches(t *testing.T) {
	f := newPublisherFixtures(t)
	observer := mockService.NewMockPatchObserver(t)
	srv := f.service(observer)
	ctx := context.Background()

	game := &entity.Game{ID: 7, Name: "Hades", Version: "1.0.0"}
	f.gameRepo.EXPECT().FindByIDForUpdate(ctx, int64(7)).Return(game, nil).Times(10)
	f.crashRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(r *entity.CrashReport) bool {
			return r.Platform == entity.PlatformWindows && r.DistributorID == 1 && r.ReportDate.Equal(fixedNow)
		})).
		Return(nil).Times(10)

	var crashes int64
	f.crashRepo.EXPECT().
		CountByGameID(ctx, int64(7)).
		RunAndReturn(func(context.Context, int64) (int64, error) {
			crashes++

			return crashes, nil
		}).
		Times(10)

	f.patchRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Patch")).
		RunAndReturn(func(_ context.Context, p *entity.Patch) error {
			assert.Equal(t, "1.0.1", p.Version)
			assert.Equal(t, []entity.LogTag{entity.LogTagBugFix, entity.LogTagSecurityFix}, p.Tags)
			assert.Equal(t, "Automatic stability fix after multiple crash reports.", p.Description)
			assert.Equal(t, fixedNow, p.PublicationDate)

			return nil
		}).
		Once()
	f.gameRepo.EXPECT().Save(ctx, game).Return(nil).Once()
	observer.EXPECT().AutoPatchStaged(entity.PatchReasonCrash).Once()

	e := &event.CrashReported{DistributorID: 1, GameID: 7, Platform: "WINDOWS", InstalledVersion: "1.0.0", ErrorCode: 139}
	for range 10 {
		require.NoError(t, srv.HandleCrashReported(ctx, e))
	}

	assert.Equal(t, "1.0.1", game.Version)
	require.Len(t, f.emitted, 1)
	patch, ok := f.emitted[0].event.(*event.PatchPublished)
	require.True(t, ok)
	assert.Equal(t, event.PatchPublished{GameID: 7, Version: "1.0.1"}, *patch)
	assert.Equal(t, event.GameKey(7), f.emitted[0].key)
}

func TestPublisherService_HandleCrashReported_UnknownPlatform(t *testing.T) {
	f := newPublisherFixtures(t)
	srv := f.service(nil)
	ctx := context.Background()

	f.gameRepo.EXPECT().FindByIDForUpdate(ctx, int64(7)).Return(&entity.Game{ID: 7, Version: "1.0.0"}, nil)
	f.crashRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(r *entity.CrashReport) bool { return r.Platform == entity.PlatformUnknown })).
		Return(nil)
	f.crashRepo.EXPECT().CountByGameID(ctx, int64(7)).Return(3, nil)

	require.NoError(t, srv.HandleCrashReported(ctx, &event.CrashReported{DistributorID: 1, GameID: 7, Platform: "TOASTER"}))
	assert.Empty(t, f.emitted)
}

func TestPublisherService_HandleCrashReported_UnknownGame(t *testing.T) {
	f := newPublisherFixtures(t)
	srv := f.service(nil)
	ctx := context.Background()

	f.gameRepo.EXPECT().FindByIDForUpdate(ctx, int64(7)).Return(nil, repository.ErrGameNotFound)

	err := srv.HandleCrashReported(ctx, &event.CrashReported{DistributorID: 1, GameID: 7})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestPublisherService_HandleGameReviewed(t *testing.T) {
	tests := []struct {
		name      string
		rating    int
		inserted  bool
		lowRated  int64
		wantPatch bool
	}{
		{name: "fifteenth low rating patches", rating: 1, inserted: true, lowRated: 15, wantPatch: true},
		{name: "thirtieth low rating patches", rating: 2, inserted: true, lowRated: 30, wantPatch: true},
		{name: "fourteenth low rating waits", rating: 2, inserted: true, lowRated: 14},
		{name: "good rating never counts", rating: 8, inserted: true},
		{name: "replayed review stops", rating: 1, inserted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPublisherFixtures(t)
			srv := f.service(nil)
			ctx := context.Background()

			game := &entity.Game{ID: 7, Version: "1.2.9"}
			f.gameRepo.EXPECT().FindByIDForUpdate(ctx, int64(7)).Return(game, nil)
			f.mirrorRepo.EXPECT().
				CreateIfAbsent(ctx, mock.MatchedBy(func(r *entity.ReviewMirror) bool { return r.ID == 99 && r.GameID == 7 })).
				Return(tt.inserted, nil)
			if tt.inserted && tt.rating <= 2 {
				f.mirrorRepo.EXPECT().CountByGameIDAndMaxRating(ctx, int64(7), 2).Return(tt.lowRated, nil)
			}
			if tt.wantPatch {
				f.patchRepo.EXPECT().
					Save(ctx, mock.MatchedBy(func(p *entity.Patch) bool {
						return p.Version == "1.3.0" && p.Description == "Balance update based on community feedback."
					})).
					Return(nil)
				f.gameRepo.EXPECT().Save(ctx, game).Return(nil)
			}

			e := &event.GameReviewed{ReviewID: 99, DistributorID: 1, GameID: 7, Rating: tt.rating, PublicationDate: fixedNow}
			require.NoError(t, srv.HandleGameReviewed(ctx, e))

			if !tt.wantPatch {
				assert.Empty(t, f.emitted)
				assert.Equal(t, "1.2.9", game.Version)

				return
			}
			require.Len(t, f.emitted, 1)
			assert.Equal(t, &event.PatchPublished{GameID: 7, Version: "1.3.0"}, f.emitted[0].event)
			assert.Equal(t, "1.3.0", game.Version)
		})
	}
}
