package impl

import (
	"context"
	"testing"

	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/event"
	"gamehub/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDistributorService_HandleGamePublished_ListsAtEveryDistributor(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := f.service(300)
	ctx := context.Background()

	e := &event.GamePublished{GameID: 7, GameName: "Hades", Version: "1.0.0", PublisherID: 3, Platforms: []string{"WINDOWS"}}

	f.distRepo.EXPECT().FindAll(ctx).Return([]*entity.Distributor{{ID: 1, Name: "Steam"}, {ID: 2, Name: "GOG"}}, nil)
	f.gameRepo.EXPECT().
		CreateIfAbsent(ctx, mock.MatchedBy(func(g *entity.DistributedGame) bool { return g.DistributorID == 1 })).
		RunAndReturn(func(_ context.Context, g *entity.DistributedGame) (bool, error) {
			assert.Equal(t, 59.99, g.Price)
			assert.Nil(t, g.Sale)
			assert.Equal(t, "1.0.0", g.Version)
			assert.Equal(t, []string{"WINDOWS"}, g.Platforms)
			g.ID = 10

			return true, nil
		})
	f.gameRepo.EXPECT().
		CreateIfAbsent(ctx, mock.MatchedBy(func(g *entity.DistributedGame) bool { return g.DistributorID == 2 })).
		Return(true, nil)

	require.NoError(t, srv.HandleGamePublished(ctx, e))

	require.Len(t, f.emitted, 2)
	for i, distributorID := range []int64{1, 2} {
		distributed, ok := f.emitted[i].event.(*event.GameDistributed)
		require.True(t, ok)
		assert.Equal(t, distributorID, distributed.DistributorID)
		assert.Equal(t, int64(7), distributed.GameID)
		assert.Equal(t, "Hades", distributed.GameName)
		assert.Equal(t, event.GameKey(7), f.emitted[i].key)
	}
}

func TestDistributorService_HandleGamePublished_ReplayEmitsNothing(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := f.service(300)
	ctx := context.Background()

	f.distRepo.EXPECT().FindAll(ctx).Return([]*entity.Distributor{{ID: 1}}, nil)
	f.gameRepo.EXPECT().CreateIfAbsent(ctx, mock.AnythingOfType("*entity.DistributedGame")).Return(false, nil)

	require.NoError(t, srv.HandleGamePublished(ctx, &event.GamePublished{GameID: 7, GameName: "Hades", Version: "1.0.0"}))
	assert.Empty(t, f.emitted)
}

func TestDistributorService_HandleGamePublished_NoDistributor(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := f.service(300)
	ctx := context.Background()

	f.distRepo.EXPECT().FindAll(ctx).Return([]*entity.Distributor{}, nil)

	err := srv.HandleGamePublished(ctx, &event.GamePublished{GameID: 7, GameName: "Hades", Version: "1.0.0"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Empty(t, f.emitted)
}

func TestDistributorService_HandlePatchPublished(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := f.service(300)
	ctx := context.Background()

	outdated := &entity.DistributedGame{ID: 1, DistributorID: 1, GameID: 7, GameName: "Hades", Version: "1.0.0"}
	current := &entity.DistributedGame{ID: 2, DistributorID: 2, GameID: 7, GameName: "Hades", Version: "1.0.1"}

	f.gameRepo.EXPECT().FindByGameID(ctx, int64(7)).Return([]*entity.DistributedGame{outdated, current}, nil)
	f.gameRepo.EXPECT().Save(ctx, outdated).Return(nil)

	require.NoError(t, srv.HandlePatchPublished(ctx, &event.PatchPublished{GameID: 7, Version: "1.0.1"}))

	assert.Equal(t, "1.0.1", outdated.Version)
	require.Len(t, f.emitted, 1)
	patch, ok := f.emitted[0].event.(*event.PatchDistributed)
	require.True(t, ok)
	assert.Equal(t, int64(1), patch.DistributorID)
	assert.Equal(t, "1.0.1", patch.NewVersion)
}

func TestDistributorService_RegisterPlayer(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := f.service(300)
	ctx := context.Background()

	f.distRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Distributor{ID: 1, Name: "Steam"}, nil)
	f.playerRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Player")).
		RunAndReturn(func(_ context.Context, p *entity.Player) error {
			p.ID = 42

			return nil
		})

	player, err := srv.RegisterPlayer(ctx, &event.RegisterPlayer{DistributorID: 1, Pseudo: "neo", FirstName: "Thomas", LastName: "Anderson"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), player.ID)
	assert.Equal(t, fixedNow, player.RegistrationDate)
	assert.Empty(t, player.WishedGames)
	assert.NotNil(t, player.WishedGames)
}

func TestDistributorService_RegisterPlayer_UnknownDistributor(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := f.service(300)
	ctx := context.Background()

	f.distRepo.EXPECT().FindByID(ctx, int64(9)).Return(nil, repository.ErrDistributorNotFound)

	player, err := srv.RegisterPlayer(ctx, &event.RegisterPlayer{DistributorID: 9, Pseudo: "neo"})
	require.Error(t, err)
	assert.Nil(t, player)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestDistributorService_PurchaseGame_Idempotent(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := f.service(300)
	ctx := context.Background()

	f.playerRepo.EXPECT().FindByID(ctx, int64(42)).Return(&entity.Player{ID: 42, DistributorID: 1}, nil).Times(2)
	f.ownedRepo.EXPECT().
		CreateIfAbsent(ctx, mock.MatchedBy(func(o *entity.OwnedGame) bool {
			return o.PlayerID == 42 && o.GameID == 7 && o.PlayTime == 0 && o.PurchaseDate.Equal(fixedNow)
		})).
		Return(true, nil).Once()
	f.ownedRepo.EXPECT().CreateIfAbsent(ctx, mock.AnythingOfType("*entity.OwnedGame")).Return(false, nil).Once()

	e := &event.PurchaseGame{PlayerID: 42, GameID: 7}
	require.NoError(t, srv.PurchaseGame(ctx, e))
	require.NoError(t, srv.PurchaseGame(ctx, e))
	assert.Empty(t, f.emitted)
}

func TestDistributorService_AddPlayTime(t *testing.T) {
	tests := []struct {
		name     string
		millis   int64
		expected int
		saved    bool
	}{
		{name: "whole minutes", millis: 18_000_000, expected: 310, saved: true},
		{name: "fraction dropped", millis: 119_999, expected: 11, saved: true},
		{name: "under a minute", millis: 59_999, expected: 10, saved: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDistributorFixtures(t)
			srv := f.service(300)
			ctx := context.Background()

			owned := &entity.OwnedGame{ID: 5, PlayerID: 42, GameID: 7, PlayTime: 10}
			f.ownedRepo.EXPECT().FindByPlayerIDAndGameID(ctx, int64(42), int64(7)).Return(owned, nil)
			if tt.saved {
				f.ownedRepo.EXPECT().Save(ctx, owned).Return(nil)
			}

			require.NoError(t, srv.AddPlayTime(ctx, &event.AddPlayTime{PlayerID: 42, GameID: 7, Time: tt.millis}))
			assert.Equal(t, tt.expected, owned.PlayTime)
		})
	}
}

func TestDistributorService_AddPlayTime_NotOwned(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := f.service(300)
	ctx := context.Background()

	f.ownedRepo.EXPECT().FindByPlayerIDAndGameID(ctx, int64(42), int64(7)).Return(nil, repository.ErrOwnedGameNotFound)

	err := srv.AddPlayTime(ctx, &event.AddPlayTime{PlayerID: 42, GameID: 7, Time: 60_000})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestDistributorService_ReviewGame_Accepted(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := f.service(300)
	ctx := context.Background()

	f.playerRepo.EXPECT().FindByID(ctx, int64(42)).Return(&entity.Player{ID: 42, DistributorID: 1, Pseudo: "neo"}, nil)
	f.ownedRepo.EXPECT().FindByPlayerIDAndGameID(ctx, int64(42), int64(7)).Return(&entity.OwnedGame{PlayTime: 300}, nil)
	f.reviewRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Review")).
		RunAndReturn(func(_ context.Context, r *entity.Review) error {
			r.ID = 99

			return nil
		})

	require.NoError(t, srv.ReviewGame(ctx, &event.ReviewGame{PlayerID: 42, GameID: 7, Rating: 9, Comment: "great"}))

	require.Len(t, f.emitted, 1)
	reviewed, ok := f.emitted[0].event.(*event.GameReviewed)
	require.True(t, ok)
	assert.Equal(t, int64(99), reviewed.ReviewID)
	assert.Equal(t, int64(1), reviewed.DistributorID)
	assert.Equal(t, int64(7), reviewed.GameID)
	assert.Equal(t, 9, reviewed.Rating)
	assert.Equal(t, "great", reviewed.Comment)
	assert.Equal(t, fixedNow, reviewed.PublicationDate)
	assert.Empty(t, reviewed.PositiveReactionPlayerIDs)
	assert.Empty(t, reviewed.NegativeReactionPlayerIDs)
}

func TestDistributorService_ReviewGame_RefusedForPlayTime(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := f.service(300)
	ctx := context.Background()

	player := &entity.Player{ID: 42, DistributorID: 1, Pseudo: "neo"}
	f.playerRepo.EXPECT().FindByID(ctx, int64(42)).Return(player, nil)
	f.ownedRepo.EXPECT().FindByPlayerIDAndGameID(ctx, int64(42), int64(7)).Return(&entity.OwnedGame{PlayTime: 10}, nil)
	f.gameRepo.EXPECT().FindByDistributorIDAndGameID(ctx, int64(1), int64(7)).
		Return(&entity.DistributedGame{GameID: 7, GameName: "Hades"}, nil)

	require.NoError(t, srv.ReviewGame(ctx, &event.ReviewGame{PlayerID: 42, GameID: 7, Rating: 9}))

	assert.Equal(t, 1, f.txCallCount)
	require.Len(t, f.emitted, 1)
	refused, ok := f.emitted[0].event.(*event.ReviewRefused)
	require.True(t, ok)
	assert.Equal(t, int64(0), refused.ReviewID)
	assert.Equal(t, "neo", refused.PlayerName)
	assert.Equal(t, "Hades", refused.GameName)
	assert.Equal(t, event.PlayerKey(42), f.emitted[0].key)
}

func TestDistributorService_ReviewGame_RefusedWhenNotOwned(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := f.service(300)
	ctx := context.Background()

	f.playerRepo.EXPECT().FindByID(ctx, int64(42)).Return(&entity.Player{ID: 42, DistributorID: 1, Pseudo: "neo"}, nil)
	f.ownedRepo.EXPECT().FindByPlayerIDAndGameID(ctx, int64(42), int64(7)).Return(nil, repository.ErrOwnedGameNotFound)
	f.gameRepo.EXPECT().FindByDistributorIDAndGameID(ctx, int64(1), int64(7)).Return(nil, repository.ErrDistributedGameNotFound)
	f.gameRepo.EXPECT().FindByGameID(ctx, int64(7)).
		Return([]*entity.DistributedGame{{DistributorID: 2, GameID: 7, GameName: "Hades"}}, nil)

	require.NoError(t, srv.ReviewGame(ctx, &event.ReviewGame{PlayerID: 42, GameID: 7, Rating: 3}))

	require.Len(t, f.emitted, 1)
	refused, ok := f.emitted[0].event.(*event.ReviewRefused)
	require.True(t, ok)
	assert.Equal(t, "Hades", refused.GameName)
}

func TestDistributorService_ReviewGame_FractionalThreshold(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := f.service(0.25)
	ctx := context.Background()

	f.playerRepo.EXPECT().FindByID(ctx, int64(42)).Return(&entity.Player{ID: 42, DistributorID: 1}, nil)
	f.ownedRepo.EXPECT().FindByPlayerIDAndGameID(ctx, int64(42), int64(7)).Return(&entity.OwnedGame{PlayTime: 1}, nil)
	f.reviewRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)

	require.NoError(t, srv.ReviewGame(ctx, &event.ReviewGame{PlayerID: 42, GameID: 7, Rating: 5}))
	require.Len(t, f.emitted, 1)
	assert.IsType(t, &event.GameReviewed{}, f.emitted[0].event)
}

func TestDistributorService_ReactReview_Toggle(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := f.service(300)
	ctx := context.Background()

	review := &entity.Review{ID: 99, PositiveReactions: []int64{}, NegativeReactions: []int64{}}
	f.reviewRepo.EXPECT().FindByID(ctx, int64(99)).Return(review, nil)
	f.playerRepo.EXPECT().FindByID(ctx, int64(42)).Return(&entity.Player{ID: 42}, nil)
	f.reviewRepo.EXPECT().Save(ctx, review).Return(nil)

	steps := []struct {
		reaction int
		positive []int64
		negative []int64
	}{
		{reaction: 1, positive: []int64{42}, negative: []int64{}},
		{reaction: 2, positive: []int64{}, negative: []int64{42}},
		{reaction: 0, positive: []int64{}, negative: []int64{}},
	}
	for _, step := range steps {
		require.NoError(t, srv.ReactReview(ctx, &event.ReactReview{ReviewID: 99, PlayerID: 42, ReactType: step.reaction}))
		assert.Equal(t, step.positive, review.PositiveReactions)
		assert.Equal(t, step.negative, review.NegativeReactions)
	}
	assert.Empty(t, f.emitted)
}

func TestDistributorService_ReactReview_UnknownReview(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := f.service(300)
	ctx := context.Background()

	f.reviewRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrReviewNotFound)

	err := srv.ReactReview(ctx, &event.ReactReview{ReviewID: 99, PlayerID: 42, ReactType: 1})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestDistributorService_Wishlist(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := f.service(300)
	ctx := context.Background()

	player := &entity.Player{ID: 42, WishedGames: []int64{3}}
	f.playerRepo.EXPECT().FindByID(ctx, int64(42)).Return(player, nil)
	f.playerRepo.EXPECT().Save(ctx, player).Return(nil).Times(2)

	require.NoError(t, srv.AddWishedGame(ctx, &event.AddWishedGame{PlayerID: 42, GameID: 7}))
	require.NoError(t, srv.AddWishedGame(ctx, &event.AddWishedGame{PlayerID: 42, GameID: 7}))
	assert.Equal(t, []int64{3, 7}, player.WishedGames)

	require.NoError(t, srv.RemoveWishedGame(ctx, &event.RemoveWishedGame{PlayerID: 42, GameID: 3}))
	require.NoError(t, srv.RemoveWishedGame(ctx, &event.RemoveWishedGame{PlayerID: 42, GameID: 3}))
	assert.Equal(t, []int64{7}, player.WishedGames)
}

func TestDistributorService_InstallGame(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := f.service(300)
	ctx := context.Background()

	f.ownedRepo.EXPECT().FindByPlayerIDAndGameID(ctx, int64(42), int64(7)).Return(&entity.OwnedGame{}, nil)
	f.playerRepo.EXPECT().FindByID(ctx, int64(42)).Return(&entity.Player{ID: 42, DistributorID: 1, Pseudo: "neo"}, nil)
	f.gameRepo.EXPECT().FindByDistributorIDAndGameID(ctx, int64(1), int64(7)).
		Return(&entity.DistributedGame{GameID: 7, GameName: "Hades", Version: "1.0.2"}, nil)

	require.NoError(t, srv.InstallGame(ctx, &event.InstallGame{PlayerID: 42, GameID: 7, Platform: "WINDOWS"}))

	require.Len(t, f.emitted, 1)
	file, ok := f.emitted[0].event.(*event.SendGameFile)
	require.True(t, ok)
	assert.Equal(t, event.SendGameFile{
		TargetID:   42,
		GameID:     7,
		Version:    "1.0.2",
		GameName:   "Hades",
		Platform:   "WINDOWS",
		PlayerName: "neo",
	}, *file)
}

func TestDistributorService_InstallGame_NotOwned(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := f.service(300)
	ctx := context.Background()

	f.ownedRepo.EXPECT().FindByPlayerIDAndGameID(ctx, int64(42), int64(7)).Return(nil, repository.ErrOwnedGameNotFound)

	err := srv.InstallGame(ctx, &event.InstallGame{PlayerID: 42, GameID: 7, Platform: "WINDOWS"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotOwned)
	assert.True(t, domainerrors.IsDomainError(err))
	assert.Empty(t, f.emitted)
}

func TestDistributorService_UpdateGame(t *testing.T) {
	tests := []struct {
		name      string
		installed string
		wantErr   error
	}{
		{name: "outdated", installed: "1.0.1"},
		{name: "up to date", installed: "1.0.2", wantErr: domainerrors.ErrAlreadyUpToDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDistributorFixtures(t)
			srv := f.service(300)
			ctx := context.Background()

			f.ownedRepo.EXPECT().FindByPlayerIDAndGameID(ctx, int64(42), int64(7)).Return(&entity.OwnedGame{}, nil)
			f.playerRepo.EXPECT().FindByID(ctx, int64(42)).Return(&entity.Player{ID: 42, DistributorID: 1, Pseudo: "neo"}, nil)
			f.gameRepo.EXPECT().FindByDistributorIDAndGameID(ctx, int64(1), int64(7)).
				Return(&entity.DistributedGame{GameID: 7, GameName: "Hades", Version: "1.0.2"}, nil)

			err := srv.UpdateGame(ctx, &event.UpdateGame{PlayerID: 42, GameID: 7, Platform: "WINDOWS", InstalledVersion: tt.installed})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, f.emitted)

				return
			}
			require.NoError(t, err)
			require.Len(t, f.emitted, 1)
			assert.Equal(t, "1.0.2", f.emitted[0].event.(*event.SendGameFile).Version)
		})
	}
}

func TestDistributorService_UninstallGame(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := f.service(300)

	require.NoError(t, srv.UninstallGame(context.Background(), &event.UninstallGame{PlayerID: 42, GameID: 7}))
	assert.Equal(t, 0, f.txCallCount)
}

func TestDistributorService_ReportCrash(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := f.service(300)
	ctx := context.Background()

	f.playerRepo.EXPECT().FindByID(ctx, int64(42)).Return(&entity.Player{ID: 42, DistributorID: 3}, nil)

	e := &event.ReportCrash{PlayerID: 42, GameID: 7, Platform: "WINDOWS", InstalledVersion: "1.0.0", ErrorCode: 139, Message: "segfault"}
	require.NoError(t, srv.ReportCrash(ctx, e))

	require.Len(t, f.emitted, 1)
	crash, ok := f.emitted[0].event.(*event.CrashReported)
	require.True(t, ok)
	assert.Equal(t, int64(3), crash.DistributorID)
	assert.Equal(t, 139, crash.ErrorCode)
	assert.Equal(t, "segfault", crash.Message)
}

func TestDistributorService_AskPlayerPage(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := f.service(300)
	ctx := context.Background()

	player := &entity.Player{ID: 42, Pseudo: "neo", FirstName: "Thomas", LastName: "Anderson", RegistrationDate: fixedNow, WishedGames: []int64{1, 2}}
	f.playerRepo.EXPECT().FindByDistributorID(ctx, int64(1)).Return([]*entity.Player{player}, nil)
	f.ownedRepo.EXPECT().FindByPlayerID(ctx, int64(42)).
		Return([]*entity.OwnedGame{{PlayTime: 30}, {PlayTime: 45}}, nil)

	require.NoError(t, srv.AskPlayerPage(ctx, &event.AskPlayerPage{DistributorID: 1}))

	require.Len(t, f.emitted, 1)
	page, ok := f.emitted[0].event.(*event.SendPlayerPage)
	require.True(t, ok)
	assert.Contains(t, page.Page, "Owned Games: 2\n")
	assert.Contains(t, page.Page, "Total Playtime: 75 minutes\n")
	assert.Contains(t, page.Page, "Wishlist: 2 games\n")
}

func TestDistributorService_AskGamesPage_FiltersPlatform(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := f.service(300)
	ctx := context.Background()

	f.distRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Distributor{ID: 1, Name: "Steam"}, nil)
	f.gameRepo.EXPECT().FindByDistributorID(ctx, int64(1)).Return([]*entity.DistributedGame{
		{GameID: 7, GameName: "Hades", Version: "1.0.0", Price: 20, Platforms: []string{"WINDOWS"}},
		{GameID: 8, GameName: "Halo", Version: "1.0.0", Price: 60, Platforms: []string{"XBOX"}},
	}, nil)

	require.NoError(t, srv.AskGamesPage(ctx, &event.AskGamesPage{DistributorID: 1, Platform: "windows"}))

	require.Len(t, f.emitted, 1)
	page, ok := f.emitted[0].event.(*event.SendGamesPage)
	require.True(t, ok)
	assert.Contains(t, page.Page, "Name: Hades")
	assert.NotContains(t, page.Page, "Name: Halo")
}

func TestDistributorService_AskGameReviews_UnknownGame(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := f.service(300)
	ctx := context.Background()

	f.distRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Distributor{ID: 1, Name: "Steam"}, nil)
	f.gameRepo.EXPECT().FindByDistributorIDAndGameID(ctx, int64(1), int64(7)).Return(nil, repository.ErrDistributedGameNotFound)

	err := srv.AskGameReviews(ctx, &event.AskGameReviews{DistributorID: 1, GameID: 7})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Empty(t, f.emitted)
}

func TestDistributorService_RepositoryFailureIsWrapped(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := f.service(300)
	ctx := context.Background()

	f.playerRepo.EXPECT().FindByID(ctx, int64(42)).Return(nil, errors.New("connection reset"))

	err := srv.PurchaseGame(ctx, &event.PurchaseGame{PlayerID: 42, GameID: 7})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find player 42")
	assert.False(t, domainerrors.IsDomainError(err))
}
