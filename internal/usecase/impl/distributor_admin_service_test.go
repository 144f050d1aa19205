package impl

import (
	"context"
	"testing"

	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/event"
	"gamehub/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAdminService(f *distributorFixtures) *distributorAdminService {
	srv, _ := NewDistributorAdminService(DistributorAdminServiceParams{
		TxManager: f.txManager,
		Logger:    newDiscardLogger(),
	}).(*distributorAdminService)

	return srv
}

func TestDistributorAdminService_AddDistributor(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := newTestAdminService(f)
	ctx := context.Background()

	f.distRepo.EXPECT().
		Save(ctx, mock.MatchedBy(func(d *entity.Distributor) bool { return d.Name == "Steam" })).
		RunAndReturn(func(_ context.Context, d *entity.Distributor) error {
			d.ID = 1

			return nil
		})

	distributor, err := srv.AddDistributor(ctx, "  Steam ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), distributor.ID)
}

func TestDistributorAdminService_AddDistributor_EmptyName(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := newTestAdminService(f)

	_, err := srv.AddDistributor(context.Background(), " ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDistributorAdminService_RemoveDistributor_ByName(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := newTestAdminService(f)
	ctx := context.Background()

	f.distRepo.EXPECT().FindFirstByName(ctx, "GOG").Return(&entity.Distributor{ID: 2, Name: "GOG"}, nil)
	f.distRepo.EXPECT().Delete(ctx, int64(2)).Return(nil)

	removed, err := srv.RemoveDistributor(ctx, "GOG")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed.ID)
}

func TestDistributorAdminService_RemoveDistributor_UnknownID(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := newTestAdminService(f)
	ctx := context.Background()

	f.distRepo.EXPECT().FindByID(ctx, int64(9)).Return(nil, repository.ErrDistributorNotFound)

	_, err := srv.RemoveDistributor(ctx, "9")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestDistributorAdminService_ListDistributedGames(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := newTestAdminService(f)
	ctx := context.Background()

	all := []*entity.DistributedGame{{ID: 1}, {ID: 2}}
	mine := []*entity.DistributedGame{{ID: 2}}
	f.gameRepo.EXPECT().FindAll(ctx).Return(all, nil)
	f.gameRepo.EXPECT().FindByDistributorID(ctx, int64(1)).Return(mine, nil)

	games, err := srv.ListDistributedGames(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, all, games)

	games, err = srv.ListDistributedGames(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, mine, games)
}

func TestDistributorAdminService_StartSale(t *testing.T) {
	f := newDistributorFixtures(t)
	srv := newTestAdminService(f)
	ctx := context.Background()

	game := &entity.DistributedGame{DistributorID: 1, GameID: 7, GameName: "Hades", Price: 20}
	f.gameRepo.EXPECT().FindByDistributorIDAndGameID(ctx, int64(1), int64(7)).Return(game, nil)
	f.gameRepo.EXPECT().Save(ctx, game).Return(nil)

	require.NoError(t, srv.StartSale(ctx, 1, 7, 0.25))

	require.NotNil(t, game.Sale)
	assert.InDelta(t, 15.0, game.SalePrice(), 1e-9)
	require.Len(t, f.emitted, 1)
	assert.Equal(t, &event.SaleStarted{DistributorID: 1, GameID: 7, SalePercentage: 0.25, GameName: "Hades"}, f.emitted[0].event)
}

func TestDistributorAdminService_StartSale_OutOfRange(t *testing.T) {
	for _, pct := range []float64{-0.1, 1.5} {
		f := newDistributorFixtures(t)
		srv := newTestAdminService(f)

		err := srv.StartSale(context.Background(), 1, 7, pct)
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		assert.Empty(t, f.emitted)
	}
}
