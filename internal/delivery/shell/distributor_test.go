package shell

import (
	"testing"
	"time"

	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
	mockUsecase "gamehub/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createDistributorShell(t *testing.T) (shellFixtures, *mockUsecase.MockDistributorAdminUsecase) {
	admin := mockUsecase.NewMockDistributorAdminUsecase(t)

	return createShellFixtures(t, NewDistributorCommands(DistributorCommandsParams{Admin: admin})...), admin
}

func TestDistributorCommands_AddDistributor(t *testing.T) {
	fx, admin := createDistributorShell(t)
	admin.EXPECT().AddDistributor(mock.Anything, "Steam Store").Return(&entity.Distributor{ID: 4, Name: "Steam Store"}, nil)

	out := fx.run(t, `add-distributor "Steam Store"`)
	assert.Contains(t, out, "Added distributor: 4 Steam Store")
}

func TestDistributorCommands_RemoveDistributor(t *testing.T) {
	fx, admin := createDistributorShell(t)
	admin.EXPECT().RemoveDistributor(mock.Anything, "1").Return(&entity.Distributor{ID: 1, Name: "Steam"}, nil)
	admin.EXPECT().RemoveDistributor(mock.Anything, "nope").Return(nil, domainerrors.ErrNotFound)

	out := fx.run(t, "remove-distributor 1 nope")
	assert.Contains(t, out, "Removed distributor: 1 Steam")
	assert.Contains(t, out, "'nope' is not a valid distributor ID")
}

func TestDistributorCommands_ListGames(t *testing.T) {
	fx, admin := createDistributorShell(t)
	sale := 0.25
	admin.EXPECT().ListDistributedGames(mock.Anything, int64(2)).Return([]*entity.DistributedGame{
		{ID: 1, DistributorID: 2, GameID: 9, GameName: "Tetris", Version: "1.0.0", Price: 19.99, Sale: &sale},
	}, nil)

	out := fx.run(t, "list-games 2")
	assert.Contains(t, out, "Tetris")
	assert.Contains(t, out, "19.99")
	assert.Contains(t, out, "25%")
}

func TestDistributorCommands_ListGames_AllWithoutArgument(t *testing.T) {
	fx, admin := createDistributorShell(t)
	admin.EXPECT().ListDistributedGames(mock.Anything, int64(0)).Return(nil, nil)

	out := fx.run(t, "list-games")
	assert.Contains(t, out, "DISTRIBUTOR")
}

func TestDistributorCommands_BadNumberSkipsCall(t *testing.T) {
	fx, _ := createDistributorShell(t)

	for _, line := range []string{"list-games abc", "list-players x", "list-owned-games 1.5", "list-reviews y", "start-sale 1 two 0.5"} {
		assert.Contains(t, fx.run(t, line), "is not a valid number", line)
	}
}

func TestDistributorCommands_Lists(t *testing.T) {
	fx, admin := createDistributorShell(t)
	registered := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	admin.EXPECT().ListPlayers(mock.Anything, int64(0)).Return([]*entity.Player{
		{ID: 3, DistributorID: 1, Pseudo: "neo", FirstName: "Thomas", LastName: "Anderson", RegistrationDate: registered},
	}, nil)
	admin.EXPECT().ListOwnedGames(mock.Anything, int64(3)).Return([]*entity.OwnedGame{
		{ID: 8, PlayerID: 3, GameID: 9, PurchaseDate: registered, PlayTime: 42},
	}, nil)
	admin.EXPECT().ListReviews(mock.Anything, int64(9)).Return([]*entity.Review{
		{ID: 5, GameID: 9, PlayerID: 3, Rating: 8, Comment: "great", PositiveReactions: []int64{1, 2}},
	}, nil)
	admin.EXPECT().ListDistributors(mock.Anything).Return([]*entity.Distributor{{ID: 1, Name: "Steam"}}, nil)

	assert.Contains(t, fx.run(t, "list-players"), "Thomas Anderson")
	assert.Contains(t, fx.run(t, "list-owned-games 3"), "42")
	assert.Contains(t, fx.run(t, "list-reviews 9"), "great")
	assert.Contains(t, fx.run(t, "get-distributor"), "Steam")
}

func TestDistributorCommands_StartSale(t *testing.T) {
	fx, admin := createDistributorShell(t)
	admin.EXPECT().StartSale(mock.Anything, int64(1), int64(9), 0.25).Return(nil)
	admin.EXPECT().StartSale(mock.Anything, int64(1), int64(9), 1.5).Return(domainerrors.ErrValidationFailed)

	assert.Contains(t, fx.run(t, "start-sale 1 9 0.25"), "Sale started on game 9 at distributor 1")
	assert.Contains(t, fx.run(t, "start-sale 1 9 1.5"), "Error: input validation failed")
}
