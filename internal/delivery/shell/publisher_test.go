package shell

import (
	"testing"

	"gamehub/internal/domain/entity"
	mockUsecase "gamehub/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createPublisherShell(t *testing.T) (shellFixtures, *mockUsecase.MockCatalogUsecase) {
	catalog := mockUsecase.NewMockCatalogUsecase(t)

	return createShellFixtures(t, NewPublisherCommands(PublisherCommandsParams{Catalog: catalog})...), catalog
}

func TestPublisherCommands_AddPublisher(t *testing.T) {
	fx, catalog := createPublisherShell(t)
	catalog.EXPECT().AddPublisher(mock.Anything, "Nintendo", true).Return(&entity.Publisher{ID: 2, Name: "Nintendo", IsCompany: true}, nil)

	assert.Contains(t, fx.run(t, "add-publisher Nintendo 1"), "Added publisher: 2 Nintendo (company: true)")
	assert.Contains(t, fx.run(t, "add-publisher Nintendo maybe"), "'maybe' is not 1 or 0")
}

func TestPublisherCommands_RemovePublisher(t *testing.T) {
	fx, catalog := createPublisherShell(t)
	catalog.EXPECT().RemovePublisher(mock.Anything, "Sega").Return(&entity.Publisher{ID: 5, Name: "Sega"}, nil)

	assert.Contains(t, fx.run(t, "remove-publisher Sega"), "Removed publisher: 5 Sega")
}

func TestPublisherCommands_ListGames(t *testing.T) {
	fx, catalog := createPublisherShell(t)
	catalog.EXPECT().ListGames(mock.Anything).Return([]*entity.Game{
		{
			ID: 1, PublisherID: 2, Name: "Tetris", Version: "1.0.0",
			Platforms: []entity.Platform{entity.PlatformWindows, entity.PlatformXbox},
			Genres:    []entity.Genre{entity.GenrePuzzle},
		},
	}, nil)

	out := fx.run(t, "list-games")
	assert.Contains(t, out, "Tetris")
	assert.Contains(t, out, "WINDOWS,XBOX")
	assert.Contains(t, out, "PUZZLE")
}

func TestPublisherCommands_Publish(t *testing.T) {
	fx, catalog := createPublisherShell(t)
	catalog.EXPECT().PublishGame(mock.Anything, int64(1)).Return(&entity.Game{ID: 1, Name: "Tetris", Version: "1.0.0"}, nil)
	catalog.EXPECT().PublishPatch(mock.Anything, int64(1), "1.1.0").Return(&entity.Patch{GameID: 1, Version: "1.1.0"}, nil)

	assert.Contains(t, fx.run(t, "publish-game 1"), "Published game: 1 Tetris 1.0.0")
	assert.Contains(t, fx.run(t, "publish-patch 1 1.1.0"), "Published patch: game 1 version 1.1.0")
	assert.Contains(t, fx.run(t, "publish-game one"), "'one' is not a valid number")
}

func TestPublisherCommands_LoadCSV(t *testing.T) {
	fx, catalog := createPublisherShell(t)
	catalog.EXPECT().LoadCatalog(mock.Anything, 50).Return(4, nil).Once()
	catalog.EXPECT().LoadCatalog(mock.Anything, 10).Return(0, errors.New("no catalog source configured")).Once()

	assert.Contains(t, fx.run(t, "load-csv 50"), "Imported 4 game(s)")
	assert.Contains(t, fx.run(t, "load-csv 10"), "Error: no catalog source configured")
}
