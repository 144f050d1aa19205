package event

// GamePublished announces a game entering the publisher catalog.
type GamePublished struct {
	GameID      int64    `json:"gameId" validate:"required,gt=0"`
	GameName    string   `json:"gameName" validate:"required"`
	Version     string   `json:"version" validate:"required"`
	PublisherID int64    `json:"publisherId"`
	Platforms   []string `json:"platforms"`
	Genres      []string `json:"genres"`
}

func (GamePublished) Topic() string { return TopicGamePublished }

// PatchPublished announces a new game version.
type PatchPublished struct {
	GameID  int64  `json:"gameId" validate:"required,gt=0"`
	Version string `json:"version" validate:"required"`
}

func (PatchPublished) Topic() string { return TopicPatchPublished }
