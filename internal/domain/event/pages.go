package event

type SendPlayerPage struct {
	DistributorID int64  `json:"distributorId"`
	Page          string `json:"page"`
}

func (SendPlayerPage) Topic() string { return TopicSendPlayerPage }

type SendGamesPage struct {
	DistributorID int64  `json:"distributorId"`
	Platform      string `json:"platform"`
	Page          string `json:"page"`
}

func (SendGamesPage) Topic() string { return TopicSendGamesPage }

type SendGameReviews struct {
	DistributorID int64  `json:"distributorId"`
	GameID        int64  `json:"gameId"`
	Page          string `json:"page"`
}

func (SendGameReviews) Topic() string { return TopicSendGameReviews }

// ExampleEvent is a free-form diagnostic message.
type ExampleEvent struct {
	Payload string `json:"payload" validate:"required"`
}

func (ExampleEvent) Topic() string { return TopicExampleEvent }
