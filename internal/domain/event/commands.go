package event

import "time"

type RegisterPlayer struct {
	DistributorID int64     `json:"distributorId" validate:"required,gt=0"`
	Pseudo        string    `json:"pseudo" validate:"required"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	BirthDate     time.Time `json:"birthDate"`
}

func (RegisterPlayer) Topic() string { return TopicRegisterPlayer }

type PurchaseGame struct {
	PlayerID int64 `json:"playerId" validate:"required,gt=0"`
	GameID   int64 `json:"gameId" validate:"required,gt=0"`
}

func (PurchaseGame) Topic() string      { return TopicPurchaseGame }
func (e *PurchaseGame) playerID() int64 { return e.PlayerID }

type ReviewGame struct {
	PlayerID int64  `json:"playerId" validate:"required,gt=0"`
	GameID   int64  `json:"gameId" validate:"required,gt=0"`
	Rating   int    `json:"rating" validate:"gte=1,lte=10"`
	Comment  string `json:"comment"`
}

func (ReviewGame) Topic() string      { return TopicReviewGame }
func (e *ReviewGame) playerID() int64 { return e.PlayerID }

// ReactReview ReactType: 0 clears, 1 positive, 2 negative.
type ReactReview struct {
	ReviewID  int64 `json:"reviewId" validate:"required,gt=0"`
	PlayerID  int64 `json:"playerId" validate:"required,gt=0"`
	ReactType int   `json:"reactType" validate:"gte=0,lte=2"`
}

func (ReactReview) Topic() string { return TopicReactReview }

type InstallGame struct {
	PlayerID int64  `json:"playerId" validate:"required,gt=0"`
	GameID   int64  `json:"gameId" validate:"required,gt=0"`
	Platform string `json:"platform"`
}

func (InstallGame) Topic() string      { return TopicInstallGame }
func (e *InstallGame) playerID() int64 { return e.PlayerID }

type UpdateGame struct {
	PlayerID         int64  `json:"playerId" validate:"required,gt=0"`
	GameID           int64  `json:"gameId" validate:"required,gt=0"`
	Platform         string `json:"platform"`
	InstalledVersion string `json:"installedVersion"`
}

func (UpdateGame) Topic() string      { return TopicUpdateGame }
func (e *UpdateGame) playerID() int64 { return e.PlayerID }

type UninstallGame struct {
	PlayerID int64  `json:"playerId" validate:"required,gt=0"`
	GameID   int64  `json:"gameId" validate:"required,gt=0"`
	Platform string `json:"platform"`
	Comment  string `json:"comment"`
}

func (UninstallGame) Topic() string      { return TopicUninstallGame }
func (e *UninstallGame) playerID() int64 { return e.PlayerID }

// AddPlayTime Time is in milliseconds.
type AddPlayTime struct {
	PlayerID int64 `json:"playerId" validate:"required,gt=0"`
	GameID   int64 `json:"gameId" validate:"required,gt=0"`
	Time     int64 `json:"time" validate:"gte=0"`
}

func (AddPlayTime) Topic() string      { return TopicAddPlayTime }
func (e *AddPlayTime) playerID() int64 { return e.PlayerID }

type ReportCrash struct {
	PlayerID         int64  `json:"playerId" validate:"required,gt=0"`
	GameID           int64  `json:"gameId" validate:"required,gt=0"`
	Platform         string `json:"platform"`
	InstalledVersion string `json:"installedVersion"`
	ErrorCode        int    `json:"errorCode"`
	Message          string `json:"message"`
}

func (ReportCrash) Topic() string      { return TopicReportCrash }
func (e *ReportCrash) playerID() int64 { return e.PlayerID }

type AddWishedGame struct {
	PlayerID int64 `json:"playerId" validate:"required,gt=0"`
	GameID   int64 `json:"gameId" validate:"required,gt=0"`
}

func (AddWishedGame) Topic() string      { return TopicAddWishedGame }
func (e *AddWishedGame) playerID() int64 { return e.PlayerID }

type RemoveWishedGame struct {
	PlayerID int64 `json:"playerId" validate:"required,gt=0"`
	GameID   int64 `json:"gameId" validate:"required,gt=0"`
}

func (RemoveWishedGame) Topic() string      { return TopicRemoveWishedGame }
func (e *RemoveWishedGame) playerID() int64 { return e.PlayerID }

type AskPlayerPage struct {
	DistributorID int64 `json:"distributorId" validate:"required,gt=0"`
}

func (AskPlayerPage) Topic() string { return TopicAskPlayerPage }

type AskGamesPage struct {
	DistributorID int64  `json:"distributorId" validate:"required,gt=0"`
	Platform      string `json:"platform" validate:"required"`
}

func (AskGamesPage) Topic() string { return TopicAskGamesPage }

type AskGameReviews struct {
	DistributorID int64 `json:"distributorId" validate:"required,gt=0"`
	GameID        int64 `json:"gameId" validate:"required,gt=0"`
}

func (AskGameReviews) Topic() string { return TopicAskGameReviews }
