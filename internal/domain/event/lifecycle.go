package event

import "time"

type GameDistributed struct {
	DistributorID int64  `json:"distributorId" validate:"required,gt=0"`
	GameID        int64  `json:"gameId" validate:"required,gt=0"`
	GameName      string `json:"gameName"`
}

func (GameDistributed) Topic() string { return TopicGameDistributed }

type PatchDistributed struct {
	DistributorID int64  `json:"distributorId" validate:"required,gt=0"`
	GameID        int64  `json:"gameId" validate:"required,gt=0"`
	NewVersion    string `json:"newVersion" validate:"required"`
	GameName      string `json:"gameName"`
}

func (PatchDistributed) Topic() string { return TopicPatchDistributed }

type SaleStarted struct {
	DistributorID  int64   `json:"distributorId" validate:"required,gt=0"`
	GameID         int64   `json:"gameId" validate:"required,gt=0"`
	SalePercentage float64 `json:"salePercentage" validate:"gte=0,lte=1"`
	GameName       string  `json:"gameName"`
}

func (SaleStarted) Topic() string { return TopicSaleStarted }

// GameReviewed carries an accepted review to the publisher.
type GameReviewed struct {
	ReviewID                  int64     `json:"reviewId" validate:"required,gt=0"`
	DistributorID             int64     `json:"distributorId" validate:"required,gt=0"`
	GameID                    int64     `json:"gameId" validate:"required,gt=0"`
	Rating                    int       `json:"rating" validate:"gte=1,lte=10"`
	Comment                   string    `json:"comment"`
	PublicationDate           time.Time `json:"publicationDate"`
	PositiveReactionPlayerIDs []int64   `json:"positiveReactionPlayerIds"`
	NegativeReactionPlayerIDs []int64   `json:"negativeReactionPlayerIds"`
}

func (GameReviewed) Topic() string { return TopicGameReviewed }

// ReviewRefused tells the player a review was not accepted. ReviewID is 0 when nothing was persisted.
type ReviewRefused struct {
	ReviewID   int64  `json:"reviewId"`
	PlayerName string `json:"playerName"`
	GameName   string `json:"gameName"`
}

func (ReviewRefused) Topic() string { return TopicReviewRefused }

type CrashReported struct {
	DistributorID    int64  `json:"distributorId" validate:"required,gt=0"`
	GameID           int64  `json:"gameId" validate:"required,gt=0"`
	Platform         string `json:"platform"`
	InstalledVersion string `json:"installedVersion"`
	ErrorCode        int    `json:"errorCode"`
	Message          string `json:"message"`
}

func (CrashReported) Topic() string { return TopicCrashReported }

// SendGameFile carries install or update metadata; no binary content.
type SendGameFile struct {
	TargetID   int64  `json:"targetId" validate:"required,gt=0"`
	GameID     int64  `json:"gameId" validate:"required,gt=0"`
	Version    string `json:"version"`
	GameName   string `json:"gameName"`
	Platform   string `json:"platform"`
	PlayerName string `json:"playerName"`
}

func (SendGameFile) Topic() string { return TopicSendGameFile }
