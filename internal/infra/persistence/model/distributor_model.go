// Package model holds the GORM models of both service databases.
package model

import (
	"time"

	"github.com/lib/pq"
)

// DistributorModel is the GORM-specific struct for the 'distributors' table.
type DistributorModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(255);not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (DistributorModel) TableName() string {
	return "distributors"
}

// DistributedGameModel is a distributor listing. (distributor_id, game_id) is unique.
type DistributedGameModel struct {
	ID            int64          `gorm:"primaryKey;autoIncrement"`
	DistributorID int64          `gorm:"not null;uniqueIndex:uq_distributed_games_distributor_game"`
	GameID        int64          `gorm:"not null;uniqueIndex:uq_distributed_games_distributor_game;index"`
	GameName      string         `gorm:"type:varchar(255);not null"`
	Version       string         `gorm:"type:varchar(32);not null"`
	Price         float64        `gorm:"not null"`
	Sale          *float64       `gorm:"check:sale IS NULL OR (sale >= 0 AND sale <= 1)"`
	Platforms     pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
}

// TableName explicitly sets the table name for GORM.
func (DistributedGameModel) TableName() string {
	return "distributed_games"
}

// PlayerModel is the GORM-specific struct for the 'players' table.
type PlayerModel struct {
	ID               int64         `gorm:"primaryKey;autoIncrement"`
	DistributorID    int64         `gorm:"not null;index"`
	Pseudo           string        `gorm:"type:varchar(255);not null"`
	FirstName        string        `gorm:"type:varchar(255);not null;default:''"`
	LastName         string        `gorm:"type:varchar(255);not null;default:''"`
	BirthDate        *time.Time    `gorm:"type:timestamptz"`
	RegistrationDate time.Time     `gorm:"type:timestamptz;not null"`
	WishedGames      pq.Int64Array `gorm:"type:bigint[];not null;default:'{}'"`
}

// TableName explicitly sets the table name for GORM.
func (PlayerModel) TableName() string {
	return "players"
}

// OwnedGameModel records a purchase. (player_id, game_id) is unique.
type OwnedGameModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	PlayerID     int64     `gorm:"not null;uniqueIndex:uq_owned_games_player_game"`
	GameID       int64     `gorm:"not null;uniqueIndex:uq_owned_games_player_game"`
	PurchaseDate time.Time `gorm:"type:timestamptz;not null"`
	PlayTime     int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (OwnedGameModel) TableName() string {
	return "owned_games"
}

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// Reactions live in review_reactions.
type ReviewModel struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	PlayerID        int64     `gorm:"not null"`
	GameID          int64     `gorm:"not null;index"`
	Rating          int       `gorm:"type:smallint;not null"`
	Comment         string    `gorm:"type:text;not null;default:''"`
	PublicationDate time.Time `gorm:"type:timestamptz;not null"`

	Reactions []ReviewReactionModel `gorm:"foreignKey:ReviewID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// ReviewReactionModel is one player's reaction to a review.
type ReviewReactionModel struct {
	ReviewID int64 `gorm:"primaryKey;autoIncrement:false"`
	PlayerID int64 `gorm:"primaryKey;autoIncrement:false"`
	Kind     int   `gorm:"type:smallint;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewReactionModel) TableName() string {
	return "review_reactions"
}
