package entity

import (
	"slices"
	"time"
)

// ReactionType is the kind of reaction a player leaves on a review.
type ReactionType int

const (
	ReactionNone     ReactionType = 0
	ReactionPositive ReactionType = 1
	ReactionNegative ReactionType = 2
)

// Review is a distributor-side player review. A player is in at most one reaction set.
type Review struct {
	ID                int64     `json:"id"`
	PlayerID          int64     `json:"player_id"`
	GameID            int64     `json:"game_id"`
	Rating            int       `json:"rating"`
	Comment           string    `json:"comment"`
	PublicationDate   time.Time `json:"publication_date"`
	PositiveReactions []int64   `json:"positive_reactions"`
	NegativeReactions []int64   `json:"negative_reactions"`
}

// ApplyReaction clears any previous reaction of playerID and records the new one.
// ReactionNone only clears.
func (r *Review) ApplyReaction(playerID int64, reaction ReactionType) {
	r.PositiveReactions = slices.DeleteFunc(r.PositiveReactions, func(id int64) bool { return id == playerID })
	r.NegativeReactions = slices.DeleteFunc(r.NegativeReactions, func(id int64) bool { return id == playerID })

	switch reaction {
	case ReactionPositive:
		r.PositiveReactions = append(r.PositiveReactions, playerID)
	case ReactionNegative:
		r.NegativeReactions = append(r.NegativeReactions, playerID)
	case ReactionNone:
	}
}
