package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReview_ApplyReaction(t *testing.T) {
	review := &Review{}

	review.ApplyReaction(5, ReactionPositive)
	assert.Equal(t, []int64{5}, review.PositiveReactions)
	assert.Empty(t, review.NegativeReactions)

	review.ApplyReaction(5, ReactionNegative)
	assert.Empty(t, review.PositiveReactions)
	assert.Equal(t, []int64{5}, review.NegativeReactions)

	review.ApplyReaction(5, ReactionNegative)
	assert.Equal(t, []int64{5}, review.NegativeReactions)

	review.ApplyReaction(6, ReactionPositive)
	review.ApplyReaction(5, ReactionNone)
	assert.Equal(t, []int64{6}, review.PositiveReactions)
	assert.Empty(t, review.NegativeReactions)
}
