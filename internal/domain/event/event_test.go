package event

import (
	"testing"
	"time"

	"gamehub/internal/domain/constants"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CoversEveryTopic(t *testing.T) {
	for _, topic := range Topics {
		t.Run(topic.Name, func(t *testing.T) {
			e, err := New(topic.Name)
			require.NoError(t, err)
			assert.Equal(t, topic.Name, e.Topic())
		})
	}

	assert.Len(t, TopicNames(), len(Topics))
}

func TestNew_UnknownTopic(t *testing.T) {
	_, err := New("no-such-topic")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownTopic))
	assert.False(t, KnownTopic("no-such-topic"))
}

func TestEncodeDecode_GameReviewed(t *testing.T) {
	published := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	in := &GameReviewed{
		ReviewID:                  12,
		DistributorID:             1,
		GameID:                    42,
		Rating:                    2,
		Comment:                   "crashes on launch",
		PublicationDate:           published,
		PositiveReactionPlayerIDs: []int64{},
		NegativeReactionPlayerIDs: []int64{},
	}

	data, headers, err := Encode(in, constants.ServiceDistributor)
	require.NoError(t, err)
	assert.Equal(t, TopicGameReviewed, headers[constants.HeaderEventType])
	assert.Equal(t, constants.ContentTypeJSON, headers[constants.HeaderContentType])
	assert.Equal(t, constants.ServiceDistributor, headers[constants.HeaderProducer])
	assert.Contains(t, string(data), `"gameId":42`)

	out, err := Decode(TopicGameReviewed, data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecode_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		topic string
		data  string
		kind  error
	}{
		{name: "malformed json", topic: TopicPurchaseGame, data: `{"playerId":`, kind: domainerrors.ErrParse},
		{name: "missing player", topic: TopicPurchaseGame, data: `{"gameId":3}`, kind: domainerrors.ErrValidationFailed},
		{name: "rating out of range", topic: TopicReviewGame, data: `{"playerId":1,"gameId":3,"rating":11}`, kind: domainerrors.ErrValidationFailed},
		{name: "react type out of range", topic: TopicReactReview, data: `{"playerId":1,"reviewId":3,"reactType":3}`, kind: domainerrors.ErrValidationFailed},
		{name: "unknown topic", topic: "nope", data: `{}`, kind: domainerrors.ErrUnknownTopic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.topic, []byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)
			assert.True(t, domainerrors.IsDomainError(err))
		})
	}
}

func TestRoutingKeys(t *testing.T) {
	assert.Equal(t, "player-7", PlayerKey(7))
	assert.Equal(t, "game-42", GameKey(42))
	assert.Equal(t, "distributor-1", DistributorKey(1))
	assert.Equal(t, "review-9", ReviewKey(9))
	assert.NotEqual(t, RandomKey(), RandomKey())
}

func TestKeyOf(t *testing.T) {
	tests := []struct {
		name string
		e    Event
		want string
	}{
		{name: "catalog event by game", e: &PatchPublished{GameID: 7, Version: "1.0.1"}, want: "game-7"},
		{name: "review by game", e: &GameReviewed{ReviewID: 9, DistributorID: 1, GameID: 7}, want: "game-7"},
		{name: "game file by target player", e: &SendGameFile{TargetID: 42, GameID: 7}, want: "player-42"},
		{name: "player command", e: &PurchaseGame{PlayerID: 42, GameID: 7}, want: "player-42"},
		{name: "play time", e: &AddPlayTime{PlayerID: 42, GameID: 7}, want: "player-42"},
		{name: "reaction by review", e: &ReactReview{ReviewID: 9, PlayerID: 42, ReactType: 1}, want: "review-9"},
		{name: "refusal by review", e: &ReviewRefused{ReviewID: 9}, want: "review-9"},
		{name: "registration by distributor", e: &RegisterPlayer{DistributorID: 1, Pseudo: "neo"}, want: "distributor-1"},
		{name: "page request by distributor", e: &AskGameReviews{DistributorID: 1, GameID: 7}, want: "distributor-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyOf(tt.e))
		})
	}
}

func TestKeyOf_NoAggregate(t *testing.T) {
	refused := KeyOf(&ReviewRefused{PlayerName: "neo"})
	example := KeyOf(&ExampleEvent{Payload: "x"})

	assert.NotEmpty(t, refused)
	assert.NotEqual(t, refused, example)
}
