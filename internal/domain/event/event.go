// Package event defines the topics and payloads exchanged between the services.
package event

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"gamehub/internal/domain/constants"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Event is a payload bound to exactly one topic.
type Event interface {
	Topic() string
}

//nolint:gochecknoglobals
var registry = map[string]func() Event{
	TopicGamePublished:    func() Event { return &GamePublished{} },
	TopicPatchPublished:   func() Event { return &PatchPublished{} },
	TopicGameDistributed:  func() Event { return &GameDistributed{} },
	TopicPatchDistributed: func() Event { return &PatchDistributed{} },
	TopicSaleStarted:      func() Event { return &SaleStarted{} },
	TopicGameReviewed:     func() Event { return &GameReviewed{} },
	TopicReviewRefused:    func() Event { return &ReviewRefused{} },
	TopicCrashReported:    func() Event { return &CrashReported{} },
	TopicSendGameFile:     func() Event { return &SendGameFile{} },
	TopicSendPlayerPage:   func() Event { return &SendPlayerPage{} },
	TopicSendGamesPage:    func() Event { return &SendGamesPage{} },
	TopicSendGameReviews:  func() Event { return &SendGameReviews{} },
	TopicRegisterPlayer:   func() Event { return &RegisterPlayer{} },
	TopicPurchaseGame:     func() Event { return &PurchaseGame{} },
	TopicReviewGame:       func() Event { return &ReviewGame{} },
	TopicReactReview:      func() Event { return &ReactReview{} },
	TopicInstallGame:      func() Event { return &InstallGame{} },
	TopicUpdateGame:       func() Event { return &UpdateGame{} },
	TopicUninstallGame:    func() Event { return &UninstallGame{} },
	TopicAddPlayTime:      func() Event { return &AddPlayTime{} },
	TopicReportCrash:      func() Event { return &ReportCrash{} },
	TopicAddWishedGame:    func() Event { return &AddWishedGame{} },
	TopicRemoveWishedGame: func() Event { return &RemoveWishedGame{} },
	TopicAskPlayerPage:    func() Event { return &AskPlayerPage{} },
	TopicAskGamesPage:     func() Event { return &AskGamesPage{} },
	TopicAskGameReviews:   func() Event { return &AskGameReviews{} },
	TopicExampleEvent:     func() Event { return &ExampleEvent{} },
}

//nolint:gochecknoglobals
var validate = validator.New(validator.WithRequiredStructEnabled())

// New returns an empty payload for topic.
func New(topic string) (Event, error) {
	ctor, ok := registry[topic]
	if !ok {
		return nil, domainerrors.ErrUnknownTopic.WrapMessage(topic)
	}

	return ctor(), nil
}

// KnownTopic reports whether topic has a registered payload.
func KnownTopic(topic string) bool {
	_, ok := registry[topic]

	return ok
}

// TopicNames returns every registered topic, sorted.
func TopicNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Encode serializes e and returns the headers that describe it.
func Encode(e Event, producer string) ([]byte, map[string]string, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "encode %s", e.Topic())
	}

	headers := map[string]string{
		constants.HeaderEventType:   e.Topic(),
		constants.HeaderContentType: constants.ContentTypeJSON,
	}
	if producer != "" {
		headers[constants.HeaderProducer] = producer
	}

	return data, headers, nil
}

// Decode parses data as the payload of topic and validates it.
func Decode(topic string, data []byte) (Event, error) {
	e, err := New(topic)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, e); err != nil {
		return nil, errors.Wrap(domainerrors.ErrParse, fmt.Sprintf("decode %s: %v", topic, err))
	}

	if err := Validate(e); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate checks the payload constraints declared on the struct tags.
func Validate(e Event) error {
	if err := validate.Struct(e); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, fmt.Sprintf("%s: %v", e.Topic(), err))
	}

	return nil
}

// Routing keys. Events about one aggregate share a key so they stay on one partition.

func PlayerKey(playerID int64) string {
	return "player-" + strconv.FormatInt(playerID, 10)
}

func GameKey(gameID int64) string {
	return "game-" + strconv.FormatInt(gameID, 10)
}

func DistributorKey(distributorID int64) string {
	return "distributor-" + strconv.FormatInt(distributorID, 10)
}

func ReviewKey(reviewID int64) string {
	return "review-" + strconv.FormatInt(reviewID, 10)
}

// RandomKey is used when no aggregate applies.
func RandomKey() string {
	return uuid.NewString()
}

// KeyOf derives the routing key from the aggregate a payload is about.
// Payloads without one get a random key.
func KeyOf(e Event) string {
	switch e := e.(type) {
	case *GamePublished:
		return GameKey(e.GameID)
	case *PatchPublished:
		return GameKey(e.GameID)
	case *GameDistributed:
		return GameKey(e.GameID)
	case *PatchDistributed:
		return GameKey(e.GameID)
	case *SaleStarted:
		return GameKey(e.GameID)
	case *GameReviewed:
		return GameKey(e.GameID)
	case *CrashReported:
		return GameKey(e.GameID)
	case *SendGameFile:
		return PlayerKey(e.TargetID)
	case *ReviewRefused:
		if e.ReviewID > 0 {
			return ReviewKey(e.ReviewID)
		}
	case *ReactReview:
		return ReviewKey(e.ReviewID)
	case *RegisterPlayer:
		return DistributorKey(e.DistributorID)
	case *AskPlayerPage:
		return DistributorKey(e.DistributorID)
	case *AskGamesPage:
		return DistributorKey(e.DistributorID)
	case *AskGameReviews:
		return DistributorKey(e.DistributorID)
	case *SendPlayerPage:
		return DistributorKey(e.DistributorID)
	case *SendGamesPage:
		return DistributorKey(e.DistributorID)
	case *SendGameReviews:
		return DistributorKey(e.DistributorID)
	case interface{ playerID() int64 }:
		return PlayerKey(e.playerID())
	}

	return RandomKey()
}
