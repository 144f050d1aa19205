package event

// Catalog topics, produced by the publisher
const (
	TopicGamePublished  = "game-published"
	TopicPatchPublished = "patch-published"
)

// Lifecycle topics, produced by the distributor
const (
	TopicGameDistributed  = "game-distributed"
	TopicPatchDistributed = "patch-distributed"
	TopicSaleStarted      = "sale-started"
	TopicGameReviewed     = "game-reviewed"
	TopicReviewRefused    = "review-refused"
	TopicCrashReported    = "crash-reported"
	TopicSendGameFile     = "send-game-file"
	TopicSendPlayerPage   = "send-player-page"
	TopicSendGamesPage    = "send-games-page"
	TopicSendGameReviews  = "send-game-reviews"
)

// Player command topics, consumed by the distributor
const (
	TopicRegisterPlayer   = "register-player"
	TopicPurchaseGame     = "purchase-game"
	TopicReviewGame       = "review-game"
	TopicReactReview      = "react-review"
	TopicInstallGame      = "install-game"
	TopicUpdateGame       = "update-game"
	TopicUninstallGame    = "uninstall-game"
	TopicAddPlayTime      = "add-play-time"
	TopicReportCrash      = "report-crash"
	TopicAddWishedGame    = "add-wished-game"
	TopicRemoveWishedGame = "remove-wished-game"
	TopicAskPlayerPage    = "ask-player-page"
	TopicAskGamesPage     = "ask-games-page"
	TopicAskGameReviews   = "ask-game-reviews"
)

// TopicExampleEvent is a diagnostic topic both services listen on.
const TopicExampleEvent = "example-event"

// TopicConfig describes a topic for provisioning.
type TopicConfig struct {
	Name        string
	Producer    string
	Consumer    string
	Description string
}

// Topics lists every topic in the system.
//
//nolint:gochecknoglobals
var Topics = []TopicConfig{
	{Name: TopicGamePublished, Producer: "publisher", Consumer: "distributor", Description: "A game entered the publisher catalog"},
	{Name: TopicPatchPublished, Producer: "publisher", Consumer: "distributor", Description: "A game moved to a new version"},
	{Name: TopicGameDistributed, Producer: "distributor", Consumer: "publisher", Description: "A distributor listed a game"},
	{Name: TopicPatchDistributed, Producer: "distributor", Consumer: "player", Description: "A distributor updated a listed game"},
	{Name: TopicSaleStarted, Producer: "distributor", Consumer: "player", Description: "A listed game went on sale"},
	{Name: TopicGameReviewed, Producer: "distributor", Consumer: "publisher", Description: "A review was accepted"},
	{Name: TopicReviewRefused, Producer: "distributor", Consumer: "player", Description: "A review was rejected"},
	{Name: TopicCrashReported, Producer: "distributor", Consumer: "publisher", Description: "A player reported a crash"},
	{Name: TopicSendGameFile, Producer: "distributor", Consumer: "player", Description: "Install or update metadata for a player"},
	{Name: TopicSendPlayerPage, Producer: "distributor", Consumer: "player", Description: "Rendered player directory"},
	{Name: TopicSendGamesPage, Producer: "distributor", Consumer: "player", Description: "Rendered catalog for a platform"},
	{Name: TopicSendGameReviews, Producer: "distributor", Consumer: "player", Description: "Rendered reviews of a game"},
	{Name: TopicRegisterPlayer, Producer: "player", Consumer: "distributor", Description: "Create a player account"},
	{Name: TopicPurchaseGame, Producer: "player", Consumer: "distributor", Description: "Buy a game"},
	{Name: TopicReviewGame, Producer: "player", Consumer: "distributor", Description: "Submit a review"},
	{Name: TopicReactReview, Producer: "player", Consumer: "distributor", Description: "Like or dislike a review"},
	{Name: TopicInstallGame, Producer: "player", Consumer: "distributor", Description: "Request a game install"},
	{Name: TopicUpdateGame, Producer: "player", Consumer: "distributor", Description: "Request a game update"},
	{Name: TopicUninstallGame, Producer: "player", Consumer: "distributor", Description: "Notify an uninstall"},
	{Name: TopicAddPlayTime, Producer: "player", Consumer: "distributor", Description: "Report a play session"},
	{Name: TopicReportCrash, Producer: "player", Consumer: "distributor", Description: "Report a crash"},
	{Name: TopicAddWishedGame, Producer: "player", Consumer: "distributor", Description: "Add a game to the wishlist"},
	{Name: TopicRemoveWishedGame, Producer: "player", Consumer: "distributor", Description: "Remove a game from the wishlist"},
	{Name: TopicAskPlayerPage, Producer: "player", Consumer: "distributor", Description: "Request the player directory"},
	{Name: TopicAskGamesPage, Producer: "player", Consumer: "distributor", Description: "Request the catalog for a platform"},
	{Name: TopicAskGameReviews, Producer: "player", Consumer: "distributor", Description: "Request the reviews of a game"},
	{Name: TopicExampleEvent, Producer: "operator", Consumer: "all", Description: "Diagnostic message"},
}
