package config

import (
	"strings"
	"time"
)

const (
	defaultBusProvider       = "memory"
	defaultPartitions        = 3
	defaultReplication       = 1
	defaultConcurrency       = 1
	defaultConsumerAttempts  = 3
	defaultInitialBackoff    = 200 * time.Millisecond
	defaultMaxBackoff        = 5 * time.Second
	defaultConsumeLogSize    = 1000
	defaultOutboxPoll        = time.Second
	defaultOutboxBatch       = 100
	defaultOutboxAttempts    = 8
	defaultOutboxBackoff     = 2 * time.Second
	defaultReviewMinPlayTime = 300
	defaultPrice             = 59.99
	defaultNegativeEvery     = 15
	defaultCrashEvery        = 10
	defaultLowRatingMax      = 2
	defaultTokenTTL          = time.Hour
	defaultShellPrompt       = "> "
)

// applyDefaults fills zero values so the services can run from a minimal file.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Admin == nil {
		cfg.Admin = &AdminConfig{}
	}
	if cfg.Admin.TokenTTL <= 0 {
		cfg.Admin.TokenTTL = defaultTokenTTL
	}

	if cfg.Bus == nil {
		cfg.Bus = &BusConfig{}
	}
	if cfg.Bus.Provider == "" {
		cfg.Bus.Provider = defaultBusProvider
	}
	if cfg.Bus.GroupID == "" {
		cfg.Bus.GroupID = cfg.Env.ServiceName
	}
	if cfg.Bus.Partitions <= 0 {
		cfg.Bus.Partitions = defaultPartitions
	}
	if cfg.Bus.ReplicationFactor <= 0 {
		cfg.Bus.ReplicationFactor = defaultReplication
	}

	if cfg.Consumer == nil {
		cfg.Consumer = &ConsumerConfig{AutoStartup: true, DeadLetter: true}
	}
	if cfg.Consumer.Concurrency <= 0 {
		cfg.Consumer.Concurrency = defaultConcurrency
	}
	if cfg.Consumer.MaxAttempts <= 0 {
		cfg.Consumer.MaxAttempts = defaultConsumerAttempts
	}
	if cfg.Consumer.InitialBackoff <= 0 {
		cfg.Consumer.InitialBackoff = defaultInitialBackoff
	}
	if cfg.Consumer.MaxBackoff <= 0 {
		cfg.Consumer.MaxBackoff = defaultMaxBackoff
	}
	if cfg.Consumer.ConsumeLogSize <= 0 {
		cfg.Consumer.ConsumeLogSize = defaultConsumeLogSize
	}

	if cfg.Outbox == nil {
		cfg.Outbox = &OutboxConfig{}
	}
	if cfg.Outbox.PollInterval <= 0 {
		cfg.Outbox.PollInterval = defaultOutboxPoll
	}
	if cfg.Outbox.BatchSize <= 0 {
		cfg.Outbox.BatchSize = defaultOutboxBatch
	}
	if cfg.Outbox.MaxAttempts <= 0 {
		cfg.Outbox.MaxAttempts = defaultOutboxAttempts
	}
	if cfg.Outbox.Backoff <= 0 {
		cfg.Outbox.Backoff = defaultOutboxBackoff
	}

	if cfg.Distributor == nil {
		cfg.Distributor = &DistributorConfig{ReviewMinPlayTimeMinutes: defaultReviewMinPlayTime}
	}
	if cfg.Distributor.DefaultPrice <= 0 {
		cfg.Distributor.DefaultPrice = defaultPrice
	}

	if cfg.Publisher == nil {
		cfg.Publisher = &PublisherConfig{}
	}
	if cfg.Publisher.NegativeFeedbackEvery <= 0 {
		cfg.Publisher.NegativeFeedbackEvery = defaultNegativeEvery
	}
	if cfg.Publisher.CrashReportEvery <= 0 {
		cfg.Publisher.CrashReportEvery = defaultCrashEvery
	}
	if cfg.Publisher.LowRatingMax <= 0 {
		cfg.Publisher.LowRatingMax = defaultLowRatingMax
	}

	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{}
	}

	if cfg.Shell == nil {
		cfg.Shell = &ShellConfig{}
	}
	if cfg.Shell.Prompt == "" {
		cfg.Shell.Prompt = defaultShellPrompt
	}
}
