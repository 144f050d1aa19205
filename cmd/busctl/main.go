package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - create-topics: Create every topic and its dead-letter topic on Kafka
// - produce:       Validate and append one event
// - tail:          Print the records of a topic
// - hash-password: Print the bcrypt hash for admin.passwordHash

func main() {
	createTopicsCmd := flag.NewFlagSet("create-topics", flag.ExitOnError)
	produceCmd := flag.NewFlagSet("produce", flag.ExitOnError)
	tailCmd := flag.NewFlagSet("tail", flag.ExitOnError)
	hashPasswordCmd := flag.NewFlagSet("hash-password", flag.ExitOnError)

	// create-topics parameters
	createBrokers := createTopicsCmd.String("brokers", "localhost:9092", "Comma separated Kafka brokers")
	createPartitions := createTopicsCmd.Int("partitions", 3, "Partitions per topic")
	createReplication := createTopicsCmd.Int("replication-factor", 1, "Replication factor per topic")

	// produce parameters
	produceBrokers := produceCmd.String("brokers", "localhost:9092", "Comma separated Kafka brokers")
	produceTopic := produceCmd.String("topic", "", "Topic to append to")
	produceKey := produceCmd.String("key", "", "Record key (random when empty)")
	producePayload := produceCmd.String("payload", "", "JSON payload of the event")

	// tail parameters
	tailBrokers := tailCmd.String("brokers", "localhost:9092", "Comma separated Kafka brokers")
	tailTopic := tailCmd.String("topic", "", "Topic to read")
	tailGroup := tailCmd.String("group", "busctl", "Consumer group")
	tailLimit := tailCmd.Int("limit", 0, "Stop after this many records (0 reads until interrupted)")

	// hash-password parameters
	hashCost := hashPasswordCmd.Int("cost", 0, "bcrypt cost (default cost when 0)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := busctlFlags{
		CreateTopics: createTopicsFlags{
			cmd:               createTopicsCmd,
			brokers:           createBrokers,
			partitions:        createPartitions,
			replicationFactor: createReplication,
		},
		Produce: produceFlags{
			cmd:     produceCmd,
			brokers: produceBrokers,
			topic:   produceTopic,
			key:     produceKey,
			payload: producePayload,
		},
		Tail: tailFlags{
			cmd:     tailCmd,
			brokers: tailBrokers,
			topic:   tailTopic,
			group:   tailGroup,
			limit:   tailLimit,
		},
		HashPassword: hashPasswordFlags{
			cmd:  hashPasswordCmd,
			cost: hashCost,
		},
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if err := runSubcommand(ctx, &flags, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type busctlFlags struct {
	CreateTopics createTopicsFlags
	Produce      produceFlags
	Tail         tailFlags
	HashPassword hashPasswordFlags
}

type createTopicsFlags struct {
	cmd               *flag.FlagSet
	brokers           *string
	partitions        *int
	replicationFactor *int
}

type produceFlags struct {
	cmd     *flag.FlagSet
	brokers *string
	topic   *string
	key     *string
	payload *string
}

type tailFlags struct {
	cmd     *flag.FlagSet
	brokers *string
	topic   *string
	group   *string
	limit   *int
}

type hashPasswordFlags struct {
	cmd  *flag.FlagSet
	cost *int
}

func runSubcommand(ctx context.Context, flags *busctlFlags, logger *slog.Logger) error {
	switch os.Args[1] {
	case "create-topics":
		return handleCreateTopics(ctx, flags, logger)
	case "produce":
		return handleProduce(ctx, flags, logger)
	case "tail":
		return handleTail(ctx, flags, logger)
	case "hash-password":
		return handleHashPassword(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleCreateTopics(ctx context.Context, flags *busctlFlags, logger *slog.Logger) error {
	f := flags.CreateTopics
	if err := f.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse create-topics flags")
	}

	return runCreateTopics(ctx, splitBrokers(*f.brokers), *f.partitions, *f.replicationFactor, os.Stdout, logger)
}

func handleProduce(ctx context.Context, flags *busctlFlags, logger *slog.Logger) error {
	f := flags.Produce
	if err := f.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse produce flags")
	}
	if *f.topic == "" {
		return errors.New("--topic flag is required for produce command")
	}

	msgBus, err := newKafkaBus(splitBrokers(*f.brokers), logger)
	if err != nil {
		return err
	}
	defer msgBus.Close()

	return runProduce(ctx, msgBus, *f.topic, *f.key, *f.payload, os.Stdout)
}

func handleTail(ctx context.Context, flags *busctlFlags, logger *slog.Logger) error {
	f := flags.Tail
	if err := f.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse tail flags")
	}
	if *f.topic == "" {
		return errors.New("--topic flag is required for tail command")
	}

	msgBus, err := newKafkaBus(splitBrokers(*f.brokers), logger)
	if err != nil {
		return err
	}
	defer msgBus.Close()

	return runTail(ctx, msgBus, *f.topic, *f.group, *f.limit, os.Stdout)
}

func handleHashPassword(flags *busctlFlags) error {
	f := flags.HashPassword
	if err := f.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse hash-password flags")
	}

	return runHashPassword(os.Stdin, os.Stdout, *f.cost)
}

func splitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}

	return brokers
}

func printUsage() {
	fmt.Println("Usage: busctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  create-topics   Create every topic and its dead-letter topic on Kafka")
	fmt.Println("  produce         Validate and append one event")
	fmt.Println("  tail            Print the records of a topic")
	fmt.Println("  hash-password   Read a password on stdin and print its bcrypt hash")
	fmt.Println("")
	fmt.Println("Use 'busctl <command> -h' for more information about a command.")
}
