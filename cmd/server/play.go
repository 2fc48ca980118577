package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/spf13/cobra"

	"github.com/firetop/gamebook-api/internal/config"
	"github.com/firetop/gamebook-api/internal/dataset"
	"github.com/firetop/gamebook-api/internal/dice"
	"github.com/firetop/gamebook-api/internal/notify"
	"github.com/firetop/gamebook-api/internal/orchestrators/game"
	redisclient "github.com/firetop/gamebook-api/internal/redis"
	"github.com/firetop/gamebook-api/internal/repositories/player"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the adventure in the terminal",
	Long:  `Run the full engine locally against an embedded store and play through the adventure on stdin/stdout.`,
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setupLogger("warn")

	ds, err := dataset.Load(&dataset.Config{
		StoryPath: cfg.StoryPath,
		TextsPath: cfg.TextsPath,
	})
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	// An embedded store keeps the play mode self-contained; nothing
	// survives the process.
	mr, err := miniredis.Run()
	if err != nil {
		return fmt.Errorf("failed to start embedded store: %w", err)
	}
	defer mr.Close()

	client, err := redisclient.NewClient(mr.Addr(), nil)
	if err != nil {
		return err
	}

	repo, err := player.NewRedis(&player.RedisConfig{Client: client})
	if err != nil {
		return err
	}

	sink := &terminalSink{out: os.Stdout}

	svc, err := game.NewOrchestrator(&game.Config{
		PlayerRepo: repo,
		Dataset:    ds,
		Sink:       sink,
		Roller:     dice.NewToolkitRoller(),
	})
	if err != nil {
		return err
	}

	const playerID = "terminal"
	ctx := cmd.Context()

	if _, err := svc.ShowMenu(ctx, &game.ShowMenuInput{PlayerID: playerID}); err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}

		action := line
		if n, err := strconv.Atoi(line); err == nil {
			choice, ok := sink.choice(n)
			if !ok {
				fmt.Println("Sem opção com esse número.")
				continue
			}
			action = choice
		}

		if _, err := svc.HandleAction(ctx, &game.HandleActionInput{
			PlayerID: playerID,
			Action:   action,
		}); err != nil {
			fmt.Printf("erro: %v\n", err)
		}
	}
}

// terminalSink renders game output to stdout and keeps the latest
// choice list so the player can answer with a number.
type terminalSink struct {
	out *os.File

	mu      sync.Mutex
	seq     int
	choices []notify.Choice
}

func (t *terminalSink) Render(_ context.Context, _ string, msg *notify.Message) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, msg.Text)
	if len(msg.Choices) > 0 {
		t.choices = msg.Choices
		for i, c := range msg.Choices {
			fmt.Fprintf(t.out, "  [%d] %s\n", i+1, c.Text)
		}
	}

	t.seq++
	return "term_" + strconv.Itoa(t.seq), nil
}

// ClearChoices is a no-op: a terminal cannot edit what it already
// printed
func (t *terminalSink) ClearChoices(_ context.Context, _, _ string) error {
	return nil
}

func (t *terminalSink) choice(n int) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n < 1 || n > len(t.choices) {
		return "", false
	}
	return t.choices[n-1].Action, true
}

var _ notify.Sink = (*terminalSink)(nil)
