package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/masykur/fpldraft/internal/app"
	"github.com/masykur/fpldraft/internal/config"
	"github.com/masykur/fpldraft/internal/domain/draft"
	"github.com/masykur/fpldraft/internal/domain/player"
	"github.com/masykur/fpldraft/internal/platform/logging"
	"github.com/masykur/fpldraft/internal/usecase"
)

var liveSeason string

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Run the interactive draft-day tracker",
	Long: `live starts a command loop for tracking a snake draft in real time:
mark players taken as they leave the board, record your own picks, and ask
for suggestions, comparisons and round strategy between picks.`,
	Args: cobra.NoArgs,
	RunE: runLive,
}

func init() {
	liveCmd.Flags().StringVar(&liveSeason, "season", "2023-2024", "season used for live player data")
	rootCmd.AddCommand(liveCmd)
}

func runLive(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer logger.Sync()
	logging.SetDefault(logger)

	tracker, source, err := app.BuildTracker(cmd.Context(), cfg, app.NewStatsClient(cfg, logger), liveSeason, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	rules := tracker.Rules()
	fmt.Fprintf(out, "Live draft tracker ready (%s player data).\n", source)
	fmt.Fprintf(out, "You pick %d of %d. Type 'help' for commands.\n\n", rules.DraftPosition, rules.TotalTeams)

	return runLoop(cmd.Context(), tracker, cmd.InOrStdin(), out)
}

// session bundles the state one command loop operates on.
type session struct {
	tracker *usecase.TrackerService
	out     io.Writer
}

// handlerFunc is the uniform signature every verb handler implements. A
// returned error is printed as a single line and the loop continues.
type handlerFunc func(ctx context.Context, s *session, args string) error

func dispatchTable() map[string]handlerFunc {
	return map[string]handlerFunc{
		"add":      handleAdd,
		"suggest":  handleSuggest,
		"compare":  handleCompare,
		"strategy": handleStrategy,
		"status":   handleStatus,
		"search":   handleSearch,
		"myroster": handleMyRoster,
		"help":     handleHelp,
	}
}

// runLoop reads one command per line until quit/exit or end of input.
// Nothing inside the loop is fatal.
func runLoop(ctx context.Context, tracker *usecase.TrackerService, in io.Reader, out io.Writer) error {
	s := &session{tracker: tracker, out: out}
	table := dispatchTable()
	scanner := bufio.NewScanner(in)

	for {
		st := tracker.Status()
		fmt.Fprintf(out, "[R%d|%d until you] > ", st.Round, st.PicksUntilMine)

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		verb, args := splitCommand(scanner.Text())
		switch verb {
		case "":
			continue
		case "quit", "exit":
			fmt.Fprintln(out, "Good luck with your draft!")
			return nil
		}

		handler, ok := table[verb]
		if !ok {
			fmt.Fprintln(out, "Unknown command. Type 'help' for available commands.")
			continue
		}
		if err := handler(ctx, s, args); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
	}
}

// splitCommand separates the verb from its argument string. The verb is
// case-insensitive, the arguments keep their original casing.
func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}

	verb, args, _ := strings.Cut(line, " ")
	return strings.ToLower(verb), strings.TrimSpace(args)
}

func handleAdd(ctx context.Context, s *session, args string) error {
	if args == "" {
		return fmt.Errorf("usage: add <player name>")
	}

	res, err := s.tracker.MarkTaken(ctx, args)
	if err != nil {
		return err
	}

	if res.AlreadyTaken {
		fmt.Fprintf(s.out, "%s was already marked taken.\n", res.Player.Name)
	} else {
		fmt.Fprintf(s.out, "%s (%s, %s) marked as taken.\n", res.Player.Name, res.Player.Position, res.Player.Team)
	}
	fmt.Fprintf(s.out, "Round %d, pick %d is next, %d until yours.\n", res.Round, res.NextPick, res.PicksUntilMine)
	return nil
}

func handleSuggest(ctx context.Context, s *session, args string) error {
	pos, err := player.ParsePosition(args)
	if err != nil {
		return fmt.Errorf("usage: suggest GK|DF|MF|FW")
	}

	players, err := s.tracker.Suggest(ctx, pos, 0)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Best available %s:\n", pos)
	renderPlayers(s.out, players)
	return nil
}

func handleCompare(ctx context.Context, s *session, args string) error {
	first, second, ok := strings.Cut(args, ",")
	first, second = strings.TrimSpace(first), strings.TrimSpace(second)
	if !ok || first == "" || second == "" || strings.Contains(second, ",") {
		return fmt.Errorf("usage: compare <player1>, <player2>")
	}

	cmp, err := s.tracker.Compare(ctx, first, second)
	if err != nil {
		return err
	}

	renderComparison(s.out, cmp)
	return nil
}

func handleStrategy(_ context.Context, s *session, _ string) error {
	renderStrategy(s.out, s.tracker.Strategy())
	return nil
}

func handleStatus(_ context.Context, s *session, _ string) error {
	renderStatus(s.out, s.tracker.Status())
	return nil
}

func handleSearch(ctx context.Context, s *session, args string) error {
	if args == "" {
		return fmt.Errorf("usage: search <name fragment>")
	}

	results, err := s.tracker.Search(ctx, args)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintf(s.out, "No matches for %q.\n", args)
		return nil
	}

	renderSearchResults(s.out, results)
	return nil
}

func handleMyRoster(ctx context.Context, s *session, args string) error {
	fields := strings.Fields(args)
	if len(fields) < 2 {
		return fmt.Errorf("usage: myroster <player name> <GK|DF|MF|FW|BENCH>")
	}

	slot, err := draft.ParseSlot(fields[len(fields)-1])
	if err != nil {
		return fmt.Errorf("usage: myroster <player name> <GK|DF|MF|FW|BENCH>")
	}
	name := strings.Join(fields[:len(fields)-1], " ")

	p, err := s.tracker.AddToRoster(ctx, name, slot)
	if err != nil {
		return err
	}

	st := s.tracker.Status()
	fmt.Fprintf(s.out, "%s added to your %s slot.\n", p.Name, slot)
	fmt.Fprintf(s.out, "Roster: %d/%d filled.\n", st.RosterTotal, st.RosterSize)
	return nil
}

func handleHelp(_ context.Context, s *session, _ string) error {
	fmt.Fprint(s.out, `Commands:
  add <player name>              mark a player taken by any team
  suggest <GK|DF|MF|FW>          best available players at a position
  compare <player1>, <player2>   head-to-head pick recommendation
  strategy                       advice and needs for the current round
  status                         draft board and roster overview
  search <name fragment>         find players by partial name
  myroster <player> <slot>       record your own pick (GK/DF/MF/FW/BENCH)
  help                           this table
  quit                           leave the tracker
`)
	return nil
}
