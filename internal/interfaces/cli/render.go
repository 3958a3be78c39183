package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/masykur/fpldraft/internal/domain/player"
	"github.com/masykur/fpldraft/internal/usecase"
)

func renderPlayers(out io.Writer, players []player.Player) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  \tPLAYER\tTEAM\tPROJ\tTIER")
	for i, p := range players {
		fmt.Fprintf(tw, "%d.\t%s\t%s\t%.1f\t%d\n", i+1, p.Name, p.Team, p.ProjectedPoints, p.Tier)
	}
	tw.Flush()
}

func renderComparison(out io.Writer, cmp usecase.Comparison) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PLAYER\tTEAM\tPOS\tPROJ\tLEFT AT POS\tTAKEN")
	for _, entry := range []usecase.CompareEntry{cmp.A, cmp.B} {
		taken := ""
		if entry.Taken {
			taken = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\t%d\t%s\n",
			entry.Player.Name, entry.Player.Team, entry.Player.Position,
			entry.Player.ProjectedPoints, entry.AvailableAtPosition, taken)
	}
	tw.Flush()
	fmt.Fprintf(out, "Pick: %s (%s)\n", cmp.Recommended.Name, cmp.Reason)
}

func renderStatus(out io.Writer, st usecase.StatusReport) {
	fmt.Fprintf(out, "Round %d, pick %d overall. You pick %d of %d, %d picks until yours.\n",
		st.Round, st.NextPick, st.DraftPosition, st.TotalTeams, st.PicksUntilMine)
	fmt.Fprintf(out, "Players off the board: %d. Your roster: %d/%d.\n",
		st.TakenCount, st.RosterTotal, st.RosterSize)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SLOT\tFILLED\tPLAYERS")
	for _, slot := range st.Slots {
		names := make([]string, 0, len(slot.Players))
		for _, p := range slot.Players {
			names = append(names, p.Name)
		}
		mark := ""
		if slot.Complete() {
			mark = " *"
		}
		fmt.Fprintf(tw, "%s\t%d/%d%s\t%s\n", slot.Slot, slot.Count, slot.Capacity, mark, strings.Join(names, ", "))
	}
	tw.Flush()
}

func renderSearchResults(out io.Writer, results []usecase.SearchResult) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PLAYER\tTEAM\tPOS\tPROJ\tSTATUS")
	for _, r := range results {
		status := "available"
		if r.Taken {
			status = "TAKEN"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\t%s\n",
			r.Player.Name, r.Player.Team, r.Player.Position, r.Player.ProjectedPoints, status)
	}
	tw.Flush()
}

func renderStrategy(out io.Writer, strat usecase.Strategy) {
	fmt.Fprintf(out, "Round %d strategy (%d picks until yours):\n", strat.Round, strat.PicksUntilMine)
	for _, line := range strat.Advice {
		fmt.Fprintf(out, "  - %s\n", line)
	}
	if len(strat.Needs) == 0 {
		fmt.Fprintln(out, "Starting slots are filled; draft for your bench.")
		return
	}
	fmt.Fprintf(out, "Still needed: %s\n", strings.Join(strat.Needs, ", "))
}
