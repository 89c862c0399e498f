// guestcheck validates a guest list CSV and prints a per-table summary.
// Useful for checking a fresh export from the planner's spreadsheet before
// pointing the server at it.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/usherapp/usher-server/internal/directory"
	"github.com/usherapp/usher-server/internal/domain"
	"github.com/usherapp/usher-server/internal/ingest"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: guestcheck <guests.csv>")
		os.Exit(2)
	}
	path := os.Args[1]

	content, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", path, err)
	}

	rows, err := ingest.Parse(content)
	if err != nil {
		log.Fatalf("CSV rejected: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	dir := directory.NewBuilder(logger).Build(rows)

	guests := dir.Guests()
	tables := dir.Tables()

	fmt.Println("=== Guest List Inspection ===")
	fmt.Println()
	fmt.Printf("File:   %s\n", path)
	fmt.Printf("Rows:   %d\n", len(rows))
	fmt.Printf("Guests: %d\n", len(guests))
	fmt.Printf("Tables: %d\n", len(tables))
	if skipped := len(rows) - len(guests); skipped > 0 {
		fmt.Printf("Skipped malformed rows: %d\n", skipped)
	}
	fmt.Println()

	bride, groom := 0, 0
	for _, g := range guests {
		if g.Side == domain.SideGroom {
			groom++
		} else {
			bride++
		}
	}
	fmt.Printf("Bride side: %d, Groom side: %d\n", bride, groom)
	fmt.Println()

	for _, table := range tables {
		label := table.Name
		if table.ID == domain.VIPTableID {
			label = label + " (VIP)"
		}
		fmt.Printf("Table %d  %-24s %d guests\n", table.ID, label, len(table.Guests))
		for _, g := range table.Guests {
			seat := "-"
			if g.Seat != nil {
				seat = fmt.Sprintf("%d", *g.Seat)
			}
			fmt.Printf("    %-32s seat %-3s %s\n", g.Name, seat, g.Side)
		}
	}
}
