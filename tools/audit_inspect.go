package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"chat-hub/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

// Dumps the most recent audit entries as a table. Opens the badger
// directory read-only, so it can run while the server holds the lock.
func main() {
	dbPath := flag.String("db", "./audit", "Path to the badger audit directory")
	limit := flag.Int("limit", 50, "Maximum number of entries to show")
	flag.Parse()

	opts := badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	repository := repositories.NewAuditRepository(db, slog.Default())
	entries, err := repository.Recent(*limit)
	if err != nil {
		log.Fatal("Error while reading audit log: ", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Time", "Conn", "Event", "Room", "Text"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, entry := range entries {
		conn := string(entry.Conn)
		if len(conn) > 8 {
			conn = conn[:8]
		}
		text := entry.Text
		if len(text) > 60 {
			text = text[:57] + "..."
		}
		table.Append([]string{
			entry.At.Format("15:04:05"),
			conn,
			entry.Event,
			entry.Room,
			text,
		})
	}

	table.Render()
	fmt.Printf("\n%d entries\n", len(entries))
}
