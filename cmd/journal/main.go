package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	"scouting-bot/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

// journal prints the latest command invocations of a guild.
// The bot has to be stopped: Badger holds an exclusive lock on its directory.
func main() {
	dbPath := flag.String("db", os.Getenv("BADGER_FILEPATH"), "Path to badger DB")
	guild := flag.Uint64("guild", 0, "guild id")
	limit := flag.Int("limit", 50, "maximum number of invocations, 0 for all")
	flag.Parse()

	if *dbPath == "" || *guild == 0 {
		flag.Usage()
		os.Exit(2)
	}

	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithReadOnly(true).WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	invocations, err := repositories.NewInvocationRepository(db, slog.Default()).GetInvocations(*guild, *limit)
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "At", "User", "Command", "Outcome", "Groups", "Members", "Detail"})
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

	for _, i := range invocations {
		table.Append([]string{
			i.ID.String()[:8],
			i.At.Local().Format("2006-01-02 15:04:05"),
			strconv.FormatUint(i.UserID, 10),
			i.Command,
			string(i.Outcome),
			strconv.Itoa(i.Groups),
			strconv.Itoa(i.Members),
			i.Detail,
		})
	}
	table.Render()
	fmt.Printf("%d invocation(s)\n", len(invocations))
}
