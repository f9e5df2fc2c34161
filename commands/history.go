package commands

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"scouting-bot/domain"

	"github.com/olekukonko/tablewriter"
)

// maxReplyLength is the longest message the platform accepts.
const maxReplyLength = 2000

// RenderHistory prints invocations, newest first, as a table inside a code
// block. The oldest rows are dropped until the whole block fits in a message.
func RenderHistory(invocations []domain.Invocation) string {
	for rows := len(invocations); rows > 0; rows-- {
		reply := renderTable(invocations[:rows])
		if utf8.RuneCountInString(reply) <= maxReplyLength {
			return reply
		}
	}
	return renderTable(nil)
}

func renderTable(invocations []domain.Invocation) string {
	var sb strings.Builder
	sb.WriteString("```\n")

	table := tablewriter.NewWriter(&sb)
	table.SetHeader([]string{"When", "Command", "Outcome", "Groups", "Members", "Detail"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	for _, i := range invocations {
		table.Append([]string{
			i.At.Format("2006-01-02 15:04"),
			i.Command,
			string(i.Outcome),
			strconv.Itoa(i.Groups),
			strconv.Itoa(i.Members),
			truncate(i.Detail, 40),
		})
	}
	table.Render()

	sb.WriteString("```")
	return sb.String()
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
