package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"scouting-bot/domain"
	"scouting-bot/exclusion"
	"scouting-bot/naming"
	"scouting-bot/partition"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// planner previews a distribution offline: members are numbered 1..n, so
// "<@3>" excludes the third one.
func main() {
	members := flag.Int("members", 10, "number of members in the voice channel")
	size := flag.Int("size", 3, "group size")
	overflow := flag.String("overflow", "newgroup", "overflow handling: newgroup, spread or error")
	template := flag.String("template", "Group-{0}", "group name template")
	exclude := flag.String("exclude", "", "comma separated mentions to leave out")
	seed := flag.Uint64("seed", 0, "random seed, 0 picks one")
	colours := flag.Bool("colours", true, "colour the output")
	flag.Parse()

	opts := options{
		Members:  *members,
		Size:     *size,
		Overflow: *overflow,
		Template: *template,
		Exclude:  splitTokens(*exclude),
		Seed:     *seed,
		Colours:  *colours,
	}
	if err := plan(opts, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, color.Red.Render("planning failed: "+err.Error()))
		os.Exit(1)
	}
}

type options struct {
	Members  int
	Size     int
	Overflow string
	Template string
	Exclude  []string
	Seed     uint64
	Colours  bool
}

func plan(opts options, out io.Writer) error {
	template, err := naming.NewTemplate(opts.Template)
	if err != nil {
		return err
	}
	policy, err := domain.ParseOverflowPolicy(opts.Overflow)
	if err != nil {
		return err
	}

	population := make([]domain.Member, 0, opts.Members)
	for i := 1; i <= opts.Members; i++ {
		population = append(population, domain.NewMember(domain.MemberID(i), fmt.Sprintf("member-%02d", i)))
	}
	population, err = exclusion.Filter(opts.Exclude, population)
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if opts.Seed == 0 {
		if rng, err = partition.NewRand(); err != nil {
			return err
		}
	} else {
		rng = rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	}

	result, err := partition.Partition(population, opts.Size, policy, rng)
	if err != nil {
		return err
	}

	header := fmt.Sprintf("%d members in %d groups (%s)", result.MemberCount, result.GroupCount, policy)
	if opts.Colours {
		header = color.New(color.FgGreen, color.OpBold).Render(header)
	}
	fmt.Fprintln(out, header)

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Group", "Size", "Members"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, number := range result.Numbers() {
		group := result.Groups[number]
		names := make([]string, 0, len(group))
		for _, m := range group {
			names = append(names, m.DisplayName)
		}
		table.Append([]string{template.Format(number), strconv.Itoa(len(group)), strings.Join(names, ", ")})
	}
	table.Render()
	return nil
}

func splitTokens(raw string) []string {
	var tokens []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
