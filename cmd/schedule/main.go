package main

import (
	"bed-scheduler-service/internal/adapters/guestfile"
	"bed-scheduler-service/internal/domain"
	"bed-scheduler-service/internal/services"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// schedule reads a guest file and prints the bed allocation.
//
//	schedule -beds 2 -strategy graph guests.hcl
func main() {
	beds := flag.Int("beds", 1, "number of beds (defaults to the file's beds value, then 1)")
	strategy := flag.String("strategy", services.StrategyGraph, "graph or earliest_finish")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: schedule [-beds N] [-strategy name] <guests.json|guests.hcl>")
		os.Exit(2)
	}

	// Only an explicit -beds overrides the file; negative values are rejected later.
	var bedsFlag *int
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "beds" {
			bedsFlag = beds
		}
	})

	if err := run(os.Stdout, flag.Arg(0), bedsFlag, *strategy); err != nil {
		log.Fatal(err)
	}
}

// run schedules the guests in path; beds is nil when the flag was not given.
func run(out io.Writer, path string, beds *int, strategy string) error {
	f, err := guestfile.Load(path)
	if err != nil {
		return err
	}

	bedCount := 1
	switch {
	case beds != nil:
		bedCount = *beds
	case f.BedCount != nil:
		bedCount = *f.BedCount
	}

	planner, err := services.PlannerByName(strategy)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Solving schedule for %d bed(s) and %d guest(s) strategy=%s\n", bedCount, len(f.Guests), planner.Name())

	alloc, err := services.AllocateBeds(bedCount, f.Guests, planner)
	if err != nil {
		return err
	}

	printAllocation(out, alloc)
	return nil
}

func printAllocation(out io.Writer, alloc *domain.Allocation) {
	for _, b := range alloc.Beds {
		stays := make([]string, 0, len(b.Stays))
		for _, s := range b.Stays {
			stays = append(stays, s.String())
		}
		fmt.Fprintf(out, "bed %d: [%s]\n", b.BedID, strings.Join(stays, " "))
	}

	if len(alloc.Unscheduled) == 0 {
		return
	}

	ids := make([]string, 0, len(alloc.Unscheduled))
	for _, g := range alloc.Unscheduled {
		ids = append(ids, fmt.Sprintf("%d[%d,%d)", g.GuestID, g.Start, g.End))
	}
	fmt.Fprintf(out, "unscheduled: %s\n", strings.Join(ids, " "))
}
