package mapio_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/fognav/mapio"
	"github.com/katalvlaran/fognav/mission"
)

// Example_pipeline parses the three input files and writes the event log.
func Example_pipeline() {
	nodes := "4 1\n0 0 0\n1 0 0\n2 0 0\n3 0 0\n"
	edges := "0-0,1-0 1\n1-0,2-0 1\n2-0,3-0 1\n"
	objectives := "5\n0 0\n3 0\n"

	gr, err := mapio.ReadGrid(strings.NewReader(nodes))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err = mapio.ReadEdges(strings.NewReader(edges), gr); err != nil {
		fmt.Println("error:", err)
		return
	}
	m, err := mapio.ReadMission(strings.NewReader(objectives))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	out := mapio.NewEventWriter(os.Stdout)
	ex, err := mission.NewExecutor(gr, m, mission.WithSink(out.Write))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err = ex.Run(context.Background()); err != nil {
		fmt.Println("error:", err)
	}
	_ = out.Flush()
	// Output:
	// Moving to 1-0
	// Moving to 2-0
	// Moving to 3-0
	// Objective 1 reached!
}
