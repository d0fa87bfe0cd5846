package world_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/waypoint/pkg/world"
)

func ExampleWorld_Walk() {
	w := world.New("village")
	_ = w.AddLocation(world.Location{Name: "gate"})
	_ = w.AddLocation(world.Location{Name: "market"})
	_ = w.AddLocation(world.Location{Name: "temple"})
	_ = w.Link("gate", world.North, "market")
	_ = w.Link("market", world.East, "temple")

	route, _ := w.Walk("gate", world.North, world.East)
	fmt.Println(strings.Join(route, " -> "))

	_, err := w.Walk("temple", world.East)
	fmt.Println(err)
	// Output:
	// gate -> market -> temple
	// DEAD_END: step 1: there is no way east from temple: iterator reached end
}

func ExampleDecode() {
	doc := `
name = "cabin"
start = "porch"

[[location]]
name = "porch"

[[location]]
name = "kitchen"

[[path]]
from = "porch"
direction = "north"
to = "kitchen"
`
	w, err := world.Decode(strings.NewReader(doc))
	if err != nil {
		fmt.Println(err)
		return
	}
	exits, _ := w.Exits("kitchen")
	for _, e := range exits {
		fmt.Printf("%s: %s\n", e.Direction, e.To)
	}
	// Output:
	// south: porch
}
