package materialize_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/wordweb/pkg/graph"
	"github.com/matzehuels/wordweb/pkg/index"
	"github.com/matzehuels/wordweb/pkg/materialize"
	"github.com/matzehuels/wordweb/pkg/triple"
)

func ExampleMaterialize() {
	idx, _ := index.Build([]triple.Triple{
		triple.New("cat-1", "eats-1", "fish-1"),
		triple.New("cat-1", "eats-1", "mouse-1"),
	})

	g := graph.New("Word Web", graph.DefaultOptions())
	res, err := materialize.Materialize(context.Background(), idx, g, materialize.Options{})
	if err != nil {
		panic(err)
	}

	fmt.Println("nodes:", res.Nodes, "edges:", res.Edges)
	for _, n := range g.Nodes() {
		fmt.Printf("%s %q %s\n", n.ID, n.Label(), n.Style())
	}
	for _, e := range g.Edges() {
		fmt.Printf("%s: %s -[%s]-> %s\n", e.ID, e.From, e.Label(), e.To)
	}
	// Output:
	// nodes: 3 edges: 2
	// cat-1 "cat" fill-color: rgb(255,0,0);
	// fish-1 "fish"
	// mouse-1 "mouse"
	// 1: cat-1 -[eats]-> fish-1
	// 2: cat-1 -[eats]-> mouse-1
}
