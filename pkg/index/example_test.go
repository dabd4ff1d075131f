package index_test

import (
	"fmt"

	"github.com/matzehuels/wordweb/pkg/index"
	"github.com/matzehuels/wordweb/pkg/triple"
)

func ExampleBuild() {
	idx, err := index.Build([]triple.Triple{
		triple.New("cat-1", "eats-1", "fish-1"),
		triple.New("cat-1", "eats-1", "mouse-1"),
		triple.New("cat-1", "eats-1", "fish-1"),
	})
	if err != nil {
		panic(err)
	}

	for _, s := range idx.Subjects() {
		fmt.Println(s.Label(), "predicates:", s.NumPredicates(), "links:", s.LinkCount())
		for _, p := range s.Predicates() {
			for _, o := range p.Objects() {
				fmt.Println(" ", p.Label(), "->", o.Label())
			}
		}
	}
	// Output:
	// cat-1 predicates: 1 links: 3
	//   eats-1 -> fish-1
	//   eats-1 -> mouse-1
}
