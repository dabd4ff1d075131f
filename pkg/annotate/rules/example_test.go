package rules_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/wordweb/pkg/annotate"
	"github.com/matzehuels/wordweb/pkg/annotate/rules"
)

func ExampleAnnotator_Annotate() {
	a := rules.New(rules.Options{})
	sentences, _ := a.Annotate(context.Background(), "The cat sat on the mat. The cat chased a mouse.")
	for _, t := range annotate.Triples(sentences) {
		fmt.Println(t)
	}
	// Output:
	// (cat-2, sat-3 on-4, mat-6)
	// (cat-2, chased-3, mouse-5)
}
