package pqueue_test

import (
	"fmt"

	"github.com/katalvlaran/fognav/pqueue"
)

// ExampleQueue orders posts by descending score.
func ExampleQueue() {
	type post struct {
		id    string
		likes int
	}
	q := pqueue.New[post](2, func(a, b post) bool { return a.likes > b.likes })
	q.Add(post{"p1", 3})
	q.Add(post{"p2", 10})
	q.Add(post{"p3", 7})

	for !q.IsEmpty() {
		p, _ := q.Poll()
		fmt.Println(p.id, p.likes)
	}

	// Output:
	// p2 10
	// p3 7
	// p1 3
}
