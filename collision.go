// Package prism is a narrow-phase collision library for oriented boxes.
//
// The heavy lifting lives in the sat and obb subpackages; this package adds
// the batch entry points a physics loop typically wants: feed it the pairs
// your broad phase selected, get back the colliding ones with their contact
// data. Pair selection itself (spatial grids, sweep and prune, ...) is the
// caller's business.
package prism

import (
	"sync"

	"github.com/akmonengine/prism/obb"
	"github.com/akmonengine/prism/sat"
)

const DEFAULT_WORKERS = 1

// Pair is a candidate pair of boxes, typically produced by a broad phase.
type Pair struct {
	A obb.OBB
	B obb.OBB
}

// Contact is a colliding pair together with its narrow-phase result.
type Contact struct {
	Pair
	sat.Result
}

// NarrowPhase runs SAT queries over a stream of candidate pairs and emits
// only the colliding ones. The returned channel is closed once the input
// channel is drained. Queries are pure, so the workers share nothing; emit
// order is whatever the workers produce.
func NarrowPhase(pairs <-chan Pair, workersCount int) <-chan Contact {
	workersCount = max(DEFAULT_WORKERS, workersCount)
	contacts := make(chan Contact, workersCount)

	go func() {
		var wg sync.WaitGroup
		defer close(contacts)

		for i := 0; i < workersCount; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				for pair := range pairs {
					if result, ok := sat.Intersect(pair.A, pair.B); ok {
						contacts <- Contact{Pair: pair, Result: result}
					}
				}
			}()
		}
		wg.Wait()
	}()

	return contacts
}

// DetectPairs is the slice convenience over NarrowPhase's streaming form:
// it tests every pair in parallel and returns the colliding ones in input
// order.
func DetectPairs(pairs []Pair, workersCount int) []Contact {
	workersCount = max(DEFAULT_WORKERS, workersCount)

	results := make([]*Contact, len(pairs))
	task(workersCount, pairs, func(i int, pair Pair) {
		if result, ok := sat.Intersect(pair.A, pair.B); ok {
			results[i] = &Contact{Pair: pair, Result: result}
		}
	})

	contacts := make([]Contact, 0, len(pairs))
	for _, c := range results {
		if c != nil {
			contacts = append(contacts, *c)
		}
	}
	return contacts
}
