package submat

import (
	"sync"

	"github.com/TuftsBCB/submat/seq"
)

type pool struct {
	wg      *sync.WaitGroup
	rows    chan int
	results chan rowResult
}

type rowResult struct {
	row    int
	scores [seq.AlphaSize]int
}

func newRowWorkers(
	numWorkers int,
	score func(row int) [seq.AlphaSize]int,
) pool {
	rows := make(chan int, numWorkers*2)
	results := make(chan rowResult, numWorkers*2)
	wg := &sync.WaitGroup{}
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for row := range rows {
				results <- rowResult{row, score(row)}
			}
		}()
	}
	return pool{wg, rows, results}
}

// done must be called after the last row is enqueued. The results channel
// is closed once every worker has finished.
func (p pool) done() {
	close(p.rows)
	p.wg.Wait()
	close(p.results)
}

func (p pool) enqueue(row int) {
	p.rows <- row
}
