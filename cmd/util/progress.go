package util

// Progress reports the number of completed jobs while they run. Errors are
// always printed, but the running count is only shown with the "verbose"
// flag.
type Progress struct {
	errs chan error
	done chan int
}

func NewProgress(total int) Progress {
	p := Progress{make(chan error), make(chan int)}
	go func() {
		completed := 0
		errorCount := 0
		for err := range p.errs {
			if err == nil {
				completed += 1
			} else {
				errorCount += 1
				if FlagVerbose {
					Warnf("\r%s                                    \n", err)
				} else {
					Warnf("%s", err)
				}
			}

			ratio := 100.0 * (float64(completed) / float64(total))
			Verbosef("\r%d of %d jobs complete (%0.2f%% done, %d errors)",
				completed, total, ratio, errorCount)
		}
		Verbosef("\n")
		p.done <- errorCount
	}()
	return p
}

func (p Progress) JobDone(err error) {
	p.errs <- err
}

// Close waits for every reported job to be printed and returns the number
// of jobs that failed.
func (p Progress) Close() int {
	close(p.errs)
	return <-p.done
}
