package pipeline

// RunStats tracks aggregate counters for one manifest run.
type RunStats struct {
	Images     int // records across all scanned splits
	Skipped    int // non-image files ignored
	Unreadable int // directories or entries that could not be read
	Suspect    int // --verify content mismatches
	Train      int // proposals kept in train
	Val        int // proposals moved to val
	Written    []string
}

// ValShare returns the fraction of train-split images proposed for val.
func (s *RunStats) ValShare() float64 {
	if s.Train+s.Val == 0 {
		return 0
	}
	return float64(s.Val) / float64(s.Train+s.Val)
}
