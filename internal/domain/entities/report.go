package entities

// Report is the outcome of one dataset check.
type Report struct {
	Total          int      // number of surah records in the dataset
	MissingContent []string // labels of surahs without text, in dataset order
	Juz            []Juz    // distinct juz identifiers, sorted
}

// AllHaveContent reports whether no surah is missing text.
func (r *Report) AllHaveContent() bool {
	return len(r.MissingContent) == 0
}

// MissingSample returns at most n labels from MissingContent.
func (r *Report) MissingSample(n int) []string {
	if n < 0 || n >= len(r.MissingContent) {
		return r.MissingContent
	}
	return r.MissingContent[:n]
}
