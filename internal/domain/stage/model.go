package stage

import "sort"

// Stage is a labeled phase of a season's schedule: a knockout round
// ("1/4 финала") or a numbered tour ("Тур 5"). Names come from a legacy
// CMS and are free text in up to three languages.
type Stage struct {
	ID          int64
	SeasonID    int64
	Name        string
	NameKZ      string
	NameEN      string
	StageNumber *int
	SortOrder   int
}

// SortSchedule orders stages by (sort_order, id), the schedule display order.
func SortSchedule(stages []Stage) {
	sort.SliceStable(stages, func(i, j int) bool {
		if stages[i].SortOrder != stages[j].SortOrder {
			return stages[i].SortOrder < stages[j].SortOrder
		}
		return stages[i].ID < stages[j].ID
	})
}
