package models

// UsageLayout is the enumerated input tree: <root>/<day>/<product>/<task>.
type UsageLayout struct {
	Days []*DayDir
}

type DayDir struct {
	Name     string
	Products []*ProductDir
}

// ProductDir names the product id that every sample under it must carry.
type ProductDir struct {
	Name     string
	TaskKeys []string
}

// StartDate is the first day of the layout, empty when there are no days.
func (l *UsageLayout) StartDate() string {
	if len(l.Days) == 0 {
		return ""
	}
	return l.Days[0].Name
}

// EndDate is the last day of the layout, empty when there are no days.
func (l *UsageLayout) EndDate() string {
	if len(l.Days) == 0 {
		return ""
	}
	return l.Days[len(l.Days)-1].Name
}

// TaskCount is the number of task files across all days.
func (l *UsageLayout) TaskCount() int {
	n := 0
	for _, day := range l.Days {
		for _, product := range day.Products {
			n += len(product.TaskKeys)
		}
	}
	return n
}
