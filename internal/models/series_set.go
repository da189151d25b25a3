package models

// MemberSeries is the accumulated series of one cloudpak member together with the ratio it
// declared.
type MemberSeries struct {
	Ratio  Ratio
	Points TimeSeries
}

// SeriesSet holds everything accumulated for one scope (a task file, a product directory
// or a whole day). Standalone products and cloudpak members never share an entry.
//
// A SeriesSet is built once by its producer and treated as read-only afterwards; combining
// scopes goes through Merge, which allocates a new set.
type SeriesSet struct {
	Standalone map[ProductKey]TimeSeries
	Members    map[CloudpakMemberKey]*MemberSeries
}

func NewSeriesSet() *SeriesSet {
	return &SeriesSet{
		Standalone: make(map[ProductKey]TimeSeries),
		Members:    make(map[CloudpakMemberKey]*MemberSeries),
	}
}

// AddSample accumulates one validated sample. Only the producer of the set may call it.
func (s *SeriesSet) AddSample(sample *UsageSample) {
	if !sample.IsCloudpakMember() {
		key := sample.ProductKey()
		series, ok := s.Standalone[key]
		if !ok {
			series = make(TimeSeries)
			s.Standalone[key] = series
		}
		series.Add(sample.Timestamp, sample.VCPU)
		return
	}

	key := sample.CloudpakMemberKey()
	member, ok := s.Members[key]
	if !ok {
		member = &MemberSeries{Ratio: sample.Cloudpak.Ratio, Points: make(TimeSeries)}
		s.Members[key] = member
	}
	member.Points.Add(sample.Timestamp, sample.VCPU)
}

// Len is the number of distinct keys in the set.
func (s *SeriesSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Standalone) + len(s.Members)
}

// Merge returns a new set holding the point-wise sum of s and others. None of the inputs are
// modified; nil sets are ignored.
func (s *SeriesSet) Merge(others ...*SeriesSet) *SeriesSet {
	out := NewSeriesSet()
	for _, set := range append([]*SeriesSet{s}, others...) {
		if set == nil {
			continue
		}
		for key, series := range set.Standalone {
			if cur, ok := out.Standalone[key]; ok {
				cur.AddSeries(series)
				continue
			}
			out.Standalone[key] = series.Clone()
		}
		for key, member := range set.Members {
			if cur, ok := out.Members[key]; ok {
				cur.Points.AddSeries(member.Points)
				continue
			}
			out.Members[key] = &MemberSeries{Ratio: member.Ratio, Points: member.Points.Clone()}
		}
	}
	return out
}
