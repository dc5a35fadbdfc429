package universe

import (
	"sort"

	"WealthPlanner/internal/model"
)

// Store holds the cleaned, tagged fund universe for one session. Records are
// immutable after construction.
type Store struct {
	records []model.FundRecord
	byCode  map[string]model.FundRecord
}

// NewStore indexes the given records by code.
func NewStore(records []model.FundRecord) *Store {
	byCode := make(map[string]model.FundRecord, len(records))
	for _, r := range records {
		byCode[r.Code] = r
	}
	return &Store{records: records, byCode: byCode}
}

// Len returns the number of funds in the universe.
func (s *Store) Len() int { return len(s.records) }

// Get looks up a fund by code.
func (s *Store) Get(code string) (model.FundRecord, bool) {
	r, ok := s.byCode[code]
	return r, ok
}

// All returns a copy of every record, in load order.
func (s *Store) All() []model.FundRecord {
	out := make([]model.FundRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Select returns the records matching filter, ordered by less. The result may
// be empty; callers handle short candidate lists.
func (s *Store) Select(filter func(model.FundRecord) bool, less func(a, b model.FundRecord) bool) []model.FundRecord {
	var out []model.FundRecord
	for _, r := range s.records {
		if filter(r) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
