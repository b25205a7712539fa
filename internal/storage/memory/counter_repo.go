package memory

import "context"

type counterRepo struct {
	s *Store
}

func (r *counterRepo) GetNextValue(_ context.Context, companyID string, counterType string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := companyID + ":" + counterType
	r.s.counters[key]++
	return r.s.counters[key], nil
}
