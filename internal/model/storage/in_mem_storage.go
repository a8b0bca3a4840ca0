package storage

import (
	"sort"

	"max.ks1230/bill-tracker/internal/entity/bill"
)

// InMemStorage keeps bill histories for the lifetime of the process.
// A name present in the map always has at least one amount.
type InMemStorage struct {
	billMap map[string][]float64
}

func NewInMemStorage() *InMemStorage {
	s := make(map[string][]float64)
	return &InMemStorage{s}
}

func (s *InMemStorage) Add(b bill.Bill) {
	s.billMap[b.Name] = append(s.billMap[b.Name], b.Amount)
}

// List returns a copy of every history, ordered by bill name.
func (s *InMemStorage) List() []bill.Record {
	res := make([]bill.Record, 0, len(s.billMap))
	for name, amounts := range s.billMap {
		res = append(res, bill.Record{
			Name:    name,
			Amounts: append([]float64(nil), amounts...),
		})
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})
	return res
}

func (s *InMemStorage) Remove(name string) bill.RemoveResult {
	if _, ok := s.billMap[name]; !ok {
		return bill.RemoveNotFound
	}
	delete(s.billMap, name)
	return bill.Removed
}

// Undo drops the most recent amount of a bill and forgets the bill
// once nothing is left.
func (s *InMemStorage) Undo(name string) bill.UndoResult {
	amounts, ok := s.billMap[name]
	if !ok {
		return bill.UndoNotFound
	}
	amounts = amounts[:len(amounts)-1]
	if len(amounts) == 0 {
		delete(s.billMap, name)
		return bill.UndoneAndEmptied
	}
	s.billMap[name] = amounts
	return bill.Undone
}

func (s *InMemStorage) Len() int {
	return len(s.billMap)
}
