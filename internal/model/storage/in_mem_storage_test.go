package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"max.ks1230/bill-tracker/internal/entity/bill"
)

func Test_OnAddSameName_ShouldKeepAmountsInOrder(t *testing.T) {
	s := NewInMemStorage()

	s.Add(bill.Bill{Name: "rent", Amount: 1200})
	s.Add(bill.Bill{Name: "rent", Amount: 1250})

	assert.Equal(t, []bill.Record{
		{Name: "rent", Amounts: []float64{1200, 1250}},
	}, s.List())
}

func Test_OnAddDifferentNames_ShouldNotMixHistories(t *testing.T) {
	s := NewInMemStorage()

	s.Add(bill.Bill{Name: "gym", Amount: 40})
	s.Add(bill.Bill{Name: "rent", Amount: 1200})
	s.Add(bill.Bill{Name: "gym", Amount: 45})

	assert.Equal(t, []bill.Record{
		{Name: "gym", Amounts: []float64{40, 45}},
		{Name: "rent", Amounts: []float64{1200}},
	}, s.List())
	assert.Equal(t, 2, s.Len())
}

func Test_OnUndoSingleAmount_ShouldRemoveName(t *testing.T) {
	s := NewInMemStorage()
	s.Add(bill.Bill{Name: "rent", Amount: 1200})

	assert.Equal(t, bill.UndoneAndEmptied, s.Undo("rent"))
	assert.Empty(t, s.List())
	assert.Equal(t, bill.UndoNotFound, s.Undo("rent"))
}

func Test_OnUndoWithHistory_ShouldPopLastAmount(t *testing.T) {
	s := NewInMemStorage()
	s.Add(bill.Bill{Name: "gym", Amount: 40})
	s.Add(bill.Bill{Name: "gym", Amount: 45})

	assert.Equal(t, bill.Undone, s.Undo("gym"))
	assert.Equal(t, []bill.Record{
		{Name: "gym", Amounts: []float64{40}},
	}, s.List())
}

func Test_OnUndoUnknownName_ShouldNotMutate(t *testing.T) {
	s := NewInMemStorage()
	s.Add(bill.Bill{Name: "gym", Amount: 40})

	assert.Equal(t, bill.UndoNotFound, s.Undo("rent"))
	assert.Equal(t, []bill.Record{
		{Name: "gym", Amounts: []float64{40}},
	}, s.List())
}

func Test_OnRemoveEmptyStore_ShouldReturnNotFound(t *testing.T) {
	s := NewInMemStorage()

	assert.Equal(t, bill.RemoveNotFound, s.Remove("utilities"))
}

func Test_OnRemoveTwice_ShouldReportNotFoundSecondTime(t *testing.T) {
	s := NewInMemStorage()
	s.Add(bill.Bill{Name: "rent", Amount: 1200})
	s.Add(bill.Bill{Name: "rent", Amount: 1250})
	s.Add(bill.Bill{Name: "gym", Amount: 40})

	assert.Equal(t, bill.Removed, s.Remove("rent"))
	assert.Equal(t, bill.RemoveNotFound, s.Remove("rent"))
	assert.Equal(t, bill.UndoNotFound, s.Undo("rent"))
	assert.Equal(t, []bill.Record{
		{Name: "gym", Amounts: []float64{40}},
	}, s.List())
}

func Test_OnAddAfterUndo_ShouldAppendToRemainingHistory(t *testing.T) {
	s := NewInMemStorage()
	s.Add(bill.Bill{Name: "rent", Amount: 1})
	s.Add(bill.Bill{Name: "rent", Amount: 2})
	s.Undo("rent")
	s.Add(bill.Bill{Name: "rent", Amount: 3})

	assert.Equal(t, []bill.Record{
		{Name: "rent", Amounts: []float64{1, 3}},
	}, s.List())
}

func Test_OnListMutation_ShouldNotChangeStorage(t *testing.T) {
	s := NewInMemStorage()
	s.Add(bill.Bill{Name: "rent", Amount: 1200})

	list := s.List()
	list[0].Amounts[0] = 0

	assert.Equal(t, []float64{1200}, s.List()[0].Amounts)
}

func Test_OnUndoRepeatedly_ShouldPopUntilGone(t *testing.T) {
	s := NewInMemStorage()
	for _, am := range []float64{1, 2, 3} {
		s.Add(bill.Bill{Name: "phone", Amount: am})
	}

	assert.Equal(t, bill.Undone, s.Undo("phone"))
	assert.Equal(t, bill.Undone, s.Undo("phone"))
	assert.Equal(t, bill.UndoneAndEmptied, s.Undo("phone"))
	assert.Equal(t, bill.UndoNotFound, s.Undo("phone"))
	assert.Equal(t, 0, s.Len())
}
