package services_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/SscSPs/storefront_sim/internal/core/ports"
	"github.com/SscSPs/storefront_sim/internal/repositories/memory"
	"github.com/shopspring/decimal"
)

var errStoreDown = errors.New("store unavailable")

// scriptedRandom replays fixed values. Once a script is exhausted it keeps
// returning fallback values.
type scriptedRandom struct {
	floats []float64
	ints   []int
}

var _ ports.RandomSource = (*scriptedRandom)(nil)

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRandom) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		return n - 1
	}
	return v
}

type recordingEvents struct {
	events []domain.Event
}

var _ ports.EventPublisher = (*recordingEvents)(nil)

func (e *recordingEvents) Publish(event domain.Event) {
	e.events = append(e.events, event)
}

func (e *recordingEvents) named(name string) []domain.Event {
	out := make([]domain.Event, 0)
	for _, ev := range e.events {
		if ev.EventName() == name {
			out = append(out, ev)
		}
	}
	return out
}

type recordingProgress struct {
	revenue   decimal.Decimal
	itemsSold int
	completed int
}

func (p *recordingProgress) RecordRevenue(_ string, amount decimal.Decimal) {
	p.revenue = p.revenue.Add(amount)
}

func (p *recordingProgress) RecordItemSold(string) { p.itemsSold++ }

func (p *recordingProgress) RecordCheckoutCompleted() { p.completed++ }

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testProducts() []domain.Product {
	return []domain.Product{
		{ProductID: "apple", Name: "Apple crate", MarketPrice: money("5.00")},
		{ProductID: "bread", Name: "Bread", MarketPrice: money("4.50")},
		{ProductID: "milk", Name: "Milk", MarketPrice: money("3.25")},
	}
}

func testCart() []domain.CartItem {
	return []domain.CartItem{
		{ItemID: "i1", ProductID: "apple"},
		{ItemID: "i2", ProductID: "bread"},
		{ItemID: "i3", ProductID: "milk"},
	}
}

// failingBillRepo fails the next failApply / failUpdate writes.
type failingBillRepo struct {
	*memory.BillRepository
	failApply  int
	failUpdate int
}

func newFailingBillRepo() *failingBillRepo {
	return &failingBillRepo{BillRepository: memory.NewBillRepository()}
}

func (r *failingBillRepo) ApplyBillChanges(ctx context.Context, updated []domain.Bill, removedIDs []string) error {
	if r.failApply > 0 {
		r.failApply--
		return errStoreDown
	}
	return r.BillRepository.ApplyBillChanges(ctx, updated, removedIDs)
}

func (r *failingBillRepo) UpdateBill(ctx context.Context, bill domain.Bill) error {
	if r.failUpdate > 0 {
		r.failUpdate--
		return errStoreDown
	}
	return r.BillRepository.UpdateBill(ctx, bill)
}

// failingEmployeeRepo fails the next failSave saves.
type failingEmployeeRepo struct {
	*memory.EmployeeRepository
	failSave int
}

func (r *failingEmployeeRepo) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	if r.failSave > 0 {
		r.failSave--
		return errStoreDown
	}
	return r.EmployeeRepository.SaveEmployee(ctx, employee)
}
