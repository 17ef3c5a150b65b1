package screens

import (
	"context"
	"strings"
	"sync"

	"github.com/zatekoja/arovia/web/internal/domain/entities"
	"github.com/zatekoja/arovia/web/internal/infrastructure/clients/arovia"
	apperrors "github.com/zatekoja/arovia/web/pkg/errors"
)

// MedicinesView is the medicine store's state
type MedicinesView struct {
	Phase      Phase               `json:"phase"`
	Medicines  []entities.Medicine `json:"medicines"`
	Categories []string            `json:"categories"`
	Category   string              `json:"category,omitempty"`
	Cart       entities.Cart       `json:"cart"`
	CartTotal  float64             `json:"cart_total"`
	Filtering  ActionState         `json:"filtering"`
}

// MedicineStore lists medicines and keeps a local cart that is never submitted
type MedicineStore struct {
	base

	catalogue Collection[entities.Medicine]
	filtering Action

	mu       sync.RWMutex
	category string
	filtered []entities.Medicine
	cart     entities.Cart
}

func NewMedicineStore(deps Deps) *MedicineStore {
	return &MedicineStore{base: newBase(deps)}
}

func (s *MedicineStore) Path() string  { return PathMedicines }
func (s *MedicineStore) Title() string { return "Buy Medicines" }

func (s *MedicineStore) Activate(ctx context.Context) {
	load(ctx, &s.base, &s.catalogue, arovia.OpListMedicines, s.deps.API.ListMedicines)
}

// AddToCart appends the displayed medicine with id to the cart
func (s *MedicineStore) AddToCart(ctx context.Context, id string) error {
	var (
		medicine entities.Medicine
		found    bool
	)
	for _, m := range s.displayed() {
		if m.ID == id {
			medicine, found = m, true
			break
		}
	}
	if !found {
		return apperrors.NewNotFoundError("medicine not found")
	}
	if !medicine.InStock() {
		return s.reject(ctx, medicine.Name+" is out of stock")
	}

	s.mu.Lock()
	s.cart.Add(medicine)
	s.mu.Unlock()

	s.succeed(ctx, medicine.Name+" added to cart")
	return nil
}

// FilterCategory narrows the list to one category. An empty category
// restores the list read at activation.
func (s *MedicineStore) FilterCategory(ctx context.Context, category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		s.mu.Lock()
		s.category = ""
		s.filtered = nil
		s.mu.Unlock()
		return nil
	}

	if !s.filtering.Begin() {
		return ErrBusy
	}

	reqCtx, done := s.activation.Bind(ctx)
	defer done()

	medicines, err := s.deps.API.ListMedicinesByCategory(reqCtx, category)
	if !s.Live() {
		s.filtering.Abandon()
		return apperrors.NewCanceledError("screen left before filter settled", err)
	}
	s.filtering.Settle(err)
	if err != nil {
		s.fail(ctx, arovia.OpListMedicinesByCategory, err)
		return err
	}

	s.mu.Lock()
	s.category = category
	s.filtered = medicines
	s.mu.Unlock()
	return nil
}

func (s *MedicineStore) displayed() []entities.Medicine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.category == "" {
		return s.catalogue.Items()
	}
	out := make([]entities.Medicine, len(s.filtered))
	copy(out, s.filtered)
	return out
}

// categories lists the distinct catalogue categories in first-seen order
func (s *MedicineStore) categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range s.catalogue.Items() {
		if m.Category == "" || seen[m.Category] {
			continue
		}
		seen[m.Category] = true
		out = append(out, m.Category)
	}
	return out
}

// Cart returns a copy of the cart
func (s *MedicineStore) Cart() entities.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Medicine, len(s.cart.Items))
	copy(items, s.cart.Items)
	return entities.Cart{Items: items}
}

func (s *MedicineStore) View() interface{} {
	cart := s.Cart()

	s.mu.RLock()
	category := s.category
	s.mu.RUnlock()

	return MedicinesView{
		Phase:      s.catalogue.Phase(),
		Medicines:  s.displayed(),
		Categories: s.categories(),
		Category:   category,
		Cart:       cart,
		CartTotal:  cart.Total(),
		Filtering:  s.filtering.State(),
	}
}
