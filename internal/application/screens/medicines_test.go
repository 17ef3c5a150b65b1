package screens

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/arovia/web/internal/domain/entities"
	apperrors "github.com/zatekoja/arovia/web/pkg/errors"
)

func sampleMedicines() []entities.Medicine {
	discounted := 18.0
	return []entities.Medicine{
		{ID: "m1", Name: "Paracetamol 500mg", Price: 25, DiscountedPrice: &discounted, Category: "Pain Relief", Stock: 100},
		{ID: "m2", Name: "ORS Sachets", Price: 20, Category: "Hydration", Stock: 50},
		{ID: "m3", Name: "Cough Syrup", Price: 90, Category: "Cold & Flu", Stock: 0},
	}
}

func TestMedicineStore_CartIsLocalAndOrdered(t *testing.T) {
	api := new(MockClient)
	api.On("ListMedicines", mock.Anything).Return(sampleMedicines(), nil).Once()
	deps, notifier := newTestDeps(api)

	screen := NewMedicineStore(deps)
	screen.Activate(context.Background())

	require.NoError(t, screen.AddToCart(context.Background(), "m1"))
	require.NoError(t, screen.AddToCart(context.Background(), "m2"))
	require.NoError(t, screen.AddToCart(context.Background(), "m1"))

	cart := screen.Cart()
	require.Equal(t, 3, cart.Len())
	assert.Equal(t, "m1", cart.Items[0].ID)
	assert.Equal(t, "m2", cart.Items[1].ID)
	assert.Equal(t, "m1", cart.Items[2].ID)
	assert.InDelta(t, 56.0, cart.Total(), 0.001)

	assert.Equal(t, []recordedToast{
		{Kind: entities.ToastSuccess, Text: "Paracetamol 500mg added to cart"},
		{Kind: entities.ToastSuccess, Text: "ORS Sachets added to cart"},
		{Kind: entities.ToastSuccess, Text: "Paracetamol 500mg added to cart"},
	}, notifier.All())

	// Only the activation read reached the API
	assert.Len(t, api.Calls, 1)
}

func TestMedicineStore_OutOfStockRejected(t *testing.T) {
	api := new(MockClient)
	api.On("ListMedicines", mock.Anything).Return(sampleMedicines(), nil)
	deps, _ := newTestDeps(api)

	screen := NewMedicineStore(deps)
	screen.Activate(context.Background())

	err := screen.AddToCart(context.Background(), "m3")
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
	assert.Zero(t, screen.Cart().Len())

	err = screen.AddToCart(context.Background(), "missing")
	assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.TypeOf(err))
}

func TestMedicineStore_ActivateFailure(t *testing.T) {
	api := new(MockClient)
	api.On("ListMedicines", mock.Anything).Return(nil, apperrors.NewMalformedResponseError("json", nil)).Once()
	deps, notifier := newTestDeps(api)

	screen := NewMedicineStore(deps)
	screen.Activate(context.Background())

	view := screen.View().(MedicinesView)
	assert.Equal(t, PhaseError, view.Phase)
	assert.Empty(t, view.Medicines)
	assert.Equal(t, []recordedToast{{Kind: entities.ToastError, Text: "Failed to load medicines"}}, notifier.All())
}

func TestMedicineStore_FilterCategory(t *testing.T) {
	api := new(MockClient)
	api.On("ListMedicines", mock.Anything).Return(sampleMedicines(), nil).Once()
	api.On("ListMedicinesByCategory", mock.Anything, "Hydration").Return([]entities.Medicine{sampleMedicines()[1]}, nil).Once()
	api.On("ListMedicinesByCategory", mock.Anything, "Pain Relief").Return(nil, apperrors.NewServerRejectedError("down", 503)).Once()
	deps, notifier := newTestDeps(api)

	screen := NewMedicineStore(deps)
	screen.Activate(context.Background())
	assert.Equal(t, []string{"Pain Relief", "Hydration", "Cold & Flu"}, screen.View().(MedicinesView).Categories)

	require.NoError(t, screen.FilterCategory(context.Background(), "Hydration"))
	view := screen.View().(MedicinesView)
	assert.Equal(t, "Hydration", view.Category)
	require.Len(t, view.Medicines, 1)
	assert.Equal(t, "m2", view.Medicines[0].ID)

	// A failed filter leaves the current list in place
	assert.Error(t, screen.FilterCategory(context.Background(), "Pain Relief"))
	view = screen.View().(MedicinesView)
	assert.Equal(t, "Hydration", view.Category)
	assert.Len(t, view.Medicines, 1)
	assert.Equal(t, []recordedToast{{Kind: entities.ToastError, Text: "Failed to load medicines"}}, notifier.All())

	require.NoError(t, screen.FilterCategory(context.Background(), ""))
	assert.Len(t, screen.View().(MedicinesView).Medicines, 3)
	api.AssertExpectations(t)
}
