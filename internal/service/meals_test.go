package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/ibeloyar/chawp-vendor/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_CreateMeal_DefaultStatus(t *testing.T) {
	deps := newTestService(t)

	vendorID := uuid.New()
	input := model.CreateMealDTO{Title: "Jollof Rice", Price: decimal.RequireFromString("12.50")}

	expected := input
	expected.Status = model.MealStatusAvailable

	deps.storage.EXPECT().CreateMeal(gomock.Any(), vendorID, expected).
		Return(&model.Meal{ID: uuid.New(), Title: "Jollof Rice", Status: model.MealStatusAvailable}, nil)

	meal, apiErr := deps.svc.CreateMeal(context.Background(), vendorID, input)

	require.Nil(t, apiErr)
	assert.Equal(t, model.MealStatusAvailable, meal.Status)
}

func TestService_CreateMeal_Invalid(t *testing.T) {
	deps := newTestService(t)

	for name, input := range map[string]model.CreateMealDTO{
		"no title":       {Price: decimal.NewFromInt(1)},
		"negative price": {Title: "Suya", Price: decimal.NewFromInt(-1)},
		"bad status":     {Title: "Suya", Status: "sold-out"},
	} {
		t.Run(name, func(t *testing.T) {
			_, apiErr := deps.svc.CreateMeal(context.Background(), uuid.New(), input)
			require.NotNil(t, apiErr)
			assert.Equal(t, http.StatusBadRequest, apiErr.Code)
		})
	}
}

func TestService_UpdateMeal(t *testing.T) {
	deps := newTestService(t)

	vendorID, mealID := uuid.New(), uuid.New()
	price := decimal.NewFromInt(15)
	input := model.UpdateMealDTO{Price: &price}

	deps.storage.EXPECT().UpdateMeal(gomock.Any(), vendorID, mealID, input).
		Return(&model.Meal{ID: mealID, Price: price}, nil)

	meal, apiErr := deps.svc.UpdateMeal(context.Background(), vendorID, mealID.String(), input)

	require.Nil(t, apiErr)
	assert.True(t, price.Equal(meal.Price))

	_, apiErr = deps.svc.UpdateMeal(context.Background(), vendorID, "42", input)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
	assert.Equal(t, model.ErrMealInvalidIDMessage, apiErr.Message)
}

func TestService_ToggleMealAvailability_NotFound(t *testing.T) {
	deps := newTestService(t)

	deps.storage.EXPECT().ToggleMealAvailability(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, model.ErrMealNotFound)

	_, apiErr := deps.svc.ToggleMealAvailability(context.Background(), uuid.New(), uuid.NewString())

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Code)
}

func TestService_DeleteMeal(t *testing.T) {
	deps := newTestService(t)

	vendorID, mealID := uuid.New(), uuid.New()
	deps.storage.EXPECT().DeleteMeal(gomock.Any(), vendorID, mealID).Return(nil)

	assert.Nil(t, deps.svc.DeleteMeal(context.Background(), vendorID, mealID.String()))

	deps.storage.EXPECT().DeleteMeal(gomock.Any(), vendorID, mealID).Return(model.ErrMealNotFound)

	apiErr := deps.svc.DeleteMeal(context.Background(), vendorID, mealID.String())
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Code)
}
