package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ibeloyar/chawp-vendor/internal/model"
)

func (s *Service) GetMeals(ctx context.Context, vendorID uuid.UUID) ([]model.Meal, *model.APIError) {
	meals, err := s.storage.GetMeals(ctx, vendorID)
	if err != nil {
		s.lg.Errorf("get meals of vendor %s error: %v", vendorID, err)
		return nil, internalError()
	}

	return meals, nil
}

func (s *Service) CreateMeal(ctx context.Context, vendorID uuid.UUID, input model.CreateMealDTO) (*model.Meal, *model.APIError) {
	if input.Status == "" {
		input.Status = model.MealStatusAvailable
	}

	if err := validateCreateMealDTO(input); err != nil {
		return nil, badRequest(err.Error())
	}

	meal, err := s.storage.CreateMeal(ctx, vendorID, input)
	if err != nil {
		s.lg.Errorf("create meal for vendor %s error: %v", vendorID, err)
		return nil, internalError()
	}

	return meal, nil
}

func (s *Service) UpdateMeal(ctx context.Context, vendorID uuid.UUID, mealID string, input model.UpdateMealDTO) (*model.Meal, *model.APIError) {
	id, apiErr := parseID(mealID, model.ErrMealInvalidIDMessage)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := validateUpdateMealDTO(input); err != nil {
		return nil, badRequest(err.Error())
	}

	meal, err := s.storage.UpdateMeal(ctx, vendorID, id, input)
	return s.mealResult(meal, err, "update")
}

func (s *Service) ToggleMealAvailability(ctx context.Context, vendorID uuid.UUID, mealID string) (*model.Meal, *model.APIError) {
	id, apiErr := parseID(mealID, model.ErrMealInvalidIDMessage)
	if apiErr != nil {
		return nil, apiErr
	}

	meal, err := s.storage.ToggleMealAvailability(ctx, vendorID, id)
	return s.mealResult(meal, err, "toggle")
}

func (s *Service) DeleteMeal(ctx context.Context, vendorID uuid.UUID, mealID string) *model.APIError {
	id, apiErr := parseID(mealID, model.ErrMealInvalidIDMessage)
	if apiErr != nil {
		return apiErr
	}

	_, apiErr = s.mealResult(nil, s.storage.DeleteMeal(ctx, vendorID, id), "delete")
	return apiErr
}

func (s *Service) mealResult(meal *model.Meal, err error, op string) (*model.Meal, *model.APIError) {
	if err == nil {
		return meal, nil
	}

	if errors.Is(err, model.ErrMealNotFound) {
		return nil, notFound(model.ErrMealNotFoundMessage)
	}

	s.lg.Errorf("%s meal error: %v", op, err)
	return nil, internalError()
}
