package service

import (
	"context"
	"fmt"

	"savory-delights/restaurant-svc/internal/domain"
)

type TimeSlotService struct {
	repo TimeSlotRepository
}

func NewTimeSlotService(repo TimeSlotRepository) *TimeSlotService {
	return &TimeSlotService{repo: repo}
}

func (s *TimeSlotService) ListTemplates(ctx context.Context) ([]domain.TimeSlotTemplate, error) {
	return s.repo.ListTemplates(ctx)
}

func (s *TimeSlotService) CreateTemplate(ctx context.Context, template *domain.TimeSlotTemplate) error {
	if err := template.Validate(); err != nil {
		return err
	}
	return s.repo.CreateTemplate(ctx, template)
}

func (s *TimeSlotService) UpdateTemplate(ctx context.Context, template *domain.TimeSlotTemplate) error {
	if template.ID == "" {
		return fmt.Errorf("%w: template id is required", domain.ErrValidation)
	}
	if err := template.Validate(); err != nil {
		return err
	}
	return s.repo.UpdateTemplate(ctx, template)
}

func (s *TimeSlotService) DeleteTemplate(ctx context.Context, id string) error {
	return deleted(s.repo.DeleteTemplate(ctx, id))("time slot template", id)
}

// ListExceptions returns every exception, or only those on date when given.
func (s *TimeSlotService) ListExceptions(ctx context.Context, date *domain.Date) ([]domain.TimeSlotException, error) {
	if date != nil {
		return s.repo.ExceptionsForDate(ctx, *date)
	}
	return s.repo.ListExceptions(ctx)
}

func (s *TimeSlotService) CreateException(ctx context.Context, exception *domain.TimeSlotException) error {
	if err := exception.Validate(); err != nil {
		return err
	}
	return s.repo.CreateException(ctx, exception)
}

func (s *TimeSlotService) DeleteException(ctx context.Context, id string) error {
	return deleted(s.repo.DeleteException(ctx, id))("time slot exception", id)
}

var _ TimeSlotServiceInterface = (*TimeSlotService)(nil)
