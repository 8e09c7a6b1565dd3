package services

import (
	"fmt"
	"strings"

	"tourbooking/entity"
	"tourbooking/repository"
)

type DestinationService struct {
	Repo     *repository.DestinationRepository
	TourRepo *repository.TourRepository
}

func NewDestinationService(repo *repository.DestinationRepository, tourRepo *repository.TourRepository) *DestinationService {
	return &DestinationService{Repo: repo, TourRepo: tourRepo}
}

func (s *DestinationService) List() ([]entity.Destination, error) {
	return s.Repo.FindAll()
}

func (s *DestinationService) Get(id uint) (*entity.Destination, error) {
	d, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, notFound(err, "destination")
	}
	return d, nil
}

func (s *DestinationService) Create(name, province string) (*entity.Destination, error) {
	if strings.TrimSpace(name) == "" {
		return nil, invalid("name is required")
	}
	d := &entity.Destination{Name: strings.TrimSpace(name), Province: strings.TrimSpace(province)}
	if err := s.Repo.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DestinationService) Update(id uint, name, province string) (*entity.Destination, error) {
	if strings.TrimSpace(name) == "" {
		return nil, invalid("name is required")
	}
	d, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	d.Name = strings.TrimSpace(name)
	d.Province = strings.TrimSpace(province)
	if err := s.Repo.Save(d); err != nil {
		return nil, err
	}
	return d, nil
}

// Delete refuses while tours still point at the destination.
func (s *DestinationService) Delete(id uint) error {
	inUse, err := s.TourRepo.CountByDestination(id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return fmt.Errorf("destination has %d tours: %w", inUse, ErrConflict)
	}
	n, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return notFoundErr("destination")
	}
	return nil
}
