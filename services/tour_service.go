package services

import (
	"strings"

	"tourbooking/entity"
	"tourbooking/repository"

	"gorm.io/gorm"
)

type TourService struct {
	DB        *gorm.DB
	Repo      *repository.TourRepository
	ImageRepo *repository.TourImageRepository
}

func NewTourService(db *gorm.DB, repo *repository.TourRepository, imageRepo *repository.TourImageRepository) *TourService {
	return &TourService{DB: db, Repo: repo, ImageRepo: imageRepo}
}

// ----- DTOs from Controller -----
type TourInput struct {
	Name          string
	Description   string
	Price         int64
	Duration      string
	Location      string
	Featured      bool
	DestinationID *uint
}

type TourPage struct {
	Items []entity.Tour `json:"items"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Total int64         `json:"total"`
}

func (in *TourInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("name is required")
	}
	if in.Price < 0 {
		return invalid("price must be >= 0")
	}
	return nil
}

// Search คือ searchTours: กรองตาม keyword/location/ราคา/rating/featured แล้วแบ่งหน้า
func (s *TourService) Search(f repository.TourFilter, page int) (*TourPage, error) {
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return nil, invalid("minPrice must be <= maxPrice")
	}
	if page < 1 {
		page = 1
	}
	f.Offset = (page - 1) * f.Limit
	items, total, err := s.Repo.Search(f)
	if err != nil {
		return nil, err
	}
	return &TourPage{Items: items, Page: page, Limit: f.Limit, Total: total}, nil
}

func (s *TourService) Featured(limit int) ([]entity.Tour, error) {
	return s.Repo.Featured(limit)
}

func (s *TourService) Get(id uint) (*entity.Tour, error) {
	t, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, notFound(err, "tour")
	}
	return t, nil
}

func (s *TourService) Create(in TourInput) (*entity.Tour, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	t := &entity.Tour{}
	apply(t, in)
	if err := s.Repo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update replaces the editable fields; rating and reviewCount stay derived from reviews.
func (s *TourService) Update(id uint, in TourInput) (*entity.Tour, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	apply(t, in)
	if err := s.Repo.Save(t); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete ลบทัวร์พร้อมรูปใน transaction เดียว
func (s *TourService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		n, err := s.Repo.Delete(tx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return notFoundErr("tour")
		}
		return s.ImageRepo.DeleteByTour(tx, id)
	})
}

func apply(t *entity.Tour, in TourInput) {
	t.Name = strings.TrimSpace(in.Name)
	t.Description = in.Description
	t.Price = in.Price
	t.Duration = in.Duration
	t.Location = strings.TrimSpace(in.Location)
	t.Featured = in.Featured
	t.DestinationID = in.DestinationID
}

// ----- Images -----

func (s *TourService) Images(tourID uint) ([]entity.TourImage, error) {
	if err := s.mustExist(tourID); err != nil {
		return nil, err
	}
	return s.ImageRepo.ListByTour(tourID)
}

func (s *TourService) AddImage(tourID uint, url string) (*entity.TourImage, error) {
	if err := s.mustExist(tourID); err != nil {
		return nil, err
	}
	img := &entity.TourImage{TourID: tourID, URL: strings.TrimSpace(url)}
	if err := s.ImageRepo.Create(img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *TourService) DeleteImage(id uint) error {
	n, err := s.ImageRepo.Delete(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return notFoundErr("image")
	}
	return nil
}

func (s *TourService) mustExist(tourID uint) error {
	ok, err := s.Repo.Exists(tourID)
	if err != nil {
		return err
	}
	if !ok {
		return notFoundErr("tour")
	}
	return nil
}
