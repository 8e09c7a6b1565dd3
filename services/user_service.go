package services

import (
	"strings"

	"tourbooking/entity"
	"tourbooking/repository"
)

// UserService is the admin view over accounts.
type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

func (s *UserService) List(page, limit int) ([]entity.User, int64, error) {
	return s.Repo.List(limit, (page-1)*limit)
}

func (s *UserService) Get(id uint) (*entity.User, error) {
	u, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, notFound(err, "user")
	}
	return u, nil
}

type AdminUserUpdate struct {
	Name    *string
	Phone   *string
	IsAdmin *bool
}

func (s *UserService) Update(id uint, in AdminUserUpdate) (*entity.User, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Phone != nil {
		updates["phone"] = strings.TrimSpace(*in.Phone)
	}
	if in.IsAdmin != nil {
		updates["is_admin"] = *in.IsAdmin
	}
	if len(updates) > 0 {
		if err := s.Repo.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

func (s *UserService) Delete(actorID, id uint) error {
	if actorID == id {
		return invalid("cannot delete your own account")
	}
	n, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return notFoundErr("user")
	}
	return nil
}
