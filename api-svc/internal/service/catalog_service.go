package service

import "fooddash/api-svc/internal/domain"

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Restaurants() ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants()
}

func (s *CatalogService) Menu(restaurantID int) ([]domain.MenuItem, error) {
	return s.repo.ListMenu(restaurantID)
}

func (s *CatalogService) MenuJoined() ([]domain.MenuItemListing, error) {
	return s.repo.ListMenuJoined()
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
