package services

import "github.com/riadov001/My-Jantes-Mobile-Vlast/internal/services/dto"

// CatalogService serves the static workshop offer. The list is fixed in
// code; prices change with app releases, not at runtime.
type CatalogService interface {
	ListServices() []dto.Service
}

type CatalogServiceImpl struct{}

func NewCatalogService() CatalogService {
	return &CatalogServiceImpl{}
}

func (s *CatalogServiceImpl) ListServices() []dto.Service {
	return []dto.Service{
		{ID: "1", Name: "Réparation de jantes", Description: "Réparation de jantes endommagées", Price: 150},
		{ID: "2", Name: "Changement de pneus", Description: "Remplacement de pneus usés", Price: 80},
		{ID: "3", Name: "Équilibrage", Description: "Équilibrage des roues", Price: 40},
		{ID: "4", Name: "Personnalisation", Description: "Peinture et personnalisation de jantes", Price: 200},
		{ID: "5", Name: "Géométrie", Description: "Réglage de la géométrie", Price: 90},
	}
}
