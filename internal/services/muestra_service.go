package services

import (
	"brigada-service/internal/models"
	"brigada-service/internal/repository"
)

type IMuestraService interface {
	SiguienteID() (string, error)
	Almacenar(req *models.MuestraRequest) (string, error)
}

type MuestraService struct {
	repo repository.IMuestraRepository
	ids  *IDAllocator
}

func NewMuestraService(repo repository.IMuestraRepository) IMuestraService {
	return &MuestraService{
		repo: repo,
		ids:  NewIDAllocator("M", repo.LastID),
	}
}

func (s *MuestraService) SiguienteID() (string, error) {
	return s.ids.Next()
}

func (s *MuestraService) Almacenar(req *models.MuestraRequest) (string, error) {
	muestra := &models.Muestra{
		ID:            req.IDMuestra,
		NombreComun:   req.NombreComun,
		Determinacion: req.DeterminacionCampo,
		Observaciones: req.Observaciones,
		NumColeccion:  req.NumeroColeccion,
		IDArbol:       req.Arbol,
	}
	if muestra.ID == "" {
		id, err := s.ids.Next()
		if err != nil {
			return "", err
		}
		muestra.ID = id
	}
	if err := s.repo.Insert(muestra); err != nil {
		return "", err
	}
	return muestra.ID, nil
}
