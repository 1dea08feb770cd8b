package services

import (
	"brigada-service/internal/models"
	"brigada-service/internal/repository"
	"fmt"
	"log"
)

type IBrigadistaService interface {
	GetInfo(uid string) (*models.BrigadistaInfo, error)
	UpdateTutorial(uid string, completado bool) (*models.TutorialUpdateResult, error)
}

type BrigadistaService struct {
	repo repository.IBrigadistaRepository
}

func NewBrigadistaService(repo repository.IBrigadistaRepository) IBrigadistaService {
	return &BrigadistaService{
		repo: repo,
	}
}

// GetInfo resolves the brigadista row and joins its brigada client-side for
// the conglomerado reference. Either lookup failing yields nil, not an
// error, so the handler can answer 404.
func (s *BrigadistaService) GetInfo(uid string) (*models.BrigadistaInfo, error) {
	brigadista, err := s.repo.GetByUID(uid)
	if err != nil {
		return nil, fmt.Errorf("error al obtener el brigadista: %w", err)
	}
	if brigadista == nil {
		return nil, nil
	}

	brigada, err := s.repo.GetBrigada(brigadista.IDBrigada)
	if err != nil {
		return nil, fmt.Errorf("error al obtener el conglomerado: %w", err)
	}
	if brigada == nil {
		return nil, nil
	}

	return &models.BrigadistaInfo{
		Nombre:             brigadista.Nombre,
		Brigada:            brigadista.IDBrigada,
		Rol:                brigadista.Rol,
		Cedula:             brigadista.Cedula,
		IDConglomerado:     brigada.IDConglomerado,
		TutorialCompletado: brigadista.TutorialCompletado,
	}, nil
}

// UpdateTutorial sets the tutorial flag. A brigade chief completing the
// tutorial broadcasts the flag to every member of their brigade; anyone
// else, or any reset, only touches the caller's own row. The broadcast is
// one-way: there is no brigade-wide reset through this path.
func (s *BrigadistaService) UpdateTutorial(uid string, completado bool) (*models.TutorialUpdateResult, error) {
	brigadista, err := s.repo.GetByUID(uid)
	if err != nil {
		return nil, fmt.Errorf("error al obtener información del brigadista: %w", err)
	}
	if brigadista == nil {
		return nil, ErrNotFound
	}

	if brigadista.Rol != models.RolJefeBrigada || !completado {
		if err := s.repo.UpdateTutorialByUID(uid, completado); err != nil {
			return nil, err
		}
		return &models.TutorialUpdateResult{Updated: "single"}, nil
	}

	log.Printf("broadcasting tutorial flag to brigada %s", brigadista.IDBrigada)
	if err := s.repo.UpdateTutorialByBrigada(brigadista.IDBrigada, completado); err != nil {
		return nil, err
	}
	return &models.TutorialUpdateResult{Updated: "brigade"}, nil
}
