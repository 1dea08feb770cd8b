package services

import (
	"brigada-service/internal/models"
	"brigada-service/internal/repository"
	"fmt"
	"strings"
)

type ITrayectoService interface {
	SiguienteID() (string, error)
	Insertar(datos *models.DatosTrayecto, idReferencia string) (*models.Trayecto, error)
	Actualizar(datos *models.DatosTrayecto, idReferencia string) (*models.Trayecto, error)
	PorID(id string) (*models.Trayecto, error)
}

type TrayectoService struct {
	repo repository.ITrayectoRepository
	ids  *IDAllocator
}

func NewTrayectoService(repo repository.ITrayectoRepository) ITrayectoService {
	return &TrayectoService{
		repo: repo,
		ids:  NewIDAllocator("TR", repo.LastID),
	}
}

func (s *TrayectoService) SiguienteID() (string, error) {
	return s.ids.Next()
}

// Insertar validates the transport mode, allocates the next ID and persists
// the trayecto linked to its reference point. Ownership of the point is
// checked by the handler before this is called.
func (s *TrayectoService) Insertar(datos *models.DatosTrayecto, idReferencia string) (*models.Trayecto, error) {
	if strings.TrimSpace(datos.MedioTransporte) == "" {
		return nil, fmt.Errorf("el campo 'medio_transporte' no puede estar vacío")
	}

	id, err := s.ids.Next()
	if err != nil {
		return nil, fmt.Errorf("no se pudo generar el siguiente ID para el trayecto: %w", err)
	}

	trayecto := &models.Trayecto{
		ID:                id,
		MedioTransporte:   datos.MedioTransporte,
		Duracion:          datos.Duracion,
		Distancia:         datos.Distancia,
		IDPuntoReferencia: idReferencia,
	}
	if err := s.repo.Insert(trayecto); err != nil {
		return nil, err
	}
	return trayecto, nil
}

// Actualizar updates the trayecto rows belonging to the reference point.
// The update is keyed on the FK, not the trayecto's own ID.
func (s *TrayectoService) Actualizar(datos *models.DatosTrayecto, idReferencia string) (*models.Trayecto, error) {
	if strings.TrimSpace(datos.MedioTransporte) == "" {
		return nil, fmt.Errorf("el campo 'medio_transporte' no puede estar vacío")
	}

	trayecto := &models.Trayecto{
		ID:                datos.IDTrayecto,
		MedioTransporte:   datos.MedioTransporte,
		Duracion:          datos.Duracion,
		Distancia:         datos.Distancia,
		IDPuntoReferencia: idReferencia,
	}
	if err := s.repo.UpdateByReferencia(trayecto, idReferencia); err != nil {
		return nil, err
	}
	return trayecto, nil
}

// PorID returns nil (not an error) when the trayecto does not exist.
func (s *TrayectoService) PorID(id string) (*models.Trayecto, error) {
	return s.repo.GetByID(id)
}
