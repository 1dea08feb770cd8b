package services

import (
	"brigada-service/internal/models"
	"brigada-service/internal/repository"
	"fmt"
	"log"
)

type IReferenciaService interface {
	SiguienteID() (string, error)
	Insertar(p *models.PuntoReferencia) (string, error)
	Actualizar(p *models.PuntoReferencia) error
	Eliminar(id, cedulaBrigadista string) (*models.PuntoReferencia, error)
	PorID(id string) (*models.PuntoReferencia, error)
	PorConglomerado(idConglomerado string) ([]models.PuntoConTrayectos, error)
	ContarPuntos(cedulaBrigadista string) int
	CampamentoExistente(idConglomerado string) (*models.CampamentoCheck, error)
}

type ReferenciaService struct {
	repo        repository.IReferenciaRepository
	brigadistas repository.IBrigadistaRepository
	trayectos   repository.ITrayectoRepository
	ids         *IDAllocator
}

func NewReferenciaService(
	repo repository.IReferenciaRepository,
	brigadistas repository.IBrigadistaRepository,
	trayectos repository.ITrayectoRepository,
) IReferenciaService {
	return &ReferenciaService{
		repo:        repo,
		brigadistas: brigadistas,
		trayectos:   trayectos,
		ids:         NewIDAllocator("PR", repo.LastID),
	}
}

func (s *ReferenciaService) SiguienteID() (string, error) {
	return s.ids.Next()
}

// Insertar persists a new point, defaulting tipo to "Referencia", and
// returns the generated ID.
func (s *ReferenciaService) Insertar(p *models.PuntoReferencia) (string, error) {
	id, err := s.ids.Next()
	if err != nil {
		return "", err
	}
	p.ID = id
	if p.Tipo == "" {
		p.Tipo = models.TipoReferencia
	}
	if err := s.repo.Insert(p); err != nil {
		return "", err
	}
	return p.ID, nil
}

// Actualizar overwrites the mutable fields of an existing point. Only the
// brigadista that created the point may modify it.
func (s *ReferenciaService) Actualizar(p *models.PuntoReferencia) error {
	owner, found, err := s.repo.GetOwner(p.ID)
	if err != nil {
		return fmt.Errorf("error al consultar el punto de referencia: %w", err)
	}
	if !found {
		return ErrNotFound
	}
	if !SameOwner(owner, p.CedulaBrigadista) {
		return ErrNoPermission
	}
	return s.repo.Update(p)
}

// Eliminar removes a point after the same ownership check and returns the
// deleted row's prior data.
func (s *ReferenciaService) Eliminar(id, cedulaBrigadista string) (*models.PuntoReferencia, error) {
	punto, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al consultar el punto de referencia: %w", err)
	}
	if punto == nil {
		return nil, ErrNotFound
	}
	if !SameOwner(punto.CedulaBrigadista, cedulaBrigadista) {
		return nil, ErrNoPermission
	}
	if err := s.repo.Delete(id); err != nil {
		return nil, err
	}
	log.Printf("punto de referencia %s eliminado", id)
	return punto, nil
}

func (s *ReferenciaService) PorID(id string) (*models.PuntoReferencia, error) {
	return s.repo.GetByID(id)
}

// PorConglomerado walks conglomerado → brigadas → cedulas → puntos →
// trayectos with sequential queries and joins the last two sets in memory.
// Any empty intermediate result short-circuits to an empty list.
func (s *ReferenciaService) PorConglomerado(idConglomerado string) ([]models.PuntoConTrayectos, error) {
	if idConglomerado == "" {
		return nil, fmt.Errorf("se requiere el ID del conglomerado")
	}

	cedulas, err := s.cedulasDelConglomerado(idConglomerado)
	if err != nil {
		return nil, err
	}
	if len(cedulas) == 0 {
		return []models.PuntoConTrayectos{}, nil
	}

	puntos, err := s.repo.ListByCedulasExcludingTipo(cedulas, models.TipoCentroPoblado)
	if err != nil {
		return nil, err
	}
	if len(puntos) == 0 {
		return []models.PuntoConTrayectos{}, nil
	}

	puntoIDs := make([]string, 0, len(puntos))
	for _, p := range puntos {
		puntoIDs = append(puntoIDs, p.ID)
	}
	trayectos, err := s.trayectos.ListByPuntoIDs(puntoIDs)
	if err != nil {
		return nil, err
	}

	porPunto := make(map[string][]models.Trayecto, len(puntos))
	for _, t := range trayectos {
		porPunto[t.IDPuntoReferencia] = append(porPunto[t.IDPuntoReferencia], t)
	}

	resultado := make([]models.PuntoConTrayectos, 0, len(puntos))
	for _, p := range puntos {
		ts := porPunto[p.ID]
		if ts == nil {
			ts = []models.Trayecto{}
		}
		resultado = append(resultado, models.PuntoConTrayectos{
			PuntoReferencia: p,
			Trayectos:       ts,
		})
	}
	return resultado, nil
}

// ContarPuntos counts the "Referencia" points owned by a brigadista; it is
// used to gate the client-side tutorial and never fails, only reports 0.
func (s *ReferenciaService) ContarPuntos(cedulaBrigadista string) int {
	if cedulaBrigadista == "" {
		return 0
	}
	count, err := s.repo.CountByCedulaAndTipo(cedulaBrigadista, models.TipoReferencia)
	if err != nil {
		log.Printf("error al consultar puntos de referencia: %v", err)
		return 0
	}
	return count
}

// CampamentoExistente reports whether any brigade member of the
// conglomerado has registered a "Campamento" point.
func (s *ReferenciaService) CampamentoExistente(idConglomerado string) (*models.CampamentoCheck, error) {
	if idConglomerado == "" {
		return nil, fmt.Errorf("se requiere el ID del conglomerado")
	}

	cedulas, err := s.cedulasDelConglomerado(idConglomerado)
	if err != nil {
		return nil, err
	}
	if len(cedulas) == 0 {
		return &models.CampamentoCheck{Existe: false}, nil
	}

	campamentos, err := s.repo.ListByCedulasAndTipo(cedulas, models.TipoCampamento)
	if err != nil {
		return nil, err
	}
	if len(campamentos) == 0 {
		return &models.CampamentoCheck{Existe: false}, nil
	}
	return &models.CampamentoCheck{Existe: true, ID: campamentos[0].ID}, nil
}

func (s *ReferenciaService) cedulasDelConglomerado(idConglomerado string) ([]string, error) {
	brigadaIDs, err := s.brigadistas.ListBrigadaIDsByConglomerado(idConglomerado)
	if err != nil {
		return nil, err
	}
	if len(brigadaIDs) == 0 {
		return nil, nil
	}
	return s.brigadistas.ListCedulasByBrigadas(brigadaIDs)
}
