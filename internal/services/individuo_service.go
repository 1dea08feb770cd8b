package services

import (
	"brigada-service/internal/models"
	"brigada-service/internal/repository"
	"fmt"
	"log"
)

type IIndividuoService interface {
	SiguienteID() (string, error)
	Guardar(req *models.GuardarIndividuoRequest) (*models.GuardarIndividuoResult, error)
	PorSubparcelas(subparcelaIDs []string) ([]models.Arbol, error)
}

type IndividuoService struct {
	repo      repository.IIndividuoRepository
	arboles   *IDAllocator
	registros *IDAllocator
}

func NewIndividuoService(repo repository.IIndividuoRepository) IIndividuoService {
	return &IndividuoService{
		repo:      repo,
		arboles:   NewIDAllocator("AR", repo.LastArbolID),
		registros: NewIDAllocator("R", repo.LastRegistroID),
	}
}

func (s *IndividuoService) SiguienteID() (string, error) {
	return s.arboles.Next()
}

// Guardar persists the arbol row and then attempts the companion registro
// insert. The registro write is best-effort: once the arbol is committed a
// registro failure is logged and reported in the result, never rolled back.
func (s *IndividuoService) Guardar(req *models.GuardarIndividuoRequest) (*models.GuardarIndividuoResult, error) {
	if req.SubparcelaID == "" {
		return nil, fmt.Errorf("el ID de subparcela es obligatorio")
	}

	arbol := &models.Arbol{
		ID:                 req.IDIndividuo,
		TamanoIndividuo:    req.TamanoIndividuo,
		Condicion:          req.Condicion,
		Azimut:             req.Azimut,
		DistanciaDelCentro: req.DistanciaCentro,
		Tallo:              req.Tallo,
		Diametro:           req.Diametro,
		AlturaTotal:        req.AlturaTotal,
		FormaFuste:         req.FormaFuste,
		Dano:               req.Dano,
		Penetracion:        req.Penetracion,
		IDSubparcela:       req.SubparcelaID,
	}
	if arbol.ID == "" {
		id, err := s.arboles.Next()
		if err != nil {
			return nil, err
		}
		arbol.ID = id
	}
	if err := s.repo.InsertArbol(arbol); err != nil {
		return nil, err
	}

	resultado := &models.GuardarIndividuoResult{
		IDArbol:    arbol.ID,
		RegistroOK: true,
	}

	registroID, err := s.registros.Next()
	if err == nil {
		var cedula *string
		if req.CedulaBrigadista != "" {
			cedula = &req.CedulaBrigadista
		}
		err = s.repo.InsertRegistro(&models.Registro{
			ID:                  registroID,
			DistanciaHorizontal: req.DistanciaHorizontal,
			AnguloVistaAbajo:    req.AnguloVistoBajo,
			AnguloVistaArriba:   req.AnguloVistoAlto,
			CedulaBrigadista:    cedula,
			IDArbol:             arbol.ID,
		})
	}
	if err != nil {
		log.Printf("registro insert failed for arbol %s: %v", arbol.ID, err)
		resultado.RegistroOK = false
		resultado.RegistroError = err.Error()
	}
	return resultado, nil
}

func (s *IndividuoService) PorSubparcelas(subparcelaIDs []string) ([]models.Arbol, error) {
	return s.repo.ListBySubparcelas(subparcelaIDs)
}
