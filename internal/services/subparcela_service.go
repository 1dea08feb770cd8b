package services

import (
	"brigada-service/internal/models"
	"brigada-service/internal/repository"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type ISubparcelaService interface {
	InsertarCoberturas(coberturas []models.CoberturaInput, idSubparcela string) ([]models.Cobertura, error)
	InsertarAlteraciones(afectaciones []models.AfectacionInput, idSubparcela string) ([]models.Alteracion, error)
	Sincronizar(caracteristicas models.SincronizarRequest) (*models.SincronizarResult, error)
	GetSubparcelaID(nombre, idConglomerado string) (string, error)
	GetArboles(nombre, idConglomerado string) (*models.ArbolesSubparcela, error)
	GetCaracteristicas(nombre, idConglomerado string) (*models.CaracteristicasSubparcela, error)
	GetIDsByConglomerado(idConglomerado string) ([]string, error)
}

type SubparcelaService struct {
	repo         repository.ISubparcelaRepository
	arboles      repository.IIndividuoRepository
	coberturas   *IDAllocator
	alteraciones *IDAllocator
}

func NewSubparcelaService(repo repository.ISubparcelaRepository, arboles repository.IIndividuoRepository) ISubparcelaService {
	return &SubparcelaService{
		repo:         repo,
		arboles:      arboles,
		coberturas:   NewIDAllocator("C", repo.LastCoberturaID),
		alteraciones: NewIDAllocator("A", repo.LastAlteracionID),
	}
}

// parseLeadingInt reads the integer prefix of a string ("30%" -> 30),
// matching how the client's percentage values have always been parsed.
func parseLeadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && unicode.IsDigit(rune(s[end])) {
		end++
	}
	if end == 0 {
		return 0
	}
	n, _ := strconv.Atoi(s[:end])
	return n
}

func (s *SubparcelaService) InsertarCoberturas(coberturas []models.CoberturaInput, idSubparcela string) ([]models.Cobertura, error) {
	ids, err := s.coberturas.NextBatch(len(coberturas))
	if err != nil {
		return nil, err
	}

	rows := make([]models.Cobertura, 0, len(coberturas))
	for i, c := range coberturas {
		rows = append(rows, models.Cobertura{
			ID:           ids[i],
			Nombre:       c.Tipo,
			Porcentaje:   parseLeadingInt(c.Porcentaje),
			IDSubparcela: idSubparcela,
		})
	}
	if err := s.repo.InsertCoberturas(rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *SubparcelaService) InsertarAlteraciones(afectaciones []models.AfectacionInput, idSubparcela string) ([]models.Alteracion, error) {
	ids, err := s.alteraciones.NextBatch(len(afectaciones))
	if err != nil {
		return nil, err
	}

	rows := make([]models.Alteracion, 0, len(afectaciones))
	for i, a := range afectaciones {
		rows = append(rows, models.Alteracion{
			ID:           ids[i],
			Nombre:       a.Tipo,
			Severidad:    a.Severidad,
			IDSubparcela: idSubparcela,
		})
	}
	if err := s.repo.InsertAlteraciones(rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Sincronizar batch-inserts the pending characteristics of each subparcela.
// The operation is additive only: re-syncing the same payload appends a
// second set of rows with fresh IDs.
func (s *SubparcelaService) Sincronizar(caracteristicas models.SincronizarRequest) (*models.SincronizarResult, error) {
	resultado := &models.SincronizarResult{
		Coberturas:   []models.Cobertura{},
		Alteraciones: []models.Alteracion{},
	}

	for idSubparcela, sp := range caracteristicas {
		if len(sp.Coberturas) > 0 {
			insertadas, err := s.InsertarCoberturas(sp.Coberturas, idSubparcela)
			if err != nil {
				return nil, fmt.Errorf("error al insertar coberturas: %w", err)
			}
			resultado.Coberturas = append(resultado.Coberturas, insertadas...)
		}
		if len(sp.Afectaciones) > 0 {
			insertadas, err := s.InsertarAlteraciones(sp.Afectaciones, idSubparcela)
			if err != nil {
				return nil, fmt.Errorf("error al insertar alteraciones: %w", err)
			}
			resultado.Alteraciones = append(resultado.Alteraciones, insertadas...)
		}
	}
	return resultado, nil
}

func (s *SubparcelaService) GetSubparcelaID(nombre, idConglomerado string) (string, error) {
	subparcela, err := s.repo.GetByNombreAndConglomerado(nombre, idConglomerado)
	if err != nil {
		return "", err
	}
	if subparcela == nil {
		return "", ErrNotFound
	}
	return subparcela.ID, nil
}

func (s *SubparcelaService) GetArboles(nombre, idConglomerado string) (*models.ArbolesSubparcela, error) {
	subparcela, err := s.repo.GetByNombreAndConglomerado(nombre, idConglomerado)
	if err != nil {
		return nil, err
	}
	if subparcela == nil {
		return nil, ErrNotFound
	}

	arboles, err := s.arboles.ListBySubparcelas([]string{subparcela.ID})
	if err != nil {
		return nil, err
	}
	return &models.ArbolesSubparcela{
		IDSubparcela: subparcela.ID,
		Arboles:      arboles,
	}, nil
}

func (s *SubparcelaService) GetCaracteristicas(nombre, idConglomerado string) (*models.CaracteristicasSubparcela, error) {
	subparcela, err := s.repo.GetByNombreAndConglomerado(nombre, idConglomerado)
	if err != nil {
		return nil, err
	}
	if subparcela == nil {
		return nil, ErrNotFound
	}

	coberturas, err := s.repo.ListCoberturasBySubparcela(subparcela.ID)
	if err != nil {
		return nil, err
	}
	alteraciones, err := s.repo.ListAlteracionesBySubparcela(subparcela.ID)
	if err != nil {
		return nil, err
	}
	return &models.CaracteristicasSubparcela{
		Subparcela:   subparcela,
		Coberturas:   coberturas,
		Alteraciones: alteraciones,
	}, nil
}

func (s *SubparcelaService) GetIDsByConglomerado(idConglomerado string) ([]string, error) {
	return s.repo.ListIDsByConglomerado(idConglomerado)
}
