package services

import (
	"brigada-service/internal/models"
	"brigada-service/internal/repository"
	"math"
	"regexp"
	"strconv"
)

type ICoordenadasService interface {
	CoordenadasSubparcelas(idConglomerado string) []models.SubparcelaCoordenada
	CentroPoblado(idBrigada string) []models.CentroPoblado
}

type CoordenadasService struct {
	subparcelas repository.ISubparcelaRepository
	brigadistas repository.IBrigadistaRepository
	referencias repository.IReferenciaRepository
}

func NewCoordenadasService(
	subparcelas repository.ISubparcelaRepository,
	brigadistas repository.IBrigadistaRepository,
	referencias repository.IReferenciaRepository,
) ICoordenadasService {
	return &CoordenadasService{
		subparcelas: subparcelas,
		brigadistas: brigadistas,
		referencias: referencias,
	}
}

var nonNumeric = regexp.MustCompile(`[^\d.-]`)

// parseCoordinate coerces a stringly-typed coordinate by stripping every
// non-numeric character before parsing. Returns false for anything that is
// not a finite number within the given range.
func parseCoordinate(raw string, min, max float64) (float64, bool) {
	v, err := strconv.ParseFloat(nonNumeric.ReplaceAllString(raw, ""), 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if v < min || v > max {
		return 0, false
	}
	return v, true
}

func validCoordinate(v, min, max float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= min && v <= max
}

// CoordenadasSubparcelas returns the subparcela coordinates of a
// conglomerado. Rows whose coordinates fail coercion are dropped; every
// failure mode yields an empty list, never an error.
func (s *CoordenadasService) CoordenadasSubparcelas(idConglomerado string) []models.SubparcelaCoordenada {
	coordenadas := []models.SubparcelaCoordenada{}
	if idConglomerado == "" {
		return coordenadas
	}

	subparcelas, err := s.subparcelas.ListByConglomerado(idConglomerado)
	if err != nil {
		return coordenadas
	}

	for _, sp := range subparcelas {
		lat, okLat := parseCoordinate(sp.Latitud, -90, 90)
		lng, okLng := parseCoordinate(sp.Longitud, -180, 180)
		if !okLat || !okLng {
			continue
		}
		coordenadas = append(coordenadas, models.SubparcelaCoordenada{
			ID:             sp.ID,
			Nombre:         sp.Nombre,
			IDConglomerado: sp.IDConglomerado,
			Latitud:        lat,
			Longitud:       lng,
		})
	}
	return coordenadas
}

// CentroPoblado returns the "Centro Poblado" reference points owned by any
// member of the brigade, with the same coercion rules.
func (s *CoordenadasService) CentroPoblado(idBrigada string) []models.CentroPoblado {
	centros := []models.CentroPoblado{}
	if idBrigada == "" {
		return centros
	}

	cedulas, err := s.brigadistas.ListCedulasByBrigada(idBrigada)
	if err != nil || len(cedulas) == 0 {
		return centros
	}

	puntos, err := s.referencias.ListByCedulasAndTipo(cedulas, models.TipoCentroPoblado)
	if err != nil {
		return centros
	}

	for _, p := range puntos {
		if !validCoordinate(p.Latitud, -90, 90) || !validCoordinate(p.Longitud, -180, 180) {
			continue
		}
		descripcion := p.Descripcion
		if descripcion == "" {
			descripcion = models.TipoCentroPoblado
		}
		centros = append(centros, models.CentroPoblado{
			Latitud:     p.Latitud,
			Longitud:    p.Longitud,
			Descripcion: descripcion,
			Tipo:        p.Tipo,
		})
	}
	return centros
}
