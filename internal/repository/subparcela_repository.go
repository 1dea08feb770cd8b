package repository

import (
	"brigada-service/internal/models"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type ISubparcelaRepository interface {
	ListByConglomerado(idConglomerado string) ([]models.Subparcela, error)
	GetByNombreAndConglomerado(nombre, idConglomerado string) (*models.Subparcela, error)
	ListIDsByConglomerado(idConglomerado string) ([]string, error)
	LastCoberturaID() (string, error)
	LastAlteracionID() (string, error)
	InsertCoberturas(coberturas []models.Cobertura) error
	InsertAlteraciones(alteraciones []models.Alteracion) error
	ListCoberturasBySubparcela(idSubparcela string) ([]models.Cobertura, error)
	ListAlteracionesBySubparcela(idSubparcela string) ([]models.Alteracion, error)
}

type SubparcelaRepository struct {
	db *sqlx.DB
}

func NewSubparcelaRepository(db *sqlx.DB) ISubparcelaRepository {
	return &SubparcelaRepository{
		db: db,
	}
}

// ListByConglomerado casts the coordinate columns to text so the coordinate
// service can apply its coercion regardless of how rows were loaded.
func (r *SubparcelaRepository) ListByConglomerado(idConglomerado string) ([]models.Subparcela, error) {
	subparcelas := []models.Subparcela{}
	query := `
        SELECT id, nombre, id_conglomerado, latitud::text AS latitud, longitud::text AS longitud
        FROM subparcela
        WHERE id_conglomerado = $1
    `
	if err := r.db.Select(&subparcelas, query, idConglomerado); err != nil {
		return nil, fmt.Errorf("failed to list subparcelas for conglomerado %s: %w", idConglomerado, err)
	}
	return subparcelas, nil
}

func (r *SubparcelaRepository) GetByNombreAndConglomerado(nombre, idConglomerado string) (*models.Subparcela, error) {
	var subparcela models.Subparcela
	query := `
        SELECT id, nombre, id_conglomerado, latitud::text AS latitud, longitud::text AS longitud
        FROM subparcela
        WHERE nombre = $1 AND id_conglomerado = $2
    `
	err := r.db.Get(&subparcela, query, nombre, idConglomerado)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &subparcela, nil
}

func (r *SubparcelaRepository) ListIDsByConglomerado(idConglomerado string) ([]string, error) {
	ids := []string{}
	if err := r.db.Select(&ids, "SELECT id FROM subparcela WHERE id_conglomerado = $1", idConglomerado); err != nil {
		return nil, fmt.Errorf("failed to list subparcela ids for conglomerado %s: %w", idConglomerado, err)
	}
	return ids, nil
}

func (r *SubparcelaRepository) LastCoberturaID() (string, error) {
	var id string
	err := r.db.Get(&id, "SELECT id FROM cobertura ORDER BY id DESC LIMIT 1")
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to fetch last cobertura id: %w", err)
	}
	return id, nil
}

func (r *SubparcelaRepository) LastAlteracionID() (string, error) {
	var id string
	err := r.db.Get(&id, "SELECT id FROM alteracion ORDER BY id DESC LIMIT 1")
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to fetch last alteracion id: %w", err)
	}
	return id, nil
}

func (r *SubparcelaRepository) InsertCoberturas(coberturas []models.Cobertura) error {
	if len(coberturas) == 0 {
		return nil
	}
	query := `
        INSERT INTO cobertura (id, nombre, porcentaje, id_subparcela)
        VALUES (:id, :nombre, :porcentaje, :id_subparcela)
    `
	if _, err := r.db.NamedExec(query, coberturas); err != nil {
		return fmt.Errorf("failed to insert coberturas: %w", err)
	}
	return nil
}

func (r *SubparcelaRepository) InsertAlteraciones(alteraciones []models.Alteracion) error {
	if len(alteraciones) == 0 {
		return nil
	}
	query := `
        INSERT INTO alteracion (id, nombre, severidad, id_subparcela)
        VALUES (:id, :nombre, :severidad, :id_subparcela)
    `
	if _, err := r.db.NamedExec(query, alteraciones); err != nil {
		return fmt.Errorf("failed to insert alteraciones: %w", err)
	}
	return nil
}

func (r *SubparcelaRepository) ListCoberturasBySubparcela(idSubparcela string) ([]models.Cobertura, error) {
	coberturas := []models.Cobertura{}
	if err := r.db.Select(&coberturas, "SELECT * FROM cobertura WHERE id_subparcela = $1", idSubparcela); err != nil {
		return nil, fmt.Errorf("failed to list coberturas for subparcela %s: %w", idSubparcela, err)
	}
	return coberturas, nil
}

func (r *SubparcelaRepository) ListAlteracionesBySubparcela(idSubparcela string) ([]models.Alteracion, error) {
	alteraciones := []models.Alteracion{}
	if err := r.db.Select(&alteraciones, "SELECT * FROM alteracion WHERE id_subparcela = $1", idSubparcela); err != nil {
		return nil, fmt.Errorf("failed to list alteraciones for subparcela %s: %w", idSubparcela, err)
	}
	return alteraciones, nil
}
