package repository

import (
	"brigada-service/internal/models"
	"brigada-service/utils"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type IReferenciaRepository interface {
	LastID() (string, error)
	Insert(p *models.PuntoReferencia) error
	GetByID(id string) (*models.PuntoReferencia, error)
	GetOwner(id string) (string, bool, error)
	Update(p *models.PuntoReferencia) error
	Delete(id string) error
	ListByCedulasExcludingTipo(cedulas []string, tipo string) ([]models.PuntoReferencia, error)
	ListByCedulasAndTipo(cedulas []string, tipo string) ([]models.PuntoReferencia, error)
	CountByCedulaAndTipo(cedula, tipo string) (int, error)
}

type ReferenciaRepository struct {
	db *sqlx.DB
}

func NewReferenciaRepository(db *sqlx.DB) IReferenciaRepository {
	return &ReferenciaRepository{
		db: db,
	}
}

// LastID returns the highest punto_referencia ID, or "" when the table is
// empty.
func (r *ReferenciaRepository) LastID() (string, error) {
	var id string
	err := r.db.Get(&id, "SELECT id FROM punto_referencia ORDER BY id DESC LIMIT 1")
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to fetch last punto_referencia id: %w", err)
	}
	return id, nil
}

func (r *ReferenciaRepository) Insert(p *models.PuntoReferencia) error {
	query := `
        INSERT INTO punto_referencia (
            id,
            latitud,
            longitud,
            descripcion,
            error,
            cedula_brigadista,
            tipo
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	err := utils.ExecWithCheck(
		r.db,
		query,
		utils.ExecInsert,
		p.ID,
		p.Latitud,
		p.Longitud,
		p.Descripcion,
		p.Error,
		p.CedulaBrigadista,
		p.Tipo,
	)
	if err != nil {
		return fmt.Errorf("failed to insert punto_referencia: %w", err)
	}
	return nil
}

func (r *ReferenciaRepository) GetByID(id string) (*models.PuntoReferencia, error) {
	var punto models.PuntoReferencia
	err := r.db.Get(&punto, "SELECT * FROM punto_referencia WHERE id = $1", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &punto, nil
}

// GetOwner returns the stored owner cedula and whether the row exists.
func (r *ReferenciaRepository) GetOwner(id string) (string, bool, error) {
	var cedula string
	err := r.db.Get(&cedula, "SELECT cedula_brigadista FROM punto_referencia WHERE id = $1", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}
	return cedula, true, nil
}

func (r *ReferenciaRepository) Update(p *models.PuntoReferencia) error {
	query := `
        UPDATE punto_referencia
        SET latitud = $1, longitud = $2, descripcion = $3, error = $4, cedula_brigadista = $5
        WHERE id = $6
    `
	if err := utils.ExecWithCheck(r.db, query, utils.ExecUpdate, p.Latitud, p.Longitud, p.Descripcion, p.Error, p.CedulaBrigadista, p.ID); err != nil {
		return fmt.Errorf("failed to update punto_referencia %s: %w", p.ID, err)
	}
	return nil
}

func (r *ReferenciaRepository) Delete(id string) error {
	if err := utils.ExecWithCheck(r.db, "DELETE FROM punto_referencia WHERE id = $1", utils.ExecDelete, id); err != nil {
		return fmt.Errorf("failed to delete punto_referencia %s: %w", id, err)
	}
	return nil
}

func (r *ReferenciaRepository) ListByCedulasExcludingTipo(cedulas []string, tipo string) ([]models.PuntoReferencia, error) {
	if len(cedulas) == 0 {
		return []models.PuntoReferencia{}, nil
	}
	query, args, err := sqlx.In("SELECT * FROM punto_referencia WHERE tipo <> ? AND cedula_brigadista IN (?)", tipo, cedulas)
	if err != nil {
		return nil, fmt.Errorf("failed to build puntos query: %w", err)
	}
	puntos := []models.PuntoReferencia{}
	if err := r.db.Select(&puntos, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list puntos de referencia: %w", err)
	}
	return puntos, nil
}

func (r *ReferenciaRepository) ListByCedulasAndTipo(cedulas []string, tipo string) ([]models.PuntoReferencia, error) {
	if len(cedulas) == 0 {
		return []models.PuntoReferencia{}, nil
	}
	query, args, err := sqlx.In("SELECT * FROM punto_referencia WHERE tipo = ? AND cedula_brigadista IN (?)", tipo, cedulas)
	if err != nil {
		return nil, fmt.Errorf("failed to build puntos query: %w", err)
	}
	puntos := []models.PuntoReferencia{}
	if err := r.db.Select(&puntos, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list puntos de referencia: %w", err)
	}
	return puntos, nil
}

func (r *ReferenciaRepository) CountByCedulaAndTipo(cedula, tipo string) (int, error) {
	var count int
	err := r.db.Get(&count, "SELECT COUNT(*) FROM punto_referencia WHERE cedula_brigadista = $1 AND tipo = $2", cedula, tipo)
	if err != nil {
		return 0, fmt.Errorf("failed to count puntos de referencia: %w", err)
	}
	return count, nil
}
