package repository

import (
	"brigada-service/internal/models"
	"brigada-service/utils"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type ITrayectoRepository interface {
	LastID() (string, error)
	Insert(t *models.Trayecto) error
	UpdateByReferencia(t *models.Trayecto, idReferencia string) error
	GetByID(id string) (*models.Trayecto, error)
	ListByPuntoIDs(puntoIDs []string) ([]models.Trayecto, error)
}

type TrayectoRepository struct {
	db *sqlx.DB
}

func NewTrayectoRepository(db *sqlx.DB) ITrayectoRepository {
	return &TrayectoRepository{
		db: db,
	}
}

func (r *TrayectoRepository) LastID() (string, error) {
	var id string
	err := r.db.Get(&id, "SELECT id FROM trayecto ORDER BY id DESC LIMIT 1")
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to fetch last trayecto id: %w", err)
	}
	return id, nil
}

func (r *TrayectoRepository) Insert(t *models.Trayecto) error {
	query := `
        INSERT INTO trayecto (id, medio_transporte, duracion, distancia, id_punto_referencia)
        VALUES ($1, $2, $3, $4, $5)
    `
	err := utils.ExecWithCheck(r.db, query, utils.ExecInsert, t.ID, t.MedioTransporte, t.Duracion, t.Distancia, t.IDPuntoReferencia)
	if err != nil {
		return fmt.Errorf("failed to insert trayecto: %w", err)
	}
	return nil
}

// UpdateByReferencia updates whichever trayecto rows carry the reference
// point FK; the one-to-one assumption is not enforced at this layer.
func (r *TrayectoRepository) UpdateByReferencia(t *models.Trayecto, idReferencia string) error {
	query := `
        UPDATE trayecto
        SET medio_transporte = $1, duracion = $2, distancia = $3
        WHERE id_punto_referencia = $4
    `
	if err := utils.ExecWithCheck(r.db, query, utils.ExecUpdate, t.MedioTransporte, t.Duracion, t.Distancia, idReferencia); err != nil {
		return fmt.Errorf("failed to update trayecto for referencia %s: %w", idReferencia, err)
	}
	return nil
}

func (r *TrayectoRepository) GetByID(id string) (*models.Trayecto, error) {
	var trayecto models.Trayecto
	err := r.db.Get(&trayecto, "SELECT * FROM trayecto WHERE id = $1", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &trayecto, nil
}

func (r *TrayectoRepository) ListByPuntoIDs(puntoIDs []string) ([]models.Trayecto, error) {
	if len(puntoIDs) == 0 {
		return []models.Trayecto{}, nil
	}
	query, args, err := sqlx.In("SELECT * FROM trayecto WHERE id_punto_referencia IN (?)", puntoIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build trayectos query: %w", err)
	}
	trayectos := []models.Trayecto{}
	if err := r.db.Select(&trayectos, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list trayectos: %w", err)
	}
	return trayectos, nil
}
