package repository

import (
	"brigada-service/internal/models"
	"brigada-service/utils"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type IMuestraRepository interface {
	LastID() (string, error)
	Insert(m *models.Muestra) error
}

type MuestraRepository struct {
	db *sqlx.DB
}

func NewMuestraRepository(db *sqlx.DB) IMuestraRepository {
	return &MuestraRepository{
		db: db,
	}
}

func (r *MuestraRepository) LastID() (string, error) {
	var id string
	err := r.db.Get(&id, "SELECT id FROM muestra ORDER BY id DESC LIMIT 1")
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to fetch last muestra id: %w", err)
	}
	return id, nil
}

func (r *MuestraRepository) Insert(m *models.Muestra) error {
	query := `
        INSERT INTO muestra (id, nombre_comun, determinacion, observaciones, num_coleccion, id_arbol)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	err := utils.ExecWithCheck(r.db, query, utils.ExecInsert, m.ID, m.NombreComun, m.Determinacion, m.Observaciones, m.NumColeccion, m.IDArbol)
	if err != nil {
		return fmt.Errorf("failed to insert muestra: %w", err)
	}
	return nil
}
