package repository

import (
	"brigada-service/internal/models"
	"brigada-service/utils"
	"database/sql"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
)

type IBrigadistaRepository interface {
	GetByUID(uid string) (*models.Brigadista, error)
	GetNombreByUID(uid string) (string, error)
	GetBrigada(id string) (*models.Brigada, error)
	ListBrigadaIDsByConglomerado(idConglomerado string) ([]string, error)
	ListCedulasByBrigada(idBrigada string) ([]string, error)
	ListCedulasByBrigadas(brigadaIDs []string) ([]string, error)
	UpdateTutorialByUID(uid string, completado bool) error
	UpdateTutorialByBrigada(idBrigada string, completado bool) error
}

type BrigadistaRepository struct {
	db *sqlx.DB
}

func NewBrigadistaRepository(db *sqlx.DB) IBrigadistaRepository {
	return &BrigadistaRepository{
		db: db,
	}
}

func (r *BrigadistaRepository) GetByUID(uid string) (*models.Brigadista, error) {
	var brigadista models.Brigadista
	err := r.db.Get(&brigadista, `SELECT "UID", nombre, id_brigada, rol, cedula, tutorial_completado FROM brigadista WHERE "UID" = $1`, uid)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		log.Printf("Error fetching brigadista by UID %s: %v", uid, err)
		return nil, err
	}
	return &brigadista, nil
}

func (r *BrigadistaRepository) GetNombreByUID(uid string) (string, error) {
	var nombre string
	err := r.db.Get(&nombre, `SELECT nombre FROM brigadista WHERE "UID" = $1`, uid)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return nombre, nil
}

func (r *BrigadistaRepository) GetBrigada(id string) (*models.Brigada, error) {
	var brigada models.Brigada
	err := r.db.Get(&brigada, "SELECT id, id_conglomerado FROM brigada WHERE id = $1", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &brigada, nil
}

func (r *BrigadistaRepository) ListBrigadaIDsByConglomerado(idConglomerado string) ([]string, error) {
	ids := []string{}
	err := r.db.Select(&ids, "SELECT id FROM brigada WHERE id_conglomerado = $1", idConglomerado)
	if err != nil {
		return nil, fmt.Errorf("failed to list brigadas for conglomerado %s: %w", idConglomerado, err)
	}
	return ids, nil
}

func (r *BrigadistaRepository) ListCedulasByBrigada(idBrigada string) ([]string, error) {
	cedulas := []string{}
	err := r.db.Select(&cedulas, "SELECT cedula FROM brigadista WHERE id_brigada = $1", idBrigada)
	if err != nil {
		return nil, fmt.Errorf("failed to list cedulas for brigada %s: %w", idBrigada, err)
	}
	return cedulas, nil
}

func (r *BrigadistaRepository) ListCedulasByBrigadas(brigadaIDs []string) ([]string, error) {
	if len(brigadaIDs) == 0 {
		return []string{}, nil
	}
	query, args, err := sqlx.In("SELECT cedula FROM brigadista WHERE id_brigada IN (?)", brigadaIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build cedulas query: %w", err)
	}
	cedulas := []string{}
	if err := r.db.Select(&cedulas, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list cedulas for brigadas: %w", err)
	}
	return cedulas, nil
}

func (r *BrigadistaRepository) UpdateTutorialByUID(uid string, completado bool) error {
	if err := utils.ExecWithCheck(r.db, `UPDATE brigadista SET tutorial_completado = $1 WHERE "UID" = $2`, utils.ExecUpdate, completado, uid); err != nil {
		return fmt.Errorf("failed to update tutorial flag for brigadista: %w", err)
	}
	return nil
}

func (r *BrigadistaRepository) UpdateTutorialByBrigada(idBrigada string, completado bool) error {
	if err := utils.ExecWithCheck(r.db, "UPDATE brigadista SET tutorial_completado = $1 WHERE id_brigada = $2", utils.ExecUpdate, completado, idBrigada); err != nil {
		return fmt.Errorf("failed to update tutorial flag for brigada %s: %w", idBrigada, err)
	}
	return nil
}
