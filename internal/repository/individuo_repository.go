package repository

import (
	"brigada-service/internal/models"
	"brigada-service/utils"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type IIndividuoRepository interface {
	LastArbolID() (string, error)
	LastRegistroID() (string, error)
	InsertArbol(a *models.Arbol) error
	InsertRegistro(reg *models.Registro) error
	ListBySubparcelas(subparcelaIDs []string) ([]models.Arbol, error)
}

type IndividuoRepository struct {
	db *sqlx.DB
}

func NewIndividuoRepository(db *sqlx.DB) IIndividuoRepository {
	return &IndividuoRepository{
		db: db,
	}
}

func (r *IndividuoRepository) LastArbolID() (string, error) {
	var id string
	err := r.db.Get(&id, "SELECT id FROM arbol ORDER BY id DESC LIMIT 1")
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to fetch last arbol id: %w", err)
	}
	return id, nil
}

func (r *IndividuoRepository) LastRegistroID() (string, error) {
	var id string
	err := r.db.Get(&id, "SELECT id FROM registro ORDER BY id DESC LIMIT 1")
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to fetch last registro id: %w", err)
	}
	return id, nil
}

func (r *IndividuoRepository) InsertArbol(a *models.Arbol) error {
	query := `
        INSERT INTO arbol (
            id,
            "tamaño_individuo",
            condicion,
            azimut,
            distancia_del_centro,
            tallo,
            diametro,
            altura_total,
            forma_fuste,
            "daño",
            penetracion,
            id_subparcela
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `
	err := utils.ExecWithCheck(
		r.db,
		query,
		utils.ExecInsert,
		a.ID,
		a.TamanoIndividuo,
		a.Condicion,
		a.Azimut,
		a.DistanciaDelCentro,
		a.Tallo,
		a.Diametro,
		a.AlturaTotal,
		a.FormaFuste,
		a.Dano,
		a.Penetracion,
		a.IDSubparcela,
	)
	if err != nil {
		return fmt.Errorf("failed to insert arbol: %w", err)
	}
	return nil
}

func (r *IndividuoRepository) InsertRegistro(reg *models.Registro) error {
	query := `
        INSERT INTO registro (id, distancia_horizontal, angulo_vista_abajo, angulo_vista_arriba, cedula_brigadista, id_arbol)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	err := utils.ExecWithCheck(
		r.db,
		query,
		utils.ExecInsert,
		reg.ID,
		reg.DistanciaHorizontal,
		reg.AnguloVistaAbajo,
		reg.AnguloVistaArriba,
		reg.CedulaBrigadista,
		reg.IDArbol,
	)
	if err != nil {
		return fmt.Errorf("failed to insert registro: %w", err)
	}
	return nil
}

func (r *IndividuoRepository) ListBySubparcelas(subparcelaIDs []string) ([]models.Arbol, error) {
	if len(subparcelaIDs) == 0 {
		return []models.Arbol{}, nil
	}
	query, args, err := sqlx.In("SELECT * FROM arbol WHERE id_subparcela IN (?)", subparcelaIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build arboles query: %w", err)
	}
	arboles := []models.Arbol{}
	if err := r.db.Select(&arboles, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list arboles: %w", err)
	}
	return arboles, nil
}
