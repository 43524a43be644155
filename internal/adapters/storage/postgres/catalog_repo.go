package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pet-crate-compliance/internal/domain/crates"
)

// CatalogRepo lee la tabla crate_models (ver migrations/001_crate_models.sql).
type CatalogRepo struct {
	db *sql.DB
}

func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

// Load devuelve los modelos activos en el orden de position, que es el
// orden de desempate del matcher.
func (r *CatalogRepo) Load(ctx context.Context) ([]crates.CrateCatalogEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			model_id, name,
			interior_length_cm, interior_width_cm, interior_height_cm,
			max_weight_kg, material,
			giant_capable, enhanced_ventilation
		FROM crate_models
		WHERE active
		ORDER BY position ASC, model_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: query crate_models: %w", err)
	}
	defer rows.Close()

	out := make([]crates.CrateCatalogEntry, 0)
	for rows.Next() {
		var (
			e        crates.CrateCatalogEntry
			material string
		)
		if err := rows.Scan(
			&e.ModelID,
			&e.Name,
			&e.InteriorDimensions.Length,
			&e.InteriorDimensions.Width,
			&e.InteriorDimensions.Height,
			&e.MaxWeightKg,
			&material,
			&e.IsGiantCapable,
			&e.HasEnhancedVentilation,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan crate_models: %w", err)
		}
		e.MaterialClass = crates.MaterialClass(material)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate crate_models: %w", err)
	}

	return out, nil
}

// Upsert inserta o actualiza modelos conservando el orden recibido y desactiva
// los que no vienen en entries. Lo usa cratectl para sembrar la tabla desde un YAML.
func (r *CatalogRepo) Upsert(ctx context.Context, entries []crates.CrateCatalogEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for i, e := range entries {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO crate_models (
				model_id, name,
				interior_length_cm, interior_width_cm, interior_height_cm,
				max_weight_kg, material,
				giant_capable, enhanced_ventilation,
				position, active
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,true)
			ON CONFLICT (model_id) DO UPDATE SET
				name = EXCLUDED.name,
				interior_length_cm = EXCLUDED.interior_length_cm,
				interior_width_cm = EXCLUDED.interior_width_cm,
				interior_height_cm = EXCLUDED.interior_height_cm,
				max_weight_kg = EXCLUDED.max_weight_kg,
				material = EXCLUDED.material,
				giant_capable = EXCLUDED.giant_capable,
				enhanced_ventilation = EXCLUDED.enhanced_ventilation,
				position = EXCLUDED.position,
				active = true
		`,
			e.ModelID,
			e.Name,
			e.InteriorDimensions.Length,
			e.InteriorDimensions.Width,
			e.InteriorDimensions.Height,
			e.MaxWeightKg,
			string(e.MaterialClass),
			e.IsGiantCapable,
			e.HasEnhancedVentilation,
			i,
		)
		if err != nil {
			return fmt.Errorf("postgres: upsert %s: %w", e.ModelID, err)
		}
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ModelID)
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE crate_models SET active = false
		WHERE active AND NOT (model_id = ANY($1))
	`, ids); err != nil {
		return fmt.Errorf("postgres: deactivate stale models: %w", err)
	}

	return tx.Commit()
}
