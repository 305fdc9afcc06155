package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tiendashellx/pos-api/internal/domain/repository"
)

var _ repository.ActivationCodeRepository = (*ActivationCodeRepo)(nil)

// ActivationCodeRepo implementación del puerto ActivationCodeRepository sobre PostgreSQL.
type ActivationCodeRepo struct {
	q Querier
}

// NewActivationCodeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewActivationCodeRepository(q Querier) *ActivationCodeRepo {
	return &ActivationCodeRepo{q: q}
}

// Consume marca el código como usado solo si aún no lo estaba. El predicado
// used = false en el UPDATE hace el consumo atómico: dos registros
// concurrentes con el mismo código nunca obtienen true los dos.
func (r *ActivationCodeRepo) Consume(code, usedBy string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE activation_codes SET used = true, used_by = $2, used_at = now()
		 WHERE upper(code) = upper($1) AND used = false`,
		code, usedBy,
	)
	if err != nil {
		return false, fmt.Errorf("consume activation code: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// EnsureDefaults inserta los códigos iniciales si la tabla está vacía.
func (r *ActivationCodeRepo) EnsureDefaults(codes []string) error {
	n, err := r.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, code := range codes {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO activation_codes (id, code, used) VALUES ($1, $2, false)
			 ON CONFLICT (code) DO NOTHING`,
			uuid.New().String(), code,
		)
		if err != nil {
			return fmt.Errorf("seed activation code: %w", err)
		}
	}
	return nil
}

// Count cuenta los códigos registrados.
func (r *ActivationCodeRepo) Count() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM activation_codes`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count activation codes: %w", err)
	}
	return n, nil
}
