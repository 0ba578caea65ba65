package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/campus-store/internal/domain/entity"
	"github.com/jhoicas/campus-store/internal/domain/repository"
)

// Suma los totales de la lista JSON de órdenes agrupados por estado. Sin estado = pending.
const revenueByStatusQuery = `
	SELECT COALESCE(NULLIF(o->>'status', ''), $2) AS status,
	       COALESCE(SUM((o->>'total')::numeric), 0) AS revenue
	FROM kv_entries, jsonb_array_elements(value::jsonb) AS o
	WHERE key = $1
	GROUP BY 1`

// RevenueByStatus calcula en PostgreSQL los ingresos por estado de "polytechnic-orders".
// NUMERIC se lee como decimal.Decimal con el codec registrado en NewPool.
func (s *KVStore) RevenueByStatus(ctx context.Context) (map[string]decimal.Decimal, error) {
	rows, err := s.q.Query(ctx, revenueByStatusQuery, repository.KeyOrders, entity.OrderStatusPending)
	if err != nil {
		return nil, fmt.Errorf("ingresos por estado: %w", err)
	}
	defer rows.Close()

	out := make(map[string]decimal.Decimal)
	for rows.Next() {
		var (
			status  string
			revenue decimal.Decimal
		)
		if err := rows.Scan(&status, &revenue); err != nil {
			return nil, fmt.Errorf("ingresos por estado: %w", err)
		}
		out[status] = revenue
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ingresos por estado: %w", err)
	}
	return out, nil
}
