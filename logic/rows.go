package logic

import (
	"fmt"

	"github.com/jackc/pgx/v5"

	"bizobj/immutable"
)

// CollectList reads every row with fn into a list, keeping row order. The
// rows are closed before returning.
func CollectList[E any](rows pgx.Rows, fn pgx.RowToFunc[E]) (immutable.List[E], error) {
	items, err := pgx.CollectRows(rows, fn)
	if err != nil {
		return EmptyList[E](), fmt.Errorf("error collecting rows into list %w", err)
	}
	return immutable.ListOf(items...), nil
}

// CollectSet is CollectList for sets; duplicate rows collapse.
func CollectSet[E comparable](rows pgx.Rows, fn pgx.RowToFunc[E]) (immutable.Set[E], error) {
	items, err := pgx.CollectRows(rows, fn)
	if err != nil {
		return EmptySet[E](), fmt.Errorf("error collecting rows into set %w", err)
	}
	return immutable.SetOf(items...), nil
}
