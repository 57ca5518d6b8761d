package core

import (
	"context"
	"time"

	"github.com/JonMunkholm/auctionboard/internal/metrics"
	"github.com/JonMunkholm/auctionboard/internal/smarttable"
)

// LoadFunc fetches the rows of a view for one user.
type LoadFunc[T any] func(ctx context.Context, userID int64) ([]T, error)

type grid[T any] struct {
	info  ViewInfo
	table *smarttable.Table[T]
	load  LoadFunc[T]
	now   smarttable.Clock
}

// NewGrid binds a table configuration and a row loader to a view.
func NewGrid[T any](info ViewInfo, cfg smarttable.Config[T], load LoadFunc[T], now smarttable.Clock) (Grid, error) {
	table, err := smarttable.NewTable(cfg)
	if err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}
	return &grid[T]{info: info, table: table, load: load, now: now}, nil
}

func (g *grid[T]) Info() ViewInfo {
	return g.info
}

func (g *grid[T]) Load(ctx context.Context, userID int64) error {
	if g.load == nil {
		return ErrNoSource
	}
	rows, err := g.load(ctx, userID)
	metrics.ObserveRowLoad(g.info.Key, err)
	if err != nil {
		return err
	}
	g.table.SetRows(rows)
	return nil
}

func (g *grid[T]) SetSort(column string, dir smarttable.Direction) error {
	err := g.table.SetSort(column, dir)
	metrics.ObserveTransition(g.info.Key, "sort", err)
	return err
}

func (g *grid[T]) ClearSort() {
	g.table.ClearSort()
	metrics.ObserveTransition(g.info.Key, "clear_sort", nil)
}

func (g *grid[T]) ToggleFilter(value string) error {
	if !g.table.Filtering() {
		metrics.ObserveTransition(g.info.Key, "filter", ErrNoFilter)
		return ErrNoFilter
	}
	g.table.ToggleFilterValue(value)
	metrics.ObserveTransition(g.info.Key, "filter", nil)
	return nil
}

func (g *grid[T]) SetFilters(values []string) error {
	if !g.table.Filtering() {
		metrics.ObserveTransition(g.info.Key, "filter", ErrNoFilter)
		return ErrNoFilter
	}
	g.table.SetAllowedFilterValues(values...)
	metrics.ObserveTransition(g.info.Key, "filter", nil)
	return nil
}

func (g *grid[T]) Snapshot() Snapshot {
	start := time.Now()
	rows := g.table.Rows()
	sort := g.table.SortState()

	mode := "column"
	if sort.IsGrouped() {
		mode = "grouped"
	}
	defer func() { metrics.ObserveRecompute(g.info.Key, mode, time.Since(start)) }()

	cols := g.table.Columns()
	snap := Snapshot{
		View:        g.info,
		Sort:        SortView{Grouped: sort.IsGrouped(), Column: sort.Column, Direction: string(sort.Direction)},
		Columns:     make([]ColumnView, len(cols)),
		Rows:        make([]RowView, len(rows)),
		Total:       g.table.Len(),
		GeneratedAt: g.now(),
	}

	for i, col := range cols {
		cv := ColumnView{
			Key:       col.Key,
			Header:    col.Header,
			Sortable:  col.IsSortable(),
			HasFilter: g.table.Filtering() && col.Key == g.info.FilterColumn,
		}
		if !sort.IsGrouped() && sort.Column == col.Key {
			cv.Direction = string(sort.Direction)
		}
		snap.Columns[i] = cv
	}

	for _, opt := range g.table.FilterOptions() {
		snap.Filters = append(snap.Filters, FilterView{
			Label:   opt.Label,
			Value:   opt.Value,
			Checked: g.table.FilterAllows(opt.Value),
		})
	}

	for i, row := range rows {
		cells := make([]smarttable.Cell, len(cols))
		for j, col := range cols {
			cells[j] = toCell(col.Display(row))
		}
		snap.Rows[i] = RowView{Cells: cells}
	}

	snap.Empty = emptyState(g.info, snap.Total, len(rows))
	return snap
}
