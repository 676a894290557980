package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Generation is one recorded nonzerogen run.
type Generation struct {
	ID         string `json:"id"`
	Seq        int64  `json:"seq"`
	DeclHash   string `json:"decl_hash"`
	Source     string `json:"source"`
	Output     string `json:"output"`
	Package    string `json:"package"`
	DeclCount  int    `json:"decl_count"`
	OutputHash string `json:"output_hash"`
}

// RecordGeneration appends g to the ledger and returns it with ID and Seq
// filled in. A caller-supplied ID is kept; Seq is always assigned here.
func (s *Store) RecordGeneration(ctx context.Context, g Generation) (Generation, error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Generation{}, fmt.Errorf("record generation: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) + 1 FROM generations`,
	).Scan(&g.Seq); err != nil {
		return Generation{}, fmt.Errorf("record generation: next seq: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO generations
		(id, seq, decl_hash, source, output, package, decl_count, output_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		g.ID,
		g.Seq,
		g.DeclHash,
		g.Source,
		g.Output,
		g.Package,
		g.DeclCount,
		g.OutputHash,
	)
	if err != nil {
		return Generation{}, fmt.Errorf("record generation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Generation{}, fmt.Errorf("record generation: commit: %w", err)
	}

	return g, nil
}

// LatestGeneration returns the most recent run that wrote output.
// Returns sql.ErrNoRows if there is none.
func (s *Store) LatestGeneration(ctx context.Context, output string) (Generation, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, seq, decl_hash, source, output, package, decl_count, output_hash
		FROM generations
		WHERE output = ?
		ORDER BY seq DESC, id COLLATE BINARY DESC
		LIMIT 1
	`, output)

	var g Generation
	if err := scanGeneration(row, &g); err != nil {
		return Generation{}, err
	}
	return g, nil
}

// Generations returns the whole ledger in seq order. limit <= 0 means no
// limit; otherwise only the last limit runs are returned, still in seq order.
//
// Returns an empty slice (not nil) if the ledger is empty.
func (s *Store) Generations(ctx context.Context, limit int) ([]Generation, error) {
	query := `
		SELECT id, seq, decl_hash, source, output, package, decl_count, output_hash
		FROM generations
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`
	args := []any{}
	if limit > 0 {
		query = `
			SELECT id, seq, decl_hash, source, output, package, decl_count, output_hash
			FROM (
				SELECT * FROM generations
				ORDER BY seq DESC, id COLLATE BINARY DESC
				LIMIT ?
			)
			ORDER BY seq ASC, id COLLATE BINARY ASC
		`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query generations: %w", err)
	}
	defer rows.Close()

	gens := []Generation{}
	for rows.Next() {
		var g Generation
		if err := scanGeneration(rows, &g); err != nil {
			return nil, err
		}
		gens = append(gens, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate generations: %w", err)
	}

	return gens, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGeneration(row scanner, g *Generation) error {
	err := row.Scan(
		&g.ID,
		&g.Seq,
		&g.DeclHash,
		&g.Source,
		&g.Output,
		&g.Package,
		&g.DeclCount,
		&g.OutputHash,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if err != nil {
		return fmt.Errorf("scan generation: %w", err)
	}
	return nil
}
