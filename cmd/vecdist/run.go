package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/viant/vecdist/config"
	"github.com/viant/vecdist/engine"
	"github.com/viant/vecdist/internal/logging"
)

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vecdist", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "path to YAML configuration")
		op         = fs.String("op", "<->", "operator token (<->, <#>, <=>) or metric name")
		left       = fs.String("left", "", "left vector, e.g. [0,1]")
		right      = fs.String("right", "", "right vector, e.g. [3,2]")
		query      = fs.String("query", "", "SQL query to run instead of a single distance")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger, err := logging.New(cfg.Logging, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	db, err := engine.Open(cfg.Database.DSN, engine.WithLogger(logger))
	if err != nil {
		logger.Error().Err(err).Msg("open failed")
		return 1
	}
	defer db.Close()

	ctx := context.Background()
	if *query != "" {
		err = runQuery(ctx, db, *query, stdout)
	} else {
		err = runDistance(ctx, db, *op, *left, *right, stdout)
	}
	if err != nil {
		logger.Error().Err(err).Msg("evaluation failed")
		return 1
	}
	return 0
}

func runDistance(ctx context.Context, db *sql.DB, op, left, right string, w io.Writer) error {
	if left == "" || right == "" {
		return errors.New("vecdist: -left and -right are required")
	}
	var d sql.NullFloat64
	q := fmt.Sprintf("SELECT %s(?, ?, ?)", engine.DistanceFunction)
	if err := db.QueryRowContext(ctx, q, op, left, right).Scan(&d); err != nil {
		return err
	}
	if !d.Valid {
		// SQLite reports a NaN result as NULL.
		_, err := fmt.Fprintln(w, "NaN")
		return err
	}
	_, err := fmt.Fprintln(w, strconv.FormatFloat(d.Float64, 'g', -1, 32))
	return err
}

func runQuery(ctx context.Context, db *sql.DB, query string, w io.Writer) error {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()
	cols, err := rows.Columns()
	if err != nil {
		return err
	}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return err
		}
		fields := make([]string, len(values))
		for i, v := range values {
			fields[i] = formatValue(v)
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}
	return rows.Err()
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
