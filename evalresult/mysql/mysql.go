//
// Tencent is pleased to support the open source community by making trpc-agent-judge available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-judge is licensed under the Apache License Version 2.0.
//
//

// Package mysql provides a MySQL-backed storage implementation for
// evaluation results.
package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	// Register the MySQL driver.
	_ "github.com/go-sql-driver/mysql"

	"trpc.group/trpc-go/trpc-agent-judge/dimension"
	"trpc.group/trpc-go/trpc-agent-judge/epochtime"
	"trpc.group/trpc-go/trpc-agent-judge/evalresult"
)

const tableNameResults = "results"

const sqlCreateResultsTable = `CREATE TABLE IF NOT EXISTS %s (
	id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
	request_id VARCHAR(255) NOT NULL,
	input_index INT NOT NULL,
	model_name VARCHAR(255) NOT NULL DEFAULT '',
	dimension_scores JSON NULL,
	score DOUBLE NOT NULL DEFAULT 0,
	created_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
	updated_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6) ON UPDATE CURRENT_TIMESTAMP(6),
	PRIMARY KEY (id),
	UNIQUE KEY uniq_results_request_input (request_id, input_index)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

var _ evalresult.Manager = (*manager)(nil)

type manager struct {
	opts  options
	db    *sql.DB
	table string
}

// New creates a MySQL-backed evaluation result manager.
func New(opt ...Option) (evalresult.Manager, error) {
	opts := newOptions(opt...)
	if opts.dsn == "" {
		return nil, errors.New("mysql dsn is empty")
	}
	db, err := sql.Open("mysql", opts.dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql connection failed: %w", err)
	}
	m := &manager{
		opts:  *opts,
		db:    db,
		table: opts.tablePrefix + tableNameResults,
	}
	if !opts.skipDBInit {
		ctx, cancel := context.WithTimeout(context.Background(), opts.initTimeout)
		defer cancel()
		if err := m.ensureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("init database failed: %w", err)
		}
	}
	return m, nil
}

// Close releases the underlying database connection.
func (m *manager) Close() error {
	if m.db == nil {
		return nil
	}
	return m.db.Close()
}

func (m *manager) ensureSchema(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, fmt.Sprintf(sqlCreateResultsTable, m.table))
	return err
}

// Save upserts an evaluation result into MySQL.
func (m *manager) Save(ctx context.Context, result *evalresult.Result) error {
	if result == nil {
		return errors.New("result is nil")
	}
	if result.RequestID == "" {
		return errors.New("result request id is empty")
	}
	scores := result.DimensionScores
	if scores == nil {
		scores = map[dimension.Dimension]*dimension.Score{}
	}
	scorePayload, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("marshal dimension scores: %w", err)
	}
	query := fmt.Sprintf(
		`INSERT INTO %s (request_id, input_index, model_name, dimension_scores, score)
		 VALUES (?, ?, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE
		   model_name = VALUES(model_name),
		   dimension_scores = VALUES(dimension_scores),
		   score = VALUES(score),
		   updated_at = CURRENT_TIMESTAMP(6)`,
		m.table,
	)
	if _, err := m.db.ExecContext(ctx, query,
		result.RequestID, result.InputIndex, result.ModelName, scorePayload, result.Score); err != nil {
		return fmt.Errorf("store result %s.%d: %w", result.RequestID, result.InputIndex, err)
	}
	return nil
}

// Get loads a single evaluation result from MySQL.
func (m *manager) Get(ctx context.Context, requestID string, inputIndex int) (*evalresult.Result, error) {
	if requestID == "" {
		return nil, errors.New("request id is empty")
	}
	query := fmt.Sprintf(
		"SELECT model_name, dimension_scores, score, created_at FROM %s WHERE request_id = ? AND input_index = ?",
		m.table,
	)
	row := m.db.QueryRowContext(ctx, query, requestID, inputIndex)
	res, err := scanResult(row.Scan, requestID, inputIndex)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("result %s.%d not found: %w", requestID, inputIndex, os.ErrNotExist)
		}
		return nil, fmt.Errorf("load result %s.%d: %w", requestID, inputIndex, err)
	}
	return res, nil
}

// List returns all stored results for a request ordered by input index.
func (m *manager) List(ctx context.Context, requestID string) ([]*evalresult.Result, error) {
	if requestID == "" {
		return nil, errors.New("request id is empty")
	}
	query := fmt.Sprintf(
		"SELECT input_index, model_name, dimension_scores, score, created_at FROM %s WHERE request_id = ? ORDER BY input_index ASC",
		m.table,
	)
	rows, err := m.db.QueryContext(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("list results for request %s: %w", requestID, err)
	}
	defer rows.Close()
	results := []*evalresult.Result{}
	for rows.Next() {
		var inputIndex int
		res, err := scanResult(func(dest ...any) error {
			return rows.Scan(append([]any{&inputIndex}, dest...)...)
		}, requestID, 0)
		if err != nil {
			return nil, fmt.Errorf("scan result for request %s: %w", requestID, err)
		}
		res.InputIndex = inputIndex
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list results for request %s: %w", requestID, err)
	}
	return results, nil
}

func scanResult(scan func(dest ...any) error, requestID string, inputIndex int) (*evalresult.Result, error) {
	var (
		modelName    string
		scorePayload []byte
		score        float64
		createdAt    time.Time
	)
	if err := scan(&modelName, &scorePayload, &score, &createdAt); err != nil {
		return nil, err
	}
	scores := map[dimension.Dimension]*dimension.Score{}
	if len(scorePayload) > 0 {
		if err := json.Unmarshal(scorePayload, &scores); err != nil {
			return nil, fmt.Errorf("unmarshal dimension scores: %w", err)
		}
	}
	return &evalresult.Result{
		RequestID:         requestID,
		InputIndex:        inputIndex,
		ModelName:         modelName,
		DimensionScores:   scores,
		Score:             score,
		CreationTimestamp: &epochtime.EpochTime{Time: createdAt},
	}, nil
}
