package sink

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/raywall/fixture-toolkit/pkg/config"
	"github.com/raywall/fixture-toolkit/pkg/dataset"
)

// PostgresLoader grava um dataset 1:1 em tabelas relacionais: um INSERT por
// linha, colunas na ordem da linha, valores na forma de exibição. Não há
// algoritmo de mapeamento aqui; as tabelas de destino devem existir.
type PostgresLoader struct {
	db *sql.DB
}

// NewPostgresLoader abre a conexão a partir da configuração de destino.
func NewPostgresLoader(cfg config.PostgresConf) (*PostgresLoader, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres: erro ao abrir conexão: %w", err)
	}
	return &PostgresLoader{db: db}, nil
}

// LoadDataset insere todas as linhas de todas as tabelas, na ordem do
// dataset. Com clean, cada tabela é esvaziada antes dos inserts.
func (l *PostgresLoader) LoadDataset(ctx context.Context, ds *dataset.Dataset, clean bool) error {
	for _, table := range ds.Tables {
		if clean {
			if _, err := l.db.ExecContext(ctx, "DELETE FROM "+pq.QuoteIdentifier(table.Name)); err != nil {
				return fmt.Errorf("postgres: falha ao limpar tabela %q: %w", table.Name, err)
			}
		}

		for i, row := range table.Rows {
			if row.Len() == 0 {
				continue
			}
			if err := l.insertRow(ctx, table.Name, row); err != nil {
				return fmt.Errorf("postgres: tabela %q, linha %d: %w", table.Name, i, err)
			}
		}
	}
	return nil
}

func (l *PostgresLoader) insertRow(ctx context.Context, table string, row dataset.Row) error {
	cols := row.Columns()

	quoted := make([]string, len(cols))
	params := make([]string, len(cols))
	args := make([]interface{}, len(cols))
	for i, col := range cols {
		quoted[i] = pq.QuoteIdentifier(col)
		params[i] = fmt.Sprintf("$%d", i+1)
		v, _ := row.Get(col)
		args[i] = dataset.Render(v)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		pq.QuoteIdentifier(table),
		strings.Join(quoted, ", "),
		strings.Join(params, ", "))

	_, err := l.db.ExecContext(ctx, query, args...)
	return err
}

// Close libera a conexão com o banco.
func (l *PostgresLoader) Close() error {
	return l.db.Close()
}
