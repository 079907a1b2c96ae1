package loader

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/raywall/fixture-toolkit/pkg/config"
	"github.com/raywall/fixture-toolkit/pkg/dataset"
	"github.com/raywall/fixture-toolkit/pkg/placeholder"
	"github.com/raywall/fixture-toolkit/pkg/sink"
	"github.com/rs/zerolog"
)

// Engine denormaliza um dataset relacional para o keyspace de destino
// seguindo um MappingSpec imutável, fixado na construção. Uma carga é
// síncrona e sem estado compartilhado: cada chamada de Load tem seus
// próprios acumuladores, então o engine dispensa locking.
type Engine struct {
	mapping *config.MappingSpec
	sink    sink.Sink
	log     zerolog.Logger
}

// New cria o engine com o mapeamento já decodificado. Decodificação de
// arquivos é responsabilidade do colaborador (config.UniversalLoader).
func New(mapping *config.MappingSpec, s sink.Sink, log zerolog.Logger) *Engine {
	return &Engine{
		mapping: mapping,
		sink:    s,
		log:     log,
	}
}

// Result expõe os acumuladores de uma carga concluída, na ordem de primeira
// inserção das chaves. Eles não persistem entre chamadas de Load.
type Result struct {
	Hashes *HashAccumulator
	Sets   *SetAccumulator
}

// Load processa todo o dataset e, só depois de acumular tudo sem erro,
// escreve no destino: Clear opcional uma única vez, então todos os hashes e
// em seguida todos os sets. Qualquer erro de resolução ou duplicidade
// aborta a carga antes de qualquer escrita.
func (e *Engine) Load(ctx context.Context, ds *dataset.Dataset, cleanBefore bool) (*Result, error) {
	log := e.log.With().Str("load_id", uuid.NewString()).Logger()

	res := &Result{
		Hashes: newHashAccumulator(),
		Sets:   newSetAccumulator(),
	}

	// Fase 1: acumulação global, tabela a tabela, na ordem do dataset
	for _, table := range ds.Tables {
		tm, ok := e.findMapping(table.Name)
		if !ok {
			return nil, &UnmappedTableError{Table: table.Name}
		}
		if err := e.projectTable(table, tm, res); err != nil {
			return nil, err
		}
		log.Debug().
			Str("table", table.Name).
			Int("rows", len(table.Rows)).
			Msg("tabela projetada")
	}

	// Fase 2: limpeza opcional, exatamente uma vez, antes de qualquer escrita
	if cleanBefore {
		if err := e.sink.Clear(ctx); err != nil {
			return nil, fmt.Errorf("falha ao limpar o destino: %w", err)
		}
	}

	// Fase 3: escrita — todos os hashes antes de todos os sets
	for _, key := range res.Hashes.Keys() {
		fields, _ := res.Hashes.Fields(key)
		if err := e.sink.WriteFields(ctx, key, fields); err != nil {
			return nil, fmt.Errorf("falha ao gravar hash %q: %w", key, err)
		}
	}
	for _, key := range res.Sets.Keys() {
		members, _ := res.Sets.Members(key)
		if err := e.sink.WriteMembers(ctx, key, members); err != nil {
			return nil, fmt.Errorf("falha ao gravar set %q: %w", key, err)
		}
	}

	log.Info().
		Int("hash_keys", res.Hashes.Len()).
		Int("set_keys", res.Sets.Len()).
		Bool("clean", cleanBefore).
		Msg("carga concluída")

	return res, nil
}

func (e *Engine) findMapping(table string) (config.TableMapping, bool) {
	for _, tm := range e.mapping.Tables {
		if tm.Table == table {
			return tm, true
		}
	}
	return config.TableMapping{}, false
}

func (e *Engine) projectTable(table dataset.Table, tm config.TableMapping, res *Result) error {
	// Seletores valem para a tabela inteira; a forma é validada uma única vez
	hashCols := make([]string, len(tm.Hashes))
	for i, hp := range tm.Hashes {
		col, err := placeholder.SingleColumn(hp.Value)
		if err != nil {
			return fmt.Errorf("tabela %q: %w", table.Name, err)
		}
		hashCols[i] = col
	}
	setCols := make([]string, len(tm.Sets))
	for i, sp := range tm.Sets {
		col, err := placeholder.SingleColumn(sp.Member)
		if err != nil {
			return fmt.Errorf("tabela %q: %w", table.Name, err)
		}
		setCols[i] = col
	}

	for _, row := range table.Rows {
		for i, hp := range tm.Hashes {
			if err := e.projectHash(table.Name, hp, hashCols[i], row, res.Hashes); err != nil {
				return err
			}
		}
		for i, sp := range tm.Sets {
			if err := e.projectSet(table.Name, sp, setCols[i], row, res.Sets); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Engine) projectHash(tableName string, hp config.HashProjection, selCol string, row dataset.Row, acc *HashAccumulator) error {
	key, err := e.resolveKey(tableName, hp.Key, row)
	if err != nil {
		return err
	}

	cols, ok := selectColumns(selCol, row)
	if !ok {
		// Linha esparsa: coluna selecionada ausente, projeção sem saída
		return nil
	}

	for _, col := range cols {
		field := col // default: nome literal da coluna, sem resolução
		if hp.Field != "" {
			field, err = placeholder.ResolveTemplate(hp.Field, row)
			if err != nil {
				return fmt.Errorf("tabela %q: %w", tableName, err)
			}
		}

		value, _ := row.Get(col)
		if !acc.add(key, field, dataset.Render(value)) {
			return &DuplicateFieldError{Table: tableName, Key: key, Field: field}
		}
	}
	return nil
}

func (e *Engine) projectSet(tableName string, sp config.SetProjection, selCol string, row dataset.Row, acc *SetAccumulator) error {
	key, err := e.resolveKey(tableName, sp.Key, row)
	if err != nil {
		return err
	}

	cols, ok := selectColumns(selCol, row)
	if !ok {
		return nil
	}

	for _, col := range cols {
		value, _ := row.Get(col)
		member := dataset.Render(value)
		if !acc.add(key, member) {
			return &DuplicateMemberError{Table: tableName, Key: key, Member: member}
		}
	}
	return nil
}

func (e *Engine) resolveKey(tableName, keyTemplate string, row dataset.Row) (string, error) {
	if keyTemplate == "" {
		keyTemplate = tableName
	}
	key, err := placeholder.ResolveTemplate(keyTemplate, row)
	if err != nil {
		return "", fmt.Errorf("tabela %q: %w", tableName, err)
	}
	return key, nil
}

// selectColumns determina as colunas de origem de uma projeção: todas as
// colunas presentes na linha (seletor vazio) ou somente a selecionada.
// Retorna ok=false quando a coluna selecionada está ausente da linha.
func selectColumns(selCol string, row dataset.Row) ([]string, bool) {
	if selCol == "" {
		return row.Columns(), true
	}
	if !row.Has(selCol) {
		return nil, false
	}
	return []string{selCol}, true
}
