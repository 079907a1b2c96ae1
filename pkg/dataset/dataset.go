package dataset

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
	yaml "gopkg.in/yaml.v2"
)

// Dataset representa o conteúdo decodificado de um arquivo de massa de dados:
// uma sequência de tabelas nomeadas, cada uma com suas linhas na ordem do arquivo.
type Dataset struct {
	Tables []Table
}

// Table é uma tabela nomeada com linhas ordenadas.
type Table struct {
	Name string
	Rows []Row
}

// Row é um mapa ordenado de coluna -> valor escalar.
// Colunas ausentes significam "sem valor" para aquela linha (nunca um null explícito).
type Row struct {
	cols *orderedmap.OrderedMap[string, interface{}]
}

// NewRow cria uma linha vazia.
func NewRow() Row {
	return Row{cols: orderedmap.NewOrderedMap[string, interface{}]()}
}

// Set adiciona uma coluna. Retorna false se a coluna já existia.
func (r Row) Set(name string, value interface{}) bool {
	if _, ok := r.cols.Get(name); ok {
		return false
	}
	return r.cols.Set(name, value)
}

// Get retorna o valor bruto de uma coluna e se ela está presente.
func (r Row) Get(name string) (interface{}, bool) {
	return r.cols.Get(name)
}

// Has informa se a coluna está presente na linha.
func (r Row) Has(name string) bool {
	_, ok := r.cols.Get(name)
	return ok
}

// Columns retorna os nomes das colunas na ordem de inserção.
func (r Row) Columns() []string {
	return r.cols.Keys()
}

// Len retorna o número de colunas presentes.
func (r Row) Len() int {
	return r.cols.Len()
}

// Render converte um valor escalar para sua forma canônica de exibição.
// Sem aspas e sem escape: "42" para o inteiro 42, "true" para o booleano.
func Render(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Parse decodifica um documento YAML no formato
//
//	tabela:
//	  - {col: valor, ...}
//
// preservando a ordem das tabelas, das linhas e das colunas dentro de cada
// linha. Valores nulos são tratados como coluna ausente.
func Parse(data []byte) (*Dataset, error) {
	var doc yaml.MapSlice
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("dataset YAML malformado: %w", err)
	}

	ds := &Dataset{}
	seen := make(map[string]bool)

	for _, item := range doc {
		name, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("nome de tabela inválido: %v", item.Key)
		}
		if seen[name] {
			return nil, fmt.Errorf("tabela duplicada no dataset: %q", name)
		}
		seen[name] = true

		table := Table{Name: name}

		// Tabela sem linhas (valor nulo) é válida, apenas vazia
		if item.Value != nil {
			rawRows, ok := item.Value.([]interface{})
			if !ok {
				return nil, fmt.Errorf("tabela %q: esperada uma lista de linhas", name)
			}
			for i, rawRow := range rawRows {
				row, err := parseRow(rawRow)
				if err != nil {
					return nil, fmt.Errorf("tabela %q, linha %d: %w", name, i, err)
				}
				table.Rows = append(table.Rows, row)
			}
		}

		ds.Tables = append(ds.Tables, table)
	}

	return ds, nil
}

func parseRow(raw interface{}) (Row, error) {
	ms, ok := raw.(yaml.MapSlice)
	if !ok {
		return Row{}, fmt.Errorf("esperado um mapa coluna->valor, recebido %T", raw)
	}

	row := NewRow()
	for _, item := range ms {
		col, ok := item.Key.(string)
		if !ok {
			return Row{}, fmt.Errorf("nome de coluna inválido: %v", item.Key)
		}
		// null explícito equivale a coluna ausente
		if item.Value == nil {
			continue
		}
		if !row.Set(col, item.Value) {
			return Row{}, fmt.Errorf("coluna duplicada: %q", col)
		}
	}
	return row, nil
}
