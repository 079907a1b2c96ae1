package dataset_test

import (
	"testing"

	"github.com/raywall/fixture-toolkit/pkg/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
users:
  - {id: 1, name: "John", age: 42}
  - {id: 2, name: "Jane"}
orders:
  - {id: 10, user_id: 1, total: 99.9, paid: true}
`

func TestParse(t *testing.T) {
	ds, err := dataset.Parse([]byte(sampleYAML))
	require.NoError(t, err)
	require.Len(t, ds.Tables, 2)

	t.Run("Ordem Das Tabelas", func(t *testing.T) {
		assert.Equal(t, "users", ds.Tables[0].Name)
		assert.Equal(t, "orders", ds.Tables[1].Name)
	})

	t.Run("Ordem Das Colunas", func(t *testing.T) {
		row := ds.Tables[0].Rows[0]
		assert.Equal(t, []string{"id", "name", "age"}, row.Columns())
	})

	t.Run("Coluna Ausente", func(t *testing.T) {
		row := ds.Tables[0].Rows[1]
		assert.False(t, row.Has("age"), "linha esparsa não deve ter a coluna")
		assert.Equal(t, 2, row.Len())
	})

	t.Run("Valores Escalares", func(t *testing.T) {
		row := ds.Tables[1].Rows[0]
		v, ok := row.Get("total")
		require.True(t, ok)
		assert.Equal(t, 99.9, v)

		v, ok = row.Get("paid")
		require.True(t, ok)
		assert.Equal(t, true, v)
	})
}

func TestParse_NullEqualeAusente(t *testing.T) {
	ds, err := dataset.Parse([]byte("users:\n  - {id: 1, name: }\n"))
	require.NoError(t, err)

	row := ds.Tables[0].Rows[0]
	assert.False(t, row.Has("name"), "null explícito equivale a coluna ausente")
	assert.True(t, row.Has("id"))
}

func TestParse_StringVaziaEhValor(t *testing.T) {
	ds, err := dataset.Parse([]byte("users:\n  - {id: 1, name: \"\"}\n"))
	require.NoError(t, err)

	row := ds.Tables[0].Rows[0]
	v, ok := row.Get("name")
	require.True(t, ok, "string vazia presente é diferente de coluna ausente")
	assert.Equal(t, "", v)
}

func TestParse_TabelaDuplicada(t *testing.T) {
	_, err := dataset.Parse([]byte("users:\nusers:\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "users")
}

func TestParse_TabelaVazia(t *testing.T) {
	ds, err := dataset.Parse([]byte("users:\n"))
	require.NoError(t, err)
	require.Len(t, ds.Tables, 1)
	assert.Empty(t, ds.Tables[0].Rows)
}

func TestRender(t *testing.T) {
	assert.Equal(t, "John", dataset.Render("John"))
	assert.Equal(t, "42", dataset.Render(42))
	assert.Equal(t, "99.9", dataset.Render(99.9))
	assert.Equal(t, "true", dataset.Render(true))
	assert.Equal(t, "abc", dataset.Render([]byte("abc")))
}
