package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/raywall/fixture-toolkit/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMapping(t *testing.T) {
	ul := config.NewUniversalLoader()

	t.Run("Arquivo Valido", func(t *testing.T) {
		path := writeTemp(t, "mapping.yaml", `
tables:
  - table: users
    hashes:
      - key: "users:${id}"
      - key: "emails"
        field: "${id}"
        value: "${email}"
    sets:
      - member: "${id}"
`)
		spec, err := ul.LoadMapping(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, spec.Tables, 1)
		assert.Equal(t, "users", spec.Tables[0].Table)
		require.Len(t, spec.Tables[0].Hashes, 2)
		assert.Equal(t, "users:${id}", spec.Tables[0].Hashes[0].Key)
		assert.Empty(t, spec.Tables[0].Hashes[0].Value, "value ausente significa todas as colunas")
		assert.Equal(t, "${email}", spec.Tables[0].Hashes[1].Value)
		require.Len(t, spec.Tables[0].Sets, 1)
		assert.Empty(t, spec.Tables[0].Sets[0].Key, "key nula usa o default (nome da tabela)")
	})

	t.Run("Key Nula Equivale A Ausente", func(t *testing.T) {
		path := writeTemp(t, "mapping.yaml", `
tables:
  - table: users
    sets:
      - key:
        member: "${id}"
`)
		spec, err := ul.LoadMapping(context.Background(), path)
		require.NoError(t, err)
		assert.Empty(t, spec.Tables[0].Sets[0].Key)
	})

	t.Run("Prefixo File", func(t *testing.T) {
		path := writeTemp(t, "mapping.yaml", "tables:\n  - table: users\n")
		_, err := ul.LoadMapping(context.Background(), "file://"+path)
		require.NoError(t, err)
	})

	t.Run("Seletor Invalido Reprovado", func(t *testing.T) {
		path := writeTemp(t, "mapping.yaml", `
tables:
  - table: users
    hashes:
      - value: "literal_text"
`)
		_, err := ul.LoadMapping(context.Background(), path)
		require.Error(t, err)
	})

	t.Run("Arquivo Inexistente", func(t *testing.T) {
		_, err := ul.LoadMapping(context.Background(), "/nao/existe.yaml")
		require.Error(t, err)
	})
}

func TestLoadTargets(t *testing.T) {
	ul := config.NewUniversalLoader()

	t.Run("Com Interpolacao De Ambiente", func(t *testing.T) {
		t.Setenv("FIXTURE_REDIS_PASS", "s3cr3t")
		path := writeTemp(t, "targets.yaml", `
logging:
  enabled: true
  level: info
redis:
  addr: "localhost:6379"
  password: "${env.FIXTURE_REDIS_PASS}"
  db: 2
`)
		cfg, err := ul.LoadTargets(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "s3cr3t", cfg.Redis.Password)
		assert.Equal(t, 2, cfg.Redis.DB)
	})

	t.Run("Validacao Reprovada", func(t *testing.T) {
		path := writeTemp(t, "targets.yaml", "logging:\n  level: verbose\n")
		_, err := ul.LoadTargets(context.Background(), path)
		require.Error(t, err)
	})
}

func TestLoadDataset(t *testing.T) {
	ul := config.NewUniversalLoader()

	path := writeTemp(t, "dataset.yaml", `
users:
  - {id: 1, name: "John"}
`)
	ds, err := ul.LoadDataset(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, ds.Tables, 1)
	assert.Equal(t, "users", ds.Tables[0].Name)
}
