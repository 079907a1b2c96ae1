package config_test

import (
	"testing"

	"github.com/raywall/fixture-toolkit/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMapping(t *testing.T) {
	cv := config.NewValidator()

	t.Run("Mapeamento Valido", func(t *testing.T) {
		spec := &config.MappingSpec{Tables: []config.TableMapping{
			{
				Table:  "users",
				Hashes: []config.HashProjection{{Key: "users:${id}", Value: "${name}"}},
				Sets:   []config.SetProjection{{Member: "${id}"}},
			},
			{Table: "orders"},
		}}
		assert.NoError(t, cv.ValidateMapping(spec))
	})

	t.Run("Sem Tabelas", func(t *testing.T) {
		err := cv.ValidateMapping(&config.MappingSpec{})
		require.Error(t, err)
	})

	t.Run("Tabela Sem Nome", func(t *testing.T) {
		spec := &config.MappingSpec{Tables: []config.TableMapping{{Table: ""}}}
		require.Error(t, cv.ValidateMapping(spec))
	})

	t.Run("Tabela Duplicada", func(t *testing.T) {
		spec := &config.MappingSpec{Tables: []config.TableMapping{
			{Table: "users"},
			{Table: "users"},
		}}
		err := cv.ValidateMapping(spec)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "users")
	})

	t.Run("Seletor De Valor Malformado", func(t *testing.T) {
		spec := &config.MappingSpec{Tables: []config.TableMapping{{
			Table:  "users",
			Hashes: []config.HashProjection{{Value: "literal_text"}},
		}}}
		err := cv.ValidateMapping(spec)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "literal_text")
	})

	t.Run("Seletor De Membro Malformado", func(t *testing.T) {
		spec := &config.MappingSpec{Tables: []config.TableMapping{{
			Table: "users",
			Sets:  []config.SetProjection{{Member: "id-${id}"}},
		}}}
		require.Error(t, cv.ValidateMapping(spec))
	})
}

func TestValidateTargets(t *testing.T) {
	cv := config.NewValidator()

	t.Run("Destinos Validos", func(t *testing.T) {
		cfg := &config.TargetsConf{
			Logging: config.LoggingConf{Enabled: true, Level: "debug", Format: "console"},
			Redis:   config.RedisConf{Addr: "localhost:6379"},
		}
		assert.NoError(t, cv.ValidateTargets(cfg))
	})

	t.Run("Nivel De Log Invalido", func(t *testing.T) {
		cfg := &config.TargetsConf{Logging: config.LoggingConf{Level: "verbose"}}
		require.Error(t, cv.ValidateTargets(cfg))
	})

	t.Run("Datadog Habilitado Sem Addr", func(t *testing.T) {
		cfg := &config.TargetsConf{Metrics: config.MetricsConf{
			Datadog: config.DatadogConf{Enabled: true},
		}}
		require.Error(t, cv.ValidateTargets(cfg))
	})
}
