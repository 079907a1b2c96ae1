package config

// MappingSpec representa a estrutura raiz do arquivo YAML de mapeamento
// dataset -> keyspace. Uma entrada por tabela do dataset.
type MappingSpec struct {
	Tables []TableMapping `yaml:"tables" validate:"required,min=1,dive"`
}

// TableMapping descreve como as linhas de uma tabela viram registros de
// hash e de set no keyspace de destino.
type TableMapping struct {
	Table  string           `yaml:"table" validate:"required"`
	Hashes []HashProjection `yaml:"hashes"`
	Sets   []SetProjection  `yaml:"sets"`
}

// HashProjection produz triplas (chave, campo, valor) a partir de uma linha.
// Todos os campos são opcionais:
//   - Key: template da chave; default = nome da tabela
//   - Field: template do campo; default = nome da coluna de origem
//   - Value: seletor ${coluna}; default = todas as colunas da linha
type HashProjection struct {
	Key   string `yaml:"key"`
	Field string `yaml:"field"`
	Value string `yaml:"value"`
}

// SetProjection produz pares (chave, membro) a partir de uma linha.
//   - Key: template da chave; default = nome da tabela
//   - Member: seletor ${coluna}; default = todas as colunas da linha
type SetProjection struct {
	Key    string `yaml:"key"`
	Member string `yaml:"member"`
}

// TargetsConf representa o arquivo YAML de destinos: conexões dos sinks e
// configurações de runtime (log, métricas). Valores sensíveis podem usar
// interpolação ${env.X}, ${ssm.path} ou ${secret.name} (ver config/injector).
type TargetsConf struct {
	Logging  LoggingConf  `yaml:"logging"`
	Metrics  MetricsConf  `yaml:"metrics"`
	Redis    RedisConf    `yaml:"redis"`
	Postgres PostgresConf `yaml:"postgres"`
	DynamoDB DynamoConf   `yaml:"dynamodb"`
}

type LoggingConf struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format  string `yaml:"format" validate:"omitempty,oneof=json console"`
}

type MetricsConf struct {
	Datadog DatadogConf `yaml:"datadog"`
}

type DatadogConf struct {
	Enabled   bool   `yaml:"enabled" env:"DD_ENABLED"`
	Addr      string `yaml:"addr" env:"DD_AGENT_HOST" validate:"required_if=Enabled true"`
	Namespace string `yaml:"namespace"`
}

type RedisConf struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type PostgresConf struct {
	DSN string `yaml:"dsn"`
}

type DynamoConf struct {
	Table        string `yaml:"table"`
	Region       string `yaml:"region"`
	PartitionKey string `yaml:"partition_key"`
}
