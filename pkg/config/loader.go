package config

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/raywall/fixture-toolkit/pkg/config/injector"
	"github.com/raywall/fixture-toolkit/pkg/dataset"
	yaml "gopkg.in/yaml.v3"
)

// --- Interfaces para Mocking ---

type S3Downloader interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// UniversalLoader carrega os documentos do loader (mapeamento, dataset,
// destinos) a partir de múltiplas fontes (arquivo local ou S3).
type UniversalLoader struct {
	validator *ConfigValidator
	injector  *injector.Injector
}

// NewUniversalLoader cria uma nova instância.
func NewUniversalLoader() *UniversalLoader {
	return &UniversalLoader{
		validator: NewValidator(),
		injector:  injector.New(),
	}
}

// LoadMapping lê, decodifica e valida um arquivo de mapeamento.
func (ul *UniversalLoader) LoadMapping(ctx context.Context, source string) (*MappingSpec, error) {
	rawData, err := ul.fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("falha leitura mapeamento (%s): %w", source, err)
	}

	var spec MappingSpec
	if err := yaml.Unmarshal(rawData, &spec); err != nil {
		return nil, fmt.Errorf("YAML de mapeamento malformado: %w", err)
	}

	if err := ul.validator.ValidateMapping(&spec); err != nil {
		return nil, fmt.Errorf("validação do mapeamento falhou: %w", err)
	}
	return &spec, nil
}

// LoadTargets lê e decodifica o arquivo de destinos, resolvendo tokens
// ${env.X}, ${ssm.path} e ${secret.name} antes da validação.
func (ul *UniversalLoader) LoadTargets(ctx context.Context, source string) (*TargetsConf, error) {
	rawData, err := ul.fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("falha leitura destinos (%s): %w", source, err)
	}

	var cfg TargetsConf
	if err := yaml.Unmarshal(rawData, &cfg); err != nil {
		return nil, fmt.Errorf("YAML de destinos malformado: %w", err)
	}

	if err := ul.injector.Inject(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("falha na injeção de variáveis: %w", err)
	}

	if err := ul.validator.ValidateTargets(&cfg); err != nil {
		return nil, fmt.Errorf("validação dos destinos falhou: %w", err)
	}
	return &cfg, nil
}

// LoadDataset lê e decodifica um arquivo de massa de dados, preservando a
// ordem de tabelas, linhas e colunas.
func (ul *UniversalLoader) LoadDataset(ctx context.Context, source string) (*dataset.Dataset, error) {
	rawData, err := ul.fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("falha leitura dataset (%s): %w", source, err)
	}
	return dataset.Parse(rawData)
}

// fetch detecta o esquema da fonte e retorna os bytes do documento.
func (ul *UniversalLoader) fetch(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "s3://") {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, err
		}
		return ul.loadFromS3Internal(ctx, s3.NewFromConfig(cfg), source)
	}

	// Default: arquivo local, com ou sem prefixo file://
	return os.ReadFile(strings.TrimPrefix(source, "file://"))
}

func (ul *UniversalLoader) loadFromS3Internal(ctx context.Context, client S3Downloader, uri string) ([]byte, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("URL S3 inválida: %w", err)
	}
	bucket := u.Host
	key := strings.TrimPrefix(u.Path, "/")

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}
