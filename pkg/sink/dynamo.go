package sink

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/raywall/fixture-toolkit/pkg/config"
	"github.com/raywall/fixture-toolkit/pkg/dataset"
)

// --- Interface para Mocking ---

type DynamoPutter interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoLoader grava um dataset 1:1 em uma única tabela de fixtures no
// DynamoDB: um PutItem por linha, item = colunas da linha mais uma partition
// key sintetizada "<tabela>:<índice>". Não há limpeza prévia (truncate no
// DynamoDB exigiria scan+delete, fora do escopo de carga de fixtures).
type DynamoLoader struct {
	client DynamoPutter
	cfg    config.DynamoConf
}

// NewDynamoLoader cria o loader com um cliente real.
func NewDynamoLoader(ctx context.Context, cfg config.DynamoConf) (*DynamoLoader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("dynamo: falha ao carregar configuração AWS: %w", err)
	}
	return NewDynamoLoaderWithClient(dynamodb.NewFromConfig(awsCfg), cfg), nil
}

// NewDynamoLoaderWithClient permite injetar um cliente próprio (testes).
func NewDynamoLoaderWithClient(client DynamoPutter, cfg config.DynamoConf) *DynamoLoader {
	if cfg.PartitionKey == "" {
		cfg.PartitionKey = "id"
	}
	return &DynamoLoader{client: client, cfg: cfg}
}

// LoadDataset grava todas as linhas de todas as tabelas, na ordem do dataset.
func (l *DynamoLoader) LoadDataset(ctx context.Context, ds *dataset.Dataset) error {
	for _, table := range ds.Tables {
		for i, row := range table.Rows {
			item := make(map[string]interface{}, row.Len()+1)
			item[l.cfg.PartitionKey] = fmt.Sprintf("%s:%d", table.Name, i)
			for _, col := range row.Columns() {
				v, _ := row.Get(col)
				item[col] = v
			}

			av, err := attributevalue.MarshalMap(item)
			if err != nil {
				return fmt.Errorf("dynamo: tabela %q, linha %d: marshal failed: %w", table.Name, i, err)
			}

			_, err = l.client.PutItem(ctx, &dynamodb.PutItemInput{
				TableName: aws.String(l.cfg.Table),
				Item:      av,
			})
			if err != nil {
				return fmt.Errorf("dynamo: tabela %q, linha %d: put failed: %w", table.Name, i, err)
			}
		}
	}
	return nil
}
