package sink

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/raywall/fixture-toolkit/pkg/config"
	"github.com/raywall/fixture-toolkit/pkg/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockDynamo registra os PutItem recebidos
type MockDynamo struct {
	items []map[string]types.AttributeValue
	table string
}

func (m *MockDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	m.items = append(m.items, params.Item)
	m.table = aws.ToString(params.TableName)
	return &dynamodb.PutItemOutput{}, nil
}

func TestDynamoLoader_LoadDataset(t *testing.T) {
	ds, err := dataset.Parse([]byte(`
users:
  - {id: 1, name: "John"}
  - {id: 2, name: "Jane"}
`))
	require.NoError(t, err)

	mock := &MockDynamo{}
	dl := NewDynamoLoaderWithClient(mock, config.DynamoConf{Table: "fixtures", PartitionKey: "pk"})

	require.NoError(t, dl.LoadDataset(context.Background(), ds))
	require.Len(t, mock.items, 2)
	assert.Equal(t, "fixtures", mock.table)

	pk, ok := mock.items[0]["pk"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "users:0", pk.Value, "partition key sintetizada por tabela e índice")

	name, ok := mock.items[1]["name"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "Jane", name.Value)
}

func TestDynamoLoader_PartitionKeyDefault(t *testing.T) {
	dl := NewDynamoLoaderWithClient(&MockDynamo{}, config.DynamoConf{Table: "fixtures"})

	ds, err := dataset.Parse([]byte("users:\n  - {name: \"John\"}\n"))
	require.NoError(t, err)
	require.NoError(t, dl.LoadDataset(context.Background(), ds))
}

func TestRecorder_OrdemDasChamadas(t *testing.T) {
	rec := NewRecorder()
	ctx := context.Background()

	require.NoError(t, rec.WriteFields(ctx, "users:1", []Field{{Name: "id", Value: "1"}}))
	require.NoError(t, rec.WriteMembers(ctx, "users", []string{"1"}))
	require.NoError(t, rec.Clear(ctx))

	assert.Equal(t, []string{"users:1"}, rec.Keys("hash"))
	assert.Equal(t, []string{"users"}, rec.Keys("set"))
	assert.False(t, rec.ClearBefore, "Clear depois de escritas deve ser detectado")
}
