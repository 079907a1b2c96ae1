package injector

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// Regex para capturar padrões ${tipo.chave} em valores de configuração.
// Ex: ${env.REDIS_PASS}, ${ssm./fixtures/redis/addr}, ${secret.pg_dsn}
//
// A gramática é disjunta da usada nos templates de mapeamento (${coluna}):
// aqui o token sempre carrega um prefixo de fonte.
var pattern = regexp.MustCompile(`\$\{(env|ssm|secret)\.([^}]+)\}`)

// --- Interfaces para Mocking ---

type ParameterGetter interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

type SecretGetter interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Injector resolve tokens ${env.*}, ${ssm.*} e ${secret.*} dentro dos campos
// string de uma struct de configuração. Os clientes AWS são criados sob
// demanda na primeira resolução que precisar deles.
type Injector struct {
	ssmClient     ParameterGetter
	secretsClient SecretGetter
}

func New() *Injector {
	return &Injector{}
}

// NewWithClients permite injetar clientes próprios (testes).
func NewWithClients(ssmClient ParameterGetter, secretsClient SecretGetter) *Injector {
	return &Injector{ssmClient: ssmClient, secretsClient: secretsClient}
}

func (i *Injector) Inject(ctx context.Context, target interface{}) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("target deve ser um ponteiro para struct não nulo")
	}
	return i.injectRecursive(ctx, v.Elem())
}

func (i *Injector) injectRecursive(ctx context.Context, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Struct:
		for k := 0; k < v.NumField(); k++ {
			value := v.Field(k)

			if value.Kind() == reflect.String && value.CanSet() {
				newValue, err := i.interpolateString(ctx, value.String())
				if err != nil {
					return err
				}
				value.SetString(newValue)
				continue
			}

			if value.CanSet() || value.Kind() == reflect.Ptr {
				if err := i.injectRecursive(ctx, value); err != nil {
					return err
				}
			}
		}

	case reflect.Ptr:
		if !v.IsNil() {
			return i.injectRecursive(ctx, v.Elem())
		}

	case reflect.Slice:
		for j := 0; j < v.Len(); j++ {
			if err := i.injectRecursive(ctx, v.Index(j)); err != nil {
				return err
			}
		}
	}
	return nil
}

// interpolateString realiza a substituição baseada em Regex
func (i *Injector) interpolateString(ctx context.Context, input string) (string, error) {
	if !strings.Contains(input, "${") {
		return input, nil
	}

	var err error
	result := pattern.ReplaceAllStringFunc(input, func(match string) string {
		// match é algo como "${env.VAR_NAME}"
		content := match[2 : len(match)-1]
		parts := strings.SplitN(content, ".", 2)

		val, resolveErr := i.fetchValue(ctx, parts[0], parts[1])
		if resolveErr != nil {
			err = resolveErr // Captura erro para retornar depois
			return match
		}
		return val
	})

	return result, err
}

// fetchValue centraliza a busca de dados
func (i *Injector) fetchValue(ctx context.Context, sourceType, key string) (string, error) {
	switch sourceType {
	case "env":
		// Variável não encontrada retorna vazio
		return os.Getenv(key), nil

	case "ssm":
		client, err := i.parameterStore(ctx)
		if err != nil {
			return "", err
		}
		out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String(key),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			return "", fmt.Errorf("falha ao buscar parâmetro SSM '%s': %w", key, err)
		}
		return aws.ToString(out.Parameter.Value), nil

	case "secret":
		client, err := i.secretsManager(ctx)
		if err != nil {
			return "", err
		}
		out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(key),
		})
		if err != nil {
			return "", fmt.Errorf("falha ao buscar secret '%s': %w", key, err)
		}
		return aws.ToString(out.SecretString), nil
	}

	return "", nil
}

func (i *Injector) parameterStore(ctx context.Context) (ParameterGetter, error) {
	if i.ssmClient == nil {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, err
		}
		i.ssmClient = ssm.NewFromConfig(cfg)
	}
	return i.ssmClient, nil
}

func (i *Injector) secretsManager(ctx context.Context) (SecretGetter, error) {
	if i.secretsClient == nil {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, err
		}
		i.secretsClient = secretsmanager.NewFromConfig(cfg)
	}
	return i.secretsClient, nil
}
