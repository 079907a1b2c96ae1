package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/raywall/fixture-toolkit/pkg/config"
	"github.com/raywall/fixture-toolkit/pkg/loader"
	"github.com/raywall/fixture-toolkit/pkg/logger"
	"github.com/raywall/fixture-toolkit/pkg/metrics"
	"github.com/raywall/fixture-toolkit/pkg/sink"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Comandos esperados: load, validate")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "load":
		runLoad(os.Args[2:])
	case "validate":
		runValidate(os.Args[2:])
	default:
		fmt.Println("Comando desconhecido")
		os.Exit(1)
	}
}

func runLoad(args []string) {
	loadCmd := flag.NewFlagSet("load", flag.ExitOnError)
	datasetPtr := loadCmd.String("dataset", "", "Caminho do arquivo de dataset (local ou s3://)")
	mappingPtr := loadCmd.String("mapping", "", "Caminho do arquivo de mapeamento (obrigatório para -sink redis)")
	targetsPtr := loadCmd.String("targets", "", "Caminho do arquivo de destinos (conexões, log, métricas)")
	sinkPtr := loadCmd.String("sink", "redis", "Destino da carga: redis, postgres ou dynamodb")
	cleanPtr := loadCmd.Bool("clean", false, "Limpa o destino antes da carga")
	loadCmd.Parse(args)

	if *datasetPtr == "" {
		fmt.Println("Erro: flag -dataset é obrigatória")
		os.Exit(1)
	}

	ctx := context.Background()
	ul := config.NewUniversalLoader()

	targets := &config.TargetsConf{}
	if *targetsPtr != "" {
		var err error
		targets, err = ul.LoadTargets(ctx, *targetsPtr)
		if err != nil {
			fmt.Printf("❌ Erro nos destinos:\n%v\n", err)
			os.Exit(1)
		}
	}

	log := logger.Configure(targets.Logging)

	provider, err := metrics.Setup(targets.Metrics)
	if err != nil {
		fmt.Printf("❌ Erro nas métricas:\n%v\n", err)
		os.Exit(1)
	}

	ds, err := ul.LoadDataset(ctx, *datasetPtr)
	if err != nil {
		fmt.Printf("❌ Erro no dataset:\n%v\n", err)
		os.Exit(1)
	}

	rows := 0
	for _, table := range ds.Tables {
		rows += len(table.Rows)
	}

	switch *sinkPtr {
	case "redis":
		if *mappingPtr == "" {
			fmt.Println("Erro: -sink redis exige a flag -mapping")
			os.Exit(1)
		}
		spec, err := ul.LoadMapping(ctx, *mappingPtr)
		if err != nil {
			fmt.Printf("❌ Erro no mapeamento:\n%v\n", err)
			os.Exit(1)
		}

		rs := sink.NewRedisSink(targets.Redis)
		defer rs.Close()

		eng := loader.New(spec, rs, log)
		res, err := eng.Load(ctx, ds, *cleanPtr)
		if err != nil {
			fmt.Printf("❌ Carga abortada:\n%v\n", err)
			os.Exit(1)
		}

		metrics.ReportLoad(provider, "redis", rows, res.Hashes.Len(), res.Sets.Len())
		fmt.Printf("✅ Carga concluída: %d linhas, %d hashes, %d sets\n", rows, res.Hashes.Len(), res.Sets.Len())

	case "postgres":
		if *mappingPtr != "" {
			fmt.Println("Erro: -sink postgres é uma carga 1:1, não aceita -mapping")
			os.Exit(1)
		}
		pg, err := sink.NewPostgresLoader(targets.Postgres)
		if err != nil {
			fmt.Printf("❌ Erro na conexão postgres:\n%v\n", err)
			os.Exit(1)
		}
		defer pg.Close()

		if err := pg.LoadDataset(ctx, ds, *cleanPtr); err != nil {
			fmt.Printf("❌ Carga abortada:\n%v\n", err)
			os.Exit(1)
		}

		metrics.ReportLoad(provider, "postgres", rows, 0, 0)
		fmt.Printf("✅ Carga concluída: %d linhas\n", rows)

	case "dynamodb":
		if *mappingPtr != "" {
			fmt.Println("Erro: -sink dynamodb é uma carga 1:1, não aceita -mapping")
			os.Exit(1)
		}
		if *cleanPtr {
			fmt.Println("Erro: -clean não é suportado para dynamodb")
			os.Exit(1)
		}
		dl, err := sink.NewDynamoLoader(ctx, targets.DynamoDB)
		if err != nil {
			fmt.Printf("❌ Erro na conexão dynamodb:\n%v\n", err)
			os.Exit(1)
		}

		if err := dl.LoadDataset(ctx, ds); err != nil {
			fmt.Printf("❌ Carga abortada:\n%v\n", err)
			os.Exit(1)
		}

		metrics.ReportLoad(provider, "dynamodb", rows, 0, 0)
		fmt.Printf("✅ Carga concluída: %d linhas\n", rows)

	default:
		fmt.Printf("Erro: sink desconhecido '%s'. Use redis, postgres ou dynamodb\n", *sinkPtr)
		os.Exit(1)
	}
}

func runValidate(args []string) {
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	mappingPtr := validateCmd.String("mapping", "", "Caminho do arquivo de mapeamento")
	validateCmd.Parse(args)

	if *mappingPtr == "" {
		fmt.Println("Erro: flag -mapping é obrigatória")
		os.Exit(1)
	}

	fmt.Printf("🔍 Analisando mapeamento: %s ...\n", *mappingPtr)

	ul := config.NewUniversalLoader()
	spec, err := ul.LoadMapping(context.Background(), *mappingPtr)
	if err != nil {
		fmt.Printf("❌ Mapeamento inválido:\n%v\n", err)
		os.Exit(1) // Falha no CI
	}

	fmt.Printf("✅ Mapeamento válido: %d tabela(s)\n", len(spec.Tables))
}
