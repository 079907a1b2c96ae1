// Package fixturetoolkit fornece um carregador de massas de teste declarativo:
// um dataset relacional (tabelas nomeadas com linhas uniformes, em YAML) é
// gravado em destinos diferentes a partir de um único arquivo de origem.
//
// Visão Geral:
// O destino principal é um keyspace chave/valor (Redis), alimentado por um
// mapeamento declarativo que denormaliza cada linha em registros de hash e de
// set com templates ${coluna}. Destinos relacionais (Postgres) e de documentos
// (DynamoDB) recebem o mesmo dataset 1:1, sem mapeamento.
//
// Sub-Pacotes Principais:
//
// 1. pkg/dataset:
//   - Modelo do dataset decodificado com ordem de tabelas, linhas e colunas
//     preservada, e distinção entre coluna ausente e valor vazio.
//
// 2. pkg/placeholder:
//   - Resolução de templates ${coluna} contra uma linha e validação de
//     seletores de coluna única. Funções puras, erros tipados.
//
// 3. pkg/loader:
//   - Engine de projeção: acumula (chave, campo, valor) e (chave, membro) em
//     mapas ordenados com detecção de duplicidade, e só então grava no sink.
//
// 4. pkg/config:
//   - Modelo do mapeamento e dos destinos, validação estrutural e semântica,
//     carregamento de arquivos locais ou S3 e injeção de segredos
//     (${env.*}, ${ssm.*}, ${secret.*}).
//
// 5. pkg/sink:
//   - Adapters de escrita: Redis (hashes/sets), Postgres e DynamoDB (1:1),
//     além de um Recorder em memória para testes.
package fixturetoolkit
