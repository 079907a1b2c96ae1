package sink

import "context"

// Field é um par campo/valor já renderizado, na ordem de acumulação.
type Field struct {
	Name  string
	Value string
}

// Sink é a superfície mínima que o engine de projeção consome no destino
// chave/valor. Implementações devem ser idempotentes em WriteFields e
// WriteMembers; a serialização de acesso concorrente, se houver, é
// responsabilidade do adapter, não do engine.
type Sink interface {
	// Clear remove todos os dados existentes no destino.
	// Invocado no máximo uma vez por carga, somente quando solicitado.
	Clear(ctx context.Context) error

	// WriteFields grava os campos ordenados sob uma chave de hash.
	WriteFields(ctx context.Context, key string, fields []Field) error

	// WriteMembers adiciona os membros ordenados sob uma chave de set.
	WriteMembers(ctx context.Context, key string, members []string) error
}
