package sink

import "context"

// WriteCall registra uma escrita recebida pelo Recorder, na ordem em que
// ocorreu. Kind é "hash" ou "set".
type WriteCall struct {
	Kind    string
	Key     string
	Fields  []Field
	Members []string
}

// Recorder é um Sink em memória para testes: registra a sequência exata de
// chamadas (Clear incluso) e pode simular falhas.
type Recorder struct {
	Calls       []WriteCall
	ClearCount  int
	ClearErr    error
	WriteErr    error
	ClearBefore bool // true se Clear ocorreu antes de qualquer escrita
}

func NewRecorder() *Recorder {
	return &Recorder{ClearBefore: true}
}

func (r *Recorder) Clear(ctx context.Context) error {
	if r.ClearErr != nil {
		return r.ClearErr
	}
	r.ClearCount++
	if len(r.Calls) > 0 {
		r.ClearBefore = false
	}
	return nil
}

func (r *Recorder) WriteFields(ctx context.Context, key string, fields []Field) error {
	if r.WriteErr != nil {
		return r.WriteErr
	}
	r.Calls = append(r.Calls, WriteCall{Kind: "hash", Key: key, Fields: fields})
	return nil
}

func (r *Recorder) WriteMembers(ctx context.Context, key string, members []string) error {
	if r.WriteErr != nil {
		return r.WriteErr
	}
	r.Calls = append(r.Calls, WriteCall{Kind: "set", Key: key, Members: members})
	return nil
}

// Keys retorna as chaves escritas de um tipo, na ordem das chamadas.
func (r *Recorder) Keys(kind string) []string {
	var keys []string
	for _, c := range r.Calls {
		if c.Kind == kind {
			keys = append(keys, c.Key)
		}
	}
	return keys
}
