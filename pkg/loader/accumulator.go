package loader

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/raywall/fixture-toolkit/pkg/sink"
)

// HashAccumulator agrega triplas (chave, campo, valor) na ordem de primeira
// inserção, detectando colisões de campo por chave. A primitiva Set do mapa
// ordenado informa se a inserção realmente adicionou; "já presente" vira
// erro duro no engine, nunca sobrescrita silenciosa.
type HashAccumulator struct {
	buckets *orderedmap.OrderedMap[string, *orderedmap.OrderedMap[string, string]]
}

func newHashAccumulator() *HashAccumulator {
	return &HashAccumulator{
		buckets: orderedmap.NewOrderedMap[string, *orderedmap.OrderedMap[string, string]](),
	}
}

// add insere (campo -> valor) no bucket da chave.
// Retorna false se o campo já existia naquele bucket.
func (a *HashAccumulator) add(key, field, value string) bool {
	bucket, ok := a.buckets.Get(key)
	if !ok {
		bucket = orderedmap.NewOrderedMap[string, string]()
		a.buckets.Set(key, bucket)
	}
	return bucket.Set(field, value)
}

// Keys retorna as chaves acumuladas na ordem de primeira inserção.
func (a *HashAccumulator) Keys() []string {
	return a.buckets.Keys()
}

// Fields retorna os pares campo/valor de uma chave, na ordem de inserção.
func (a *HashAccumulator) Fields(key string) ([]sink.Field, bool) {
	bucket, ok := a.buckets.Get(key)
	if !ok {
		return nil, false
	}
	fields := make([]sink.Field, 0, bucket.Len())
	for el := bucket.Front(); el != nil; el = el.Next() {
		fields = append(fields, sink.Field{Name: el.Key, Value: el.Value})
	}
	return fields, true
}

// Len retorna o número de chaves acumuladas.
func (a *HashAccumulator) Len() int {
	return a.buckets.Len()
}

// SetAccumulator agrega pares (chave, membro) na ordem de primeira inserção,
// com a mesma detecção de duplicidade do HashAccumulator.
type SetAccumulator struct {
	buckets *orderedmap.OrderedMap[string, *orderedmap.OrderedMap[string, struct{}]]
}

func newSetAccumulator() *SetAccumulator {
	return &SetAccumulator{
		buckets: orderedmap.NewOrderedMap[string, *orderedmap.OrderedMap[string, struct{}]](),
	}
}

// add insere um membro no bucket da chave.
// Retorna false se o membro já existia naquele bucket.
func (a *SetAccumulator) add(key, member string) bool {
	bucket, ok := a.buckets.Get(key)
	if !ok {
		bucket = orderedmap.NewOrderedMap[string, struct{}]()
		a.buckets.Set(key, bucket)
	}
	return bucket.Set(member, struct{}{})
}

// Keys retorna as chaves acumuladas na ordem de primeira inserção.
func (a *SetAccumulator) Keys() []string {
	return a.buckets.Keys()
}

// Members retorna os membros de uma chave, na ordem de inserção.
func (a *SetAccumulator) Members(key string) ([]string, bool) {
	bucket, ok := a.buckets.Get(key)
	if !ok {
		return nil, false
	}
	return bucket.Keys(), true
}

// Len retorna o número de chaves acumuladas.
func (a *SetAccumulator) Len() int {
	return a.buckets.Len()
}
