package loader

import "fmt"

// UnmappedTableError é retornado quando o dataset contém uma tabela sem
// nenhuma entrada correspondente no mapeamento.
type UnmappedTableError struct {
	// Table é o nome da tabela do dataset sem mapeamento.
	Table string
}

func (e *UnmappedTableError) Error() string {
	return fmt.Sprintf("loader: no mapping entry for dataset table %q", e.Table)
}

// DuplicateFieldError é retornado quando o mesmo par (chave, campo) é
// produzido duas vezes dentro de uma mesma carga.
type DuplicateFieldError struct {
	Table string
	Key   string
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("loader: duplicate field %q for hash key %q (table %q)", e.Field, e.Key, e.Table)
}

// DuplicateMemberError é retornado quando o mesmo par (chave, membro) é
// produzido duas vezes dentro de uma mesma carga.
type DuplicateMemberError struct {
	Table  string
	Key    string
	Member string
}

func (e *DuplicateMemberError) Error() string {
	return fmt.Sprintf("loader: duplicate member %q for set key %q (table %q)", e.Member, e.Key, e.Table)
}
