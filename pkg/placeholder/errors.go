package placeholder

import (
	"fmt"
	"strings"
)

// MissingColumnError é retornado quando um template referencia uma coluna
// que não existe na linha corrente.
type MissingColumnError struct {
	// Column é o nome referenciado pelo placeholder não resolvido.
	Column string
	// Template é o template completo que estava sendo resolvido.
	Template string
	// Columns são as colunas disponíveis na linha, na ordem original.
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("placeholder: column %q not found resolving template %q (available: %s)",
		e.Column, e.Template, strings.Join(e.Columns, ", "))
}

// MalformedSelectorError é retornado quando um seletor de valor/membro não é
// exatamente um placeholder ${coluna}.
type MalformedSelectorError struct {
	// Selector é o texto inválido informado no mapeamento.
	Selector string
	// Reason descreve o que tornou o seletor inválido.
	Reason string
}

func (e *MalformedSelectorError) Error() string {
	return fmt.Sprintf("placeholder: selector %q must be a single ${column} token: %s", e.Selector, e.Reason)
}
