package placeholder

import (
	"regexp"

	"github.com/raywall/fixture-toolkit/pkg/dataset"
)

// Regex para capturar padrões ${coluna} dentro de templates de chave/campo.
// Ex: "users:${id}", "${tenant}:${id}:profile"
var pattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// ResolveTemplate substitui todo token ${coluna} de template pelo valor da
// coluna correspondente em row, renderizado como string de exibição. Texto
// literal fora dos tokens é mantido intacto; um template sem tokens é
// retornado como está (permite chaves puramente literais).
//
// Falha com *MissingColumnError se algum token referenciar uma coluna que a
// linha não possui.
func ResolveTemplate(template string, row dataset.Row) (string, error) {
	var err error

	// ReplaceAllStringFunc permite lógica customizada para cada match
	result := pattern.ReplaceAllStringFunc(template, func(match string) string {
		// match é algo como "${id}"; removemos ${ e }
		column := match[2 : len(match)-1]

		value, ok := row.Get(column)
		if !ok {
			if err == nil {
				err = &MissingColumnError{
					Column:   column,
					Template: template,
					Columns:  row.Columns(),
				}
			}
			return match
		}
		return dataset.Render(value)
	})

	if err != nil {
		return "", err
	}
	return result, nil
}

// SingleColumn valida um seletor de valor/membro e extrai o nome da coluna
// referenciada. Um seletor vazio sinaliza "todas as colunas" e retorna "".
// Qualquer outra forma deve ser exatamente um token ${coluna}, sem texto
// literal ao redor; caso contrário retorna *MalformedSelectorError.
//
// O valor da coluna não é resolvido aqui: isso acontece depois, por linha.
func SingleColumn(selector string) (string, error) {
	if selector == "" {
		return "", nil
	}

	matches := pattern.FindAllStringSubmatch(selector, -1)
	switch {
	case len(matches) == 0:
		return "", &MalformedSelectorError{Selector: selector, Reason: "nenhum placeholder encontrado"}
	case len(matches) > 1:
		return "", &MalformedSelectorError{Selector: selector, Reason: "mais de um placeholder"}
	case matches[0][0] != selector:
		return "", &MalformedSelectorError{Selector: selector, Reason: "texto literal fora do placeholder"}
	}

	return matches[0][1], nil
}
