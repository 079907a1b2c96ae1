package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/raywall/fixture-toolkit/pkg/placeholder"
)

type ConfigValidator struct {
	validate *validator.Validate
}

// NewValidator cria uma nova instância do validador
func NewValidator() *ConfigValidator {
	return &ConfigValidator{
		validate: validator.New(),
	}
}

// ValidateMapping realiza validações estruturais (tags) e semânticas (lógica)
// sobre um arquivo de mapeamento decodificado.
func (cv *ConfigValidator) ValidateMapping(spec *MappingSpec) error {
	if err := cv.structural(spec); err != nil {
		return err
	}
	if err := cv.mappingSemantics(spec); err != nil {
		return fmt.Errorf("erro de validação semântica: %w", err)
	}
	return nil
}

// ValidateTargets valida o arquivo de destinos (conexões e runtime).
func (cv *ConfigValidator) ValidateTargets(cfg *TargetsConf) error {
	return cv.structural(cfg)
}

func (cv *ConfigValidator) structural(target interface{}) error {
	if err := cv.validate.Struct(target); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			var errMsgs []string
			for _, e := range validationErrors {
				errMsgs = append(errMsgs, fmt.Sprintf("Campo '%s' falhou na regra '%s'", e.Field(), e.Tag()))
			}
			return fmt.Errorf("erros de validação estrutural:\n- %s", strings.Join(errMsgs, "\n- "))
		}
		return fmt.Errorf("erro de validação estrutural: %w", err)
	}
	return nil
}

func (cv *ConfigValidator) mappingSemantics(spec *MappingSpec) error {
	// 1. Unicidade dos nomes de tabela
	seen := make(map[string]bool)
	for _, tm := range spec.Tables {
		if seen[tm.Table] {
			return fmt.Errorf("tabela duplicada no mapeamento: '%s'", tm.Table)
		}
		seen[tm.Table] = true
	}

	// 2. Forma dos seletores de valor/membro: vazio ou exatamente um ${coluna}.
	// A resolução por linha acontece depois, no engine; aqui só validamos a forma.
	for _, tm := range spec.Tables {
		for i, hp := range tm.Hashes {
			if _, err := placeholder.SingleColumn(hp.Value); err != nil {
				return fmt.Errorf("tabela '%s', hash %d: %w", tm.Table, i, err)
			}
		}
		for i, sp := range tm.Sets {
			if _, err := placeholder.SingleColumn(sp.Member); err != nil {
				return fmt.Errorf("tabela '%s', set %d: %w", tm.Table, i, err)
			}
		}
	}

	return nil
}
