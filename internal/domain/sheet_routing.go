package domain

import "strings"

const DefaultSheetCode = "GMA"

// SheetRouting mapeia o nome de exibição da conta para o código da planilha de destino.
// É imutável depois de criado.
type SheetRouting struct {
	codes    map[string]string
	fallback string
}

func NewSheetRouting(codes map[string]string, fallback string) SheetRouting {
	copied := make(map[string]string, len(codes))
	for name, code := range codes {
		copied[strings.TrimSpace(name)] = code
	}
	return SheetRouting{codes: copied, fallback: fallback}
}

// DefaultSheetRouting contém os estúdios e marcas conhecidos
func DefaultSheetRouting() SheetRouting {
	return NewSheetRouting(map[string]string{
		"Pur Artistry Brow & Lash Studio": "PA",
		"Purluxe Beauty Bar":              "PL",
		"Club Well":                       "CW",
		"Shopify":                         "Mimi",
		"Eira Medical":                    "Eira",
	}, DefaultSheetCode)
}

// Resolve retorna o código para o nome; nomes desconhecidos usam o código padrão
func (r SheetRouting) Resolve(displayName string) string {
	if code, ok := r.codes[strings.TrimSpace(displayName)]; ok {
		return code
	}
	return r.fallback
}
