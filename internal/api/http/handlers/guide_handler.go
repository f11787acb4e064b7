package handlers

import "github.com/gofiber/fiber/v2"

// guideText is the spreadsheet-export walkthrough shown on the guide view.
// Documentation only: there is no export codec behind it.
const guideText = `Exportação para planilha

1. Abra a tela Chamados e copie a tabela completa.
2. Cole em uma planilha em branco; as colunas id, status, openedAt,
   description e pendingSince são preservadas na ordem de inserção.
3. Para um backup bruto, copie o conteúdo do slot tickets_data do
   armazenamento configurado; ele contém a lista completa em JSON.

Hospedagem

O serviço atende apenas em localhost por padrão (APP_HOST). Todos os dados
ficam no backend de armazenamento configurado via STORAGE_BACKEND.`

// GuideHandler serves the static manual text.
type GuideHandler struct{}

// NewGuideHandler constructs handler.
func NewGuideHandler() *GuideHandler {
	return &GuideHandler{}
}

// GetGuide GET /api/guide.
func (h *GuideHandler) GetGuide(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": guideText})
}
