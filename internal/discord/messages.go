package discord

// Friendly message constants for Discord responses
const (
	MsgPong            = "Pong! 🏓"
	MsgAPIUnavailable  = "🔌 **Calculadora indisponível**\nTente novamente em instantes."
	MsgInvalidRange    = "⚠️ **Intervalo inválido**\nUse 1 ≤ início < fim ≤ 140."
	MsgUnknownSlot     = "❓ **Equipamento desconhecido**\nOpções: Emblema, Capacete, Calça, Peito, Arma, Colar."
	MsgUnknownTier     = "❓ **Poção desconhecida**\nOpções: Diamante, Ouro, Prata, Bronze."
	MsgGenericError    = "❌ Algo deu errado."
	MsgPriceWarnings   = "⚠️ Preços ignorados: %s"
	MsgRemainder       = "Sobra abaixo da menor poção: %s XP"
	MsgPublished       = "Valor publicado na tabela: %s XP"
	MsgTransferMessage = "Transferir **%s +%d** custa **%s %s**."
)

// Embed titles
const (
	TitleXP       = "📈 Experiência"
	TitleCrystals = "💎 Cristais"
	TitleTransfer = "🔁 Transferência"
)

// Embed field names
const (
	FieldExperience = "XP necessária"
	FieldPotions    = "Poções"
	FieldLevels     = "Por nível"
	FieldTotals     = "Por cristal"
	FieldTotal      = "Total"
	FieldTransfer   = "Transferência"
)
