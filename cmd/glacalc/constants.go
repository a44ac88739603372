package main

// User-facing messages
const (
	MsgNotANumber     = "erro: digite apenas números inteiros"
	MsgInvalidRange   = "erro: use 1 <= início < fim <= 140"
	MsgUnknownSlot    = "erro: equipamento desconhecido (Emblema, Capacete, Calça, Peito, Arma, Colar)"
	MsgUnknownTier    = "erro: poção desconhecida (Diamante, Ouro, Prata, Bronze)"
	MsgUnknownCrystal = "erro: cristal desconhecido na tabela de preços (Céu, Sábio, Carmesim, Radiante)"
	MsgInvalidPrices  = "erro: tabela de preços inválida; cada cristal aceita um único preço inteiro entre 0 e 1.000.000.000.000.000"
	MsgWarning        = "aviso: %s\n"
)

// Environment
const (
	envPricesFile     = "PRICES_FILE"
	defaultPricesFile = "configs/crystal_prices.yaml"
)
