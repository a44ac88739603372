package format

// Units and labels
const (
	UnitBerry       = "berry"
	UnitGems        = "gemas"
	NoPotionsNeeded = "nenhuma poção necessária"
	AlreadyMaxed    = "equipamento já está no nível máximo"
)

// Table columns
const (
	ColLevel    = "Nv"
	ColCrystal  = "Cristal"
	ColCrystals = "Qtd"
	ColCost     = "Custo"
)

// Line layouts
const (
	SpanFormat        = "%s a %s"
	PotionLineFormat  = "%sx %s (%s XP)"
	TableHeaderFormat = "%-3s %-9s %-10s %s\n"
	TableRowFormat    = "%-3d %-9s %-10s %s\n"
	SummaryLineFormat = "%s: %s (%s berry)"
)
