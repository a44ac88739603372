package leveling

// Service operation log messages
const (
	LogMsgPlanPotionsCalled = "PlanPotions called"
	LogMsgPotionsPlanned    = "Potions planned"
	LogMsgInvalidRange      = "Rejected level range"
)
