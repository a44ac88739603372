package enhancement

// Service operation log messages
const (
	LogMsgEstimateCalled   = "Estimate called"
	LogMsgEstimateComputed = "Crystal estimate computed"
	LogMsgTransferCost     = "Transfer cost resolved"
)
