package hurst

// Returns converts chronologically ordered prices into simple returns,
// price[i+1]/price[i] - 1. A step touching a zero price yields 0.
func Returns(prices []float64) []float64 {
	if len(prices) < 2 {
		return nil
	}
	out := make([]float64, len(prices)-1)
	for i := 0; i < len(prices)-1; i++ {
		if prices[i] == 0 || prices[i+1] == 0 {
			continue
		}
		out[i] = prices[i+1]/prices[i] - 1
	}
	return out
}
