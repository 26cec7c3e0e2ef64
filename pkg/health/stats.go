package health

// Summary is nil-valued when there is nothing to summarise, so it serialises
// as {"count":0,"min":null,"max":null,"average":null}.
type Summary struct {
	Count   int      `json:"count"`
	Min     *float64 `json:"min"`
	Max     *float64 `json:"max"`
	Average *float64 `json:"average"`
}

func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	lo, hi, sum := values[0], values[0], 0.0
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
		sum += v
	}
	avg := sum / float64(len(values))

	return Summary{
		Count:   len(values),
		Min:     &lo,
		Max:     &hi,
		Average: &avg,
	}
}
