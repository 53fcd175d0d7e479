package engine

// Weights turns a matrix of values (rows are my actions, columns are
// yours) into a distribution over the columns: each column's sum over the
// grand total. A column the searching side does well against is read as a
// likely reply. This is a weighting heuristic, not a best-response model.
// A zero total yields the uniform distribution.
func Weights(values [][]float64) []float64 {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil
	}
	cols := len(values[0])
	probs := make([]float64, cols)
	total := 0.0
	for _, row := range values {
		for j, v := range row {
			probs[j] += v
			total += v
		}
	}
	if total == 0 {
		for j := range probs {
			probs[j] = 1 / float64(cols)
		}
		return probs
	}
	for j := range probs {
		probs[j] /= total
	}
	return probs
}
