package indicators

// MACD calculates the Moving Average Convergence Divergence line, its signal
// line, and the histogram (line minus signal). The MACD line is defined from
// index slow-1; the signal line needs another signal-1 bars on top of that.
func MACD(values []float64, fast, slow, signal int) (line, sig, hist []float64) {
	n := len(values)
	line, sig, hist = nans(n), nans(n), nans(n)
	if fast < 1 || slow < fast || signal < 1 || slow > n {
		return line, sig, hist
	}

	emaFast := EMA(values, fast)
	emaSlow := EMA(values, slow)
	for i := slow - 1; i < n; i++ {
		line[i] = emaFast[i] - emaSlow[i]
	}

	// Signal is an EMA over the defined portion of the MACD line.
	defined := line[slow-1:]
	if len(defined) >= signal {
		sigTail := EMA(defined, signal)
		for i, v := range sigTail {
			sig[slow-1+i] = v
		}
	}

	for i := range hist {
		if !Defined(sig, i) {
			continue
		}
		hist[i] = line[i] - sig[i]
	}
	return line, sig, hist
}
