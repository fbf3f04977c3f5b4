package valueobject

// RateSource tells the caller where a quote's effective annual rate came
// from, so an estimate is never silently passed off as a bank-reported CAT.
type RateSource string

const (
	// RateSourceReported means the bank profile carried a CAT and it was
	// used verbatim.
	RateSourceReported RateSource = "reported"
	// RateSourceEstimated means the CAT was absent and the rate was derived
	// from the commission-inclusive payment stream.
	RateSourceEstimated RateSource = "estimated"
)

func (s RateSource) String() string { return string(s) }
