package report

// Severity of a report finding.
// - BLOCK: the column cannot be cleaned
// - WARN: missing values are still present after cleaning
// - INFO: missing values were imputed
const (
	SeverityInfo  = "INFO"
	SeverityWarn  = "WARN"
	SeverityBlock = "BLOCK"
)

const (
	KindImputed          = "imputed"
	KindResidualMissing  = "residual_missing"
	KindNoObservedValues = "no_observed_values"
)

func SeverityForKind(kind string) string {
	switch kind {
	case KindNoObservedValues:
		return SeverityBlock
	case KindResidualMissing:
		return SeverityWarn
	default:
		return SeverityInfo
	}
}

// MessageForKind returns a concise message for the given finding kind.
func MessageForKind(kind string) string {
	switch kind {
	case KindImputed:
		return "missing values imputed with column mode"
	case KindResidualMissing:
		return "missing values remain after cleaning"
	case KindNoObservedValues:
		return "column has no observed values"
	default:
		return ""
	}
}
