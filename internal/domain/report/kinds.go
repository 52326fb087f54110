package report

// Kind selects a report family. Each kind has a fixed set of grouping
// dimensions and its own date-span ceiling; this is not an ad-hoc query
// surface.
type Kind string

const (
	KindAttendance Kind = "attendance"
	KindAudit      Kind = "audit"
	KindMeal       Kind = "meal"
)

// GroupBy is the axis along which rollup statistics are computed.
type GroupBy string

const (
	GroupByUser     GroupBy = "user"
	GroupByDivision GroupBy = "division"
	GroupBySection  GroupBy = "section"
	GroupByDate     GroupBy = "date"
	GroupByCategory GroupBy = "category"
	GroupBySeverity GroupBy = "severity"
	GroupByAction   GroupBy = "action"
	GroupByMealType GroupBy = "meal_type"
	GroupByLocation GroupBy = "location"

	// GroupByNone computes a single whole-set rollup, used for summary
	// blocks.
	GroupByNone GroupBy = "none"
)

var kindGroupBys = map[Kind][]GroupBy{
	KindAttendance: {GroupByUser, GroupByDivision, GroupBySection, GroupByDate},
	KindAudit:      {GroupByUser, GroupByCategory, GroupBySeverity, GroupByDate, GroupByAction},
	KindMeal:       {GroupByUser, GroupByMealType, GroupByLocation, GroupByDate},
}

// AllowedGroupBys returns the closed grouping enum for a report kind.
func AllowedGroupBys(kind Kind) []GroupBy {
	return kindGroupBys[kind]
}

// GroupByAllowed reports whether g is valid for the given kind.
func GroupByAllowed(kind Kind, g GroupBy) bool {
	for _, allowed := range kindGroupBys[kind] {
		if allowed == g {
			return true
		}
	}
	return false
}

// MaxRangeDays is the inclusive date-span ceiling per report kind.
// Exceeding it rejects the request; ranges are never truncated.
func MaxRangeDays(kind Kind) int {
	if kind == KindAudit {
		return 90
	}
	return 365
}

// Source selects the backing store for attendance data.
type Source string

const (
	// SourceDocuments reads pre-computed attendance documents from the
	// primary document store.
	SourceDocuments Source = "documents"
	// SourceScans reconstructs attendance from raw punch events in the
	// legacy relational store.
	SourceScans Source = "scans"
)
