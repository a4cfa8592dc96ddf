package model

// AgeBucket classifies how long a claim has been outstanding.
type AgeBucket string

const (
	Age0to20  AgeBucket = "0-20 Queue"
	Age21to27 AgeBucket = "21-27 Priority"
	Age28to30 AgeBucket = "28-30 Critical"
	Age31Plus AgeBucket = "31+ Backlog"
	AgeNA     AgeBucket = "Age N/A"
)

// AgingBuckets lists the four real buckets in ascending order, AgeNA excluded.
var AgingBuckets = []AgeBucket{Age0to20, Age21to27, Age28to30, Age31Plus}

// Short returns the compact range label used in report tables.
func (b AgeBucket) Short() string {
	switch b {
	case Age0to20:
		return "0-20"
	case Age21to27:
		return "21-27"
	case Age28to30:
		return "28-30"
	case Age31Plus:
		return "31+"
	}
	return string(b)
}
