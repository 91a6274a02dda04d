package student

// AttendanceBucket is the binned attendance percentage
type AttendanceBucket string

const (
	BucketUnder70   AttendanceBucket = "<70%"
	Bucket70To85    AttendanceBucket = "70-85%"
	Bucket85To95    AttendanceBucket = "85-95%"
	BucketAbove95   AttendanceBucket = ">95%"
	bucketUndefined AttendanceBucket = ""
)

// BucketEdges are the right-inclusive bin edges: (0,70], (70,85], (85,95], (95,100]
var BucketEdges = []float64{0, 70, 85, 95, 100}

// BucketOrder is the fixed display order of the attendance buckets
var BucketOrder = []AttendanceBucket{BucketUnder70, Bucket70To85, Bucket85To95, BucketAbove95}

// BucketFor bins an attendance percentage. Values at or below 0, above 100,
// or missing have no bucket.
func BucketFor(attendance float64) (AttendanceBucket, bool) {
	if !Has(attendance) {
		return bucketUndefined, false
	}
	for i := 1; i < len(BucketEdges); i++ {
		if attendance > BucketEdges[i-1] && attendance <= BucketEdges[i] {
			return BucketOrder[i-1], true
		}
	}
	return bucketUndefined, false
}
