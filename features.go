package kprintf

// Features is a bitmask of optional directive families an Instance
// supports (§6 "Configuration options"). Disabling a feature does not
// make its directives an error: an unsupported type letter falls through
// the directive interpreter's "unrecognised type" path and is emitted
// verbatim, consuming only the '%' (§4.6).
type Features uint16

const (
	FeatureLongLong Features = 1 << iota
	FeaturePointer
	FeatureFloat
	FeatureEngineering
	FeatureByteArray
	FeatureString
	FeatureInteger
)

// DefaultFeatures enables every directive family; DefaultInstance is
// initialised with this set.
const DefaultFeatures = FeatureLongLong | FeaturePointer | FeatureFloat |
	FeatureEngineering | FeatureByteArray | FeatureString | FeatureInteger
