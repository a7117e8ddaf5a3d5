package catalog

import "errors"

// Configuration errors (§7): unknown system name, missing algorithm, origin
// outside limits, or an algorithm requested on a system lacking the
// required plug-in hook. All are fatal at startup.
var (
	ErrUnknownSystem       = errors.New("catalog: unknown system")
	ErrUnknownLineConfig   = errors.New("catalog: unknown line configuration")
	ErrUnknownRegionConfig = errors.New("catalog: unknown region configuration")
	ErrMissingCapability   = errors.New("catalog: system lacks required capability")
	ErrOriginOutOfLimits   = errors.New("catalog: origin lies outside configured limits")
)
