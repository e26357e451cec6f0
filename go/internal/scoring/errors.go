package scoring

import "errors"

var (
	errInvalidTipType = errors.New("tip_type must be exact_score or winner")
	errMissingResult  = errors.New("home_score and away_score are required")
)
