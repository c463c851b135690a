package model

import "time"

// Event is a single keyed observation in the stream. Weight is the amount
// added to the key's tracked frequency; a negative weight removes previously
// added weight.
type Event struct {
	Timestamp time.Time
	Key       string
	Weight    int64
}
