package model

import "time"

// Ordered is a record kept in a dense 0-based order within its owner's list.
type Ordered interface {
	RecordID() string
	OwnerID() string
	Index() int
	SetIndex(i int, at time.Time)
	ShiftDown()
}
