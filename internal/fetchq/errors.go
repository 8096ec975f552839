package fetchq

import (
	"errors"
	"fmt"
)

// ErrQueueClosed is returned by Submit after Stop.
var ErrQueueClosed = errors.New("fetchq: queue closed")

// QueueFullError is returned when a shard cannot accept the job within the
// enqueue timeout.
type QueueFullError struct {
	Shard    int
	Length   int
	Capacity int
}

func (e *QueueFullError) Error() string {
	return fmt.Sprintf("fetchq: shard %d full (%d/%d)", e.Shard, e.Length, e.Capacity)
}

// IsQueueFull reports whether err is a QueueFullError.
func IsQueueFull(err error) bool {
	var qf *QueueFullError
	return errors.As(err, &qf)
}
