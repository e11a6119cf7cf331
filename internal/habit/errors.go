package habit

import "fmt"

// PersistError reports a failed background write of one storage key. The
// in-memory mutation that triggered the write is kept; the error is only a
// durability notice.
type PersistError struct {
	Key string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s: %v", e.Key, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
