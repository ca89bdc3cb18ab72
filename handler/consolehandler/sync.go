package consolehandler

import (
	"errors"
	"syscall"
)

// isUnsyncable reports errors returned by fsync on terminals and pipes,
// which cannot be flushed and are not a failure.
func isUnsyncable(err error) bool {
	return errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY)
}
