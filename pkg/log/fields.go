package log

import (
	"time"

	"go.uber.org/zap"
)

// Field is an alias for zap.Field.
type Field = zap.Field

func String(key string, val string) Field { return zap.String(key, val) }

func Strings(key string, val []string) Field { return zap.Strings(key, val) }

func Int(key string, val int) Field { return zap.Int(key, val) }

func Bool(key string, val bool) Field { return zap.Bool(key, val) }

func Duration(key string, val time.Duration) Field { return zap.Duration(key, val) }

// Err constructs a field that lazily stores err.Error() under the key "error".
func Err(err error) Field { return zap.Error(err) }

// Any takes a key and an arbitrary value and chooses the best way to
// represent them as a field.
func Any(key string, value any) Field { return zap.Any(key, value) }
