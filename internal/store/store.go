package store

import (
	"time"

	"housingready/internal/utils"
	"housingready/pkg/types"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Record ids are alphanumeric so they can sit in a URL path or a file name
// without escaping.
const (
	idSize     = 24
	idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

func newID() string {
	return gonanoid.MustGenerate(idAlphabet, idSize)
}

// clock returns the write timestamp. Values are kept in UTC at microsecond
// precision so they read back identically from either backend.
func clock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// storageValues maps a db-tagged struct to column values, writing flags as
// 0/1 integers. Flag.Scan performs the reverse on reads.
func storageValues(input any) map[string]any {
	values := utils.StructToMap(input)
	for column, value := range values {
		if flag, ok := value.(types.Flag); ok {
			values[column] = flag.Int()
		}
	}
	return values
}
