package patch

// Changes maps column names to new values for a partial update. Only
// fields present in the payload end up in the map.
type Changes map[string]interface{}

// Put records f under column when the field was supplied.
func Put[T any](c Changes, column string, f Field[T]) {
	if f.Set {
		c[column] = f.Value
	}
}

// PutAs records the converted value of f under column when the field was
// supplied. It is used for typed enums stored as plain strings.
func PutAs[T any, R any](c Changes, column string, f Field[T], convert func(T) R) {
	if f.Set {
		c[column] = convert(f.Value)
	}
}

// Has reports whether column is part of the update.
func (c Changes) Has(column string) bool {
	_, ok := c[column]
	return ok
}
