package document

// ConfigError reports invalid layout parameters supplied by the caller,
// such as negative margins or a duplicate paragraph border.
type ConfigError struct {
	Op     string
	Reason string
}

func (e *ConfigError) Error() string { return e.Op + ": " + e.Reason }

// DimensionError reports a table whose declared shape is inconsistent,
// such as a column-width list that does not match the column count.
type DimensionError struct {
	Op     string
	Reason string
}

func (e *DimensionError) Error() string { return e.Op + ": " + e.Reason }
