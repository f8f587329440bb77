package event

// DataTransfer holds the flavors of a clipboard payload keyed by MIME type,
// e.g. "text/plain" and "text/html".
type DataTransfer struct {
	flavors map[string]string
	order   []string
}

// NewDataTransfer creates an empty DataTransfer.
func NewDataTransfer() *DataTransfer {
	return &DataTransfer{flavors: make(map[string]string)}
}

// normalizeFormat maps the legacy format names browsers accept onto MIME types.
func normalizeFormat(format string) string {
	switch format {
	case "text":
		return "text/plain"
	case "url":
		return "text/uri-list"
	}
	return format
}

// SetData stores data for the given format, replacing any existing value.
func (dt *DataTransfer) SetData(format, data string) {
	format = normalizeFormat(format)
	if _, ok := dt.flavors[format]; !ok {
		dt.order = append(dt.order, format)
	}
	dt.flavors[format] = data
}

// GetData returns the data stored for the given format, or the empty string.
func (dt *DataTransfer) GetData(format string) string {
	return dt.flavors[normalizeFormat(format)]
}

// Types returns the stored formats in insertion order.
func (dt *DataTransfer) Types() []string {
	types := make([]string, len(dt.order))
	copy(types, dt.order)
	return types
}
