package console

const (
	msgNotFound    = "Error: %s not found"
	msgParseError  = "Error parsing JSON: %v"
	msgTotal       = "Total Surahs: %d"
	msgMissing     = "Warning: %d surahs are missing text content."
	msgSample      = "Sample missing: %s"
	msgAllHaveText = "Success: All surahs have text content."
	msgJuzPresent  = "Juz present: %s"
)
