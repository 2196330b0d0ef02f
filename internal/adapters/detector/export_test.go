package detector

// FormatForExported exposes formatFor for testing.
func FormatForExported(isTTY bool, ci string) LogFormat {
	return formatFor(isTTY, ci)
}
