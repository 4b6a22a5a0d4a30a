package utils

// MaskSecret hides all but a short prefix of a credential so it can appear in
// startup logs. Short values are masked entirely.
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "***"
	}
	return secret[:4] + "***"
}
