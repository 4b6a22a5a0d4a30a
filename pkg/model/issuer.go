package model

// IssuerRecord is the canonical, provider-agnostic issuer metadata for a BIN.
// Every leaf is optional: a nil pointer means the provider did not report the
// field, which is distinct from an empty value. Records are produced only by
// the provider mappers and are never partially constructed.
type IssuerRecord struct {
	Scheme  *string `json:"scheme"`
	Brand   *string `json:"brand"`
	Type    *string `json:"type"`
	Prepaid *bool   `json:"prepaid"`
	Bank    Bank    `json:"bank"`
	Country Country `json:"country"`
	Number  Number  `json:"number"`
}

// Bank identifies the issuing bank.
type Bank struct {
	Name *string `json:"name"`
	URL  *string `json:"url"`
}

// Country identifies the issuing country.
type Country struct {
	Name   *string `json:"name"`
	Alpha2 *string `json:"alpha2"`
}

// Number carries card-number hints when the provider reports them.
type Number struct {
	Length *int  `json:"length,omitempty"`
	Luhn   *bool `json:"luhn,omitempty"`
}
