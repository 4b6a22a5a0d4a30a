package provider

import "github.com/Checker-Finance/bin-lookup/pkg/model"

//
// ────────────────────────────────────────────────
//   Mapper – Converts provider shapes to Canonical
// ────────────────────────────────────────────────
//

// The mappers are total: any input, including the zero value, yields a fully
// shaped IssuerRecord with nil leaves where the provider reported nothing.
// Fields vary across providers, so each mapping applies first-present-wins
// fallbacks rather than trusting a single key.

// FromBinlist converts a binlist.net response to the canonical IssuerRecord.
func FromBinlist(raw *BinlistResponse) *model.IssuerRecord {
	if raw == nil {
		return &model.IssuerRecord{}
	}

	return &model.IssuerRecord{
		Scheme:  firstNonEmpty(raw.Scheme, raw.Brand),
		Brand:   firstNonEmpty(raw.Brand, raw.Scheme),
		Type:    firstNonEmpty(raw.Type),
		Prepaid: raw.Prepaid,
		Bank: model.Bank{
			Name: firstNonEmpty(raw.Bank.Name),
			URL:  firstNonEmpty(raw.Bank.URL),
		},
		Country: model.Country{
			Name:   firstNonEmpty(raw.Country.Name),
			Alpha2: firstNonEmpty(raw.Country.Alpha2, raw.Country.Alpha),
		},
		Number: model.Number{
			Length: raw.Number.Length,
			Luhn:   raw.Number.Luhn,
		},
	}
}

// FromNinjas converts an API Ninjas record to the canonical IssuerRecord.
// The shape is flat: bank arrives as a string under "bank" or "issuer", the
// country name under "country", and the ISO code under "country_code".
func FromNinjas(raw *NinjasRecord) *model.IssuerRecord {
	if raw == nil {
		return &model.IssuerRecord{}
	}

	return &model.IssuerRecord{
		Scheme: firstNonEmpty(raw.Scheme, raw.Brand, raw.Type),
		Brand:  firstNonEmpty(raw.Brand, raw.Scheme),
		Type:   firstNonEmpty(raw.Type),
		Bank: model.Bank{
			Name: firstNonEmpty(raw.Bank, raw.Issuer, raw.Brand),
		},
		Country: model.Country{
			Name:   firstNonEmpty(raw.Country),
			Alpha2: firstNonEmpty(raw.CountryCode),
		},
	}
}

// firstNonEmpty returns a pointer to the first non-empty value, or nil when
// every candidate is empty. Absence stays nil rather than becoming "".
func firstNonEmpty(vals ...string) *string {
	for _, v := range vals {
		if v != "" {
			val := v
			return &val
		}
	}
	return nil
}
